// Package http implements the HTTP transport of the auth server.
//
// It exposes the login endpoint, the protected routes guarded by the bearer
// token middleware, and the operational endpoints (version, health,
// metrics). Request tracing, access logging and request metrics are
// handled here before requests reach the service layer.
package http
