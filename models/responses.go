package models

// LoginResponse is the body returned by a successful POST /login.
type LoginResponse struct {
	// Token is the signed bearer token to present on subsequent requests.
	Token string `json:"token"`
}
