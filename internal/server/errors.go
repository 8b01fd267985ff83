// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoHTTPServer is returned when there is no listen address or no router
// to serve on it.
var errNoHTTPServer = errors.New("http server is not configured: address or router missing")
