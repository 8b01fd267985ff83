// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux shaped like the auth API without
// any services behind it.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("token"))
	})
	router.Get("/users/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/multi", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	router.Delete("/multi", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"POST /login registered", http.MethodPost, "/login", http.StatusOK},
		{"GET /users/me registered", http.MethodGet, "/users/me", http.StatusOK},
		{"GET /multi registered", http.MethodGet, "/multi", http.StatusOK},
		{"DELETE /multi registered", http.MethodDelete, "/multi", http.StatusNoContent},

		{"GET /login not registered", http.MethodGet, "/login", http.StatusNotFound},
		{"PUT /login not registered", http.MethodPut, "/login", http.StatusNotFound},
		{"POST /users/me not registered", http.MethodPost, "/users/me", http.StatusNotFound},
		{"PATCH /multi not registered", http.MethodPatch, "/multi", http.StatusNotFound},
		{"OPTIONS /multi not registered", http.MethodOptions, "/multi", http.StatusNotFound},

		{"unknown route", http.MethodGet, "/api/nonexistent", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(router, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_PassThroughBody(t *testing.T) {
	rr := serve(buildRouter(), httptest.NewRequest(http.MethodPost, "/login", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "token", rr.Body.String())
}
