package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-token-auth/internal/logger"
	"github.com/MKhiriev/go-token-auth/internal/utils"
	"github.com/MKhiriev/go-token-auth/models"
)

// Form fields read by the login handler.
const (
	formUsername = "username"
	formPassword = "password"
)

// login exchanges form credentials for a bearer token. The token is
// returned both in the JSON body and in the Authorization header.
// An unreadable form counts as wrong credentials.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was passed")
		http.Error(w, invalidCredentialsMessage, http.StatusUnauthorized)
		return
	}

	username := r.PostForm.Get(formUsername)
	log.Debug().Str("username", username).Msg("login attempt")

	token, err := h.services.AuthService.Login(ctx, username, r.PostForm.Get(formPassword))
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Int("status", status).Str("username", username).Msg("login failed")
		http.Error(w, loginErrorMessage(status), status)
		return
	}

	log.Debug().Int64("id", token.Claims.ID).Time("expires_at", token.Claims.ExpiresAt).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	if _, err = utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing login response")
	}
}

// me answers with the identity the auth middleware resolved.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		log.Err(ErrMissingIdentity).Send()
		http.Error(w, unauthorizedMessage, http.StatusUnauthorized)
		return
	}

	if _, err := utils.WriteJSON(w, user, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing identity")
	}
}
