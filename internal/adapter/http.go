package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-token-auth/internal/config"
	"github.com/MKhiriev/go-token-auth/internal/logger"
	"github.com/MKhiriev/go-token-auth/internal/utils"
	"github.com/MKhiriev/go-token-auth/models"
	"github.com/go-resty/resty/v2"
)

const bearerPrefix = "Bearer "

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// adapterCfg.HTTPAddress may omit the scheme, http is assumed.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. A "Bearer " prefix is stripped.
func (h *httpServerAdapter) SetToken(token string) {
	token = strings.TrimSpace(token)
	if len(token) >= len(bearerPrefix) && strings.EqualFold(token[:len(bearerPrefix)], bearerPrefix) {
		token = strings.TrimSpace(token[len(bearerPrefix):])
	}
	h.token = token
}

func (h *httpServerAdapter) Token() string {
	return h.token
}

// Login implements [ServerAdapter]. It POSTs the credentials as a form to
// /login. The token is taken from the JSON body, or from the Authorization
// response header when the body has none.
func (h *httpServerAdapter) Login(ctx context.Context, username, password string) (string, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": username,
			"password": password,
		}).
		SetResult(&result).
		Post("/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token := result.Token
	if token == "" {
		token = strings.TrimPrefix(resp.Header().Get("Authorization"), bearerPrefix)
	}
	if token == "" {
		return "", ErrNoTokenInResponse
	}

	h.SetToken(token)
	h.logger.Debug().Str("username", username).Msg("logged in")

	return h.token, nil
}

// Me implements [ServerAdapter] over GET /users/me.
func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	var user models.User

	req, err := h.authedRequest(ctx)
	if err != nil {
		return user, err
	}

	resp, err := req.SetResult(&user).Get("/users/me")
	if err != nil {
		return user, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Version implements [ServerAdapter] over GET /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	if h.token == "" {
		return nil, ErrNoToken
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(h.token), nil
}
