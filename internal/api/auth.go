package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/tmorris/bizlink-admin/internal/logging"
	"github.com/tmorris/bizlink-admin/internal/models"
)

// AuthAPI is the unauthenticated endpoint group: login and token refresh.
// It uses a plain transport: these calls carry their own
// credentials and must never trigger the refresh-and-replay path.
type AuthAPI struct {
	rest
	log logging.Logger
}

func NewAuthAPI(baseURL string, log logging.Logger, timeout time.Duration) *AuthAPI {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &AuthAPI{
		rest: rest{
			baseURL: strings.TrimRight(baseURL, "/"),
			hc:      &http.Client{Timeout: timeout},
		},
		log: log,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates with email/password and returns the admin's profile
// together with a fresh token pair.
func (a *AuthAPI) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	var out models.LoginResult
	err := a.do(ctx, http.MethodPost, "/auth/login", nil, loginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshTokens exchanges a refresh token for a new pair. Satisfies
// session.Refresher.
func (a *AuthAPI) RefreshTokens(ctx context.Context, refreshToken string) (string, string, time.Duration, error) {
	var out models.TokenPair
	err := a.do(ctx, http.MethodPost, "/auth/tokens/refresh", nil, refreshRequest{RefreshToken: refreshToken}, &out)
	if err != nil {
		return "", "", 0, err
	}
	return out.AccessToken, out.RefreshToken, time.Duration(out.ExpiresIn) * time.Second, nil
}

// RevokeSession asks the server to drop the current session's refresh
// token. Best effort: callers log failures and clear local state anyway.
func (c *Client) RevokeSession(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/auth/tokens/revoke-session", nil, nil, nil)
}

// RevokeAllSessions revokes every session of the logged-in admin.
func (c *Client) RevokeAllSessions(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/auth/tokens/revoke-all", nil, nil, nil)
}
