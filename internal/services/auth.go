// Package services contains the application services of the admin console:
// authentication/session lifecycle, admin directory operations, and
// analytics shaping. Services sit between the CLI and the API client.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tmorris/bizlink-admin/internal/common"
	"github.com/tmorris/bizlink-admin/internal/logging"
	"github.com/tmorris/bizlink-admin/internal/models"
	"github.com/tmorris/bizlink-admin/internal/session"
)

// LoginClient is the slice of the API the auth service needs for signing in.
type LoginClient interface {
	Login(ctx context.Context, email, password string) (*models.LoginResult, error)
}

// SessionRevoker asks the server to drop the current session.
type SessionRevoker interface {
	RevokeSession(ctx context.Context) error
}

// AuthService manages the admin's sign-in state.
//
// Contract:
//   - Login: authenticate, persist the credential triple, return the identity.
//   - RestoreSession: resume a persisted session after a console restart.
//   - Logout: best-effort server-side revocation, then clear local credentials.
//   - Authenticated/SessionState/TimeUntilExpiry: read-only session facts.
//
// All methods honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) (*models.Identity, error)
	RestoreSession(ctx context.Context) (*models.Identity, error)
	Logout(ctx context.Context) error
	Authenticated(ctx context.Context) bool
	SessionState(ctx context.Context) session.State
	TimeUntilExpiry(ctx context.Context) time.Duration
}

type authService struct {
	login   LoginClient
	revoker SessionRevoker
	guard   *session.Guard
	log     logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API surfaces
// and session guard.
func NewAuthService(login LoginClient, revoker SessionRevoker, guard *session.Guard, log logging.Logger) AuthService {
	return &authService{login: login, revoker: revoker, guard: guard, log: log}
}

func (a *authService) Login(ctx context.Context, email string, password []byte) (*models.Identity, error) {
	res, err := a.login.Login(ctx, email, string(password))
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	expiresIn := time.Duration(res.Tokens.ExpiresIn) * time.Second
	if err := a.guard.StoreCredentials(ctx, res.Tokens.AccessToken, res.Tokens.RefreshToken, expiresIn); err != nil {
		return nil, fmt.Errorf("failed to persist credentials: %w", err)
	}

	return &models.Identity{
		UserID: res.User.ID,
		Email:  res.User.Email,
		Role:   res.User.Role,
	}, nil
}

// RestoreSession resumes a session persisted by a previous run. If the
// access token has lapsed it attempts one refresh; on terminal failure the
// caller must treat the console as logged out.
func (a *authService) RestoreSession(ctx context.Context) (*models.Identity, error) {
	if !a.guard.Authenticated(ctx) {
		return nil, common.ErrNoCredentials
	}

	if a.guard.IsExpired(ctx) {
		if a.guard.Refresh(ctx) != session.OutcomeSuccess {
			return nil, common.ErrNoCredentials
		}
	}

	identity, err := identityFromToken(a.guard.AccessToken(ctx))
	if err != nil {
		// Opaque token; the session is still usable, just anonymous in the
		// prompt.
		a.log.Debug(ctx, "access token claims not parseable", "error", err)
		return &models.Identity{}, nil
	}
	return identity, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.revoker.RevokeSession(ctx); err != nil {
		a.log.Warn(ctx, "server-side session revocation failed", "error", err)
	}
	return a.guard.ClearCredentials(ctx)
}

func (a *authService) Authenticated(ctx context.Context) bool {
	return a.guard.Authenticated(ctx)
}

func (a *authService) SessionState(ctx context.Context) session.State {
	return a.guard.State(ctx)
}

func (a *authService) TimeUntilExpiry(ctx context.Context) time.Duration {
	return a.guard.TimeUntilExpiry(ctx)
}
