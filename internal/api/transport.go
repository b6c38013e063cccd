package api

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/tmorris/bizlink-admin/internal/common"
	"github.com/tmorris/bizlink-admin/internal/session"
)

// TokenSource is the slice of the session guard the transport needs:
// read the current access token, and request a refresh after an
// authorization failure. *session.Guard satisfies it.
type TokenSource interface {
	AccessToken(ctx context.Context) string
	Refresh(ctx context.Context) session.Outcome
}

type retriedCtxKey struct{}

// AuthTransport attaches the current access token to every outgoing request
// and, on the first 401/403 for a non-auth endpoint, asks the guard to
// refresh and replays the request exactly once with the new token.
//
// Auth endpoints (login, refresh, revoke) are never replayed, and a request
// that already carries the retried marker is never replayed again. When the
// refresh does not succeed the original failure response is returned
// unchanged; the guard itself emits the session-expired signal on terminal
// failures.
type AuthTransport struct {
	Base   http.RoundTripper
	Tokens TokenSource
}

func (t *AuthTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	out := req.Clone(ctx)
	if tok := t.Tokens.AccessToken(ctx); tok != "" {
		out.Header.Set(common.AuthorizationHeaderName, "Bearer "+tok)
	}

	resp, err := t.base().RoundTrip(out)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusUnauthorized && resp.StatusCode != http.StatusForbidden {
		return resp, nil
	}
	if isAuthEndpoint(req.URL.Path) {
		return resp, nil
	}
	if ctx.Value(retriedCtxKey{}) != nil {
		return resp, nil
	}
	if req.Body != nil && req.GetBody == nil {
		// The body was consumed by the first attempt and cannot be rebuilt.
		return resp, nil
	}

	if t.Tokens.Refresh(ctx) != session.OutcomeSuccess {
		return resp, nil
	}

	// Drain the failed response so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	retry := req.Clone(context.WithValue(ctx, retriedCtxKey{}, true))
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		retry.Body = body
	}
	if tok := t.Tokens.AccessToken(ctx); tok != "" {
		retry.Header.Set(common.AuthorizationHeaderName, "Bearer "+tok)
	}

	return t.base().RoundTrip(retry)
}

func isAuthEndpoint(path string) bool {
	return strings.HasPrefix(path, "/auth/")
}
