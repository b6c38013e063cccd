package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tmorris/bizlink-admin/internal/session"
)

// fakeTokens is a scriptable TokenSource: Refresh swaps the served token
// and reports the configured outcome.
type fakeTokens struct {
	mu           sync.Mutex
	token        string
	next         string
	outcome      session.Outcome
	refreshCalls int
}

func (f *fakeTokens) AccessToken(ctx context.Context) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeTokens) Refresh(ctx context.Context) session.Outcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshCalls++
	if f.outcome == session.OutcomeSuccess {
		f.token = f.next
	}
	return f.outcome
}

func TestAuthTransport_AttachesBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	hc := &http.Client{Transport: &AuthTransport{Tokens: &fakeTokens{token: "tok"}}}
	resp, err := hc.Get(srv.URL + "/admin/users")
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, "Bearer tok", gotAuth)
}

func TestAuthTransport_RefreshAndReplayOnce(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if r.Header.Get("Authorization") != "Bearer fresh" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tokens := &fakeTokens{token: "stale", next: "fresh", outcome: session.OutcomeSuccess}
	hc := &http.Client{Transport: &AuthTransport{Tokens: tokens}}

	resp, err := hc.Get(srv.URL + "/admin/users")
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 1, tokens.refreshCalls)
	require.Equal(t, 2, hits, "original request replayed exactly once")
}

func TestAuthTransport_NoSecondRetry(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	// Refresh "succeeds" but the server keeps rejecting: the replay's 401
	// must be propagated without another refresh round.
	tokens := &fakeTokens{token: "stale", next: "fresh", outcome: session.OutcomeSuccess}
	hc := &http.Client{Transport: &AuthTransport{Tokens: tokens}}

	resp, err := hc.Get(srv.URL + "/admin/users")
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, 1, tokens.refreshCalls)
	require.Equal(t, 2, hits)
}

func TestAuthTransport_TransientRefreshPropagatesOriginalFailure(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	tokens := &fakeTokens{token: "stale", outcome: session.OutcomeTransientFailure}
	hc := &http.Client{Transport: &AuthTransport{Tokens: tokens}}

	resp, err := hc.Get(srv.URL + "/admin/users")
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, 1, tokens.refreshCalls)
	require.Equal(t, 1, hits, "no replay when the refresh did not succeed")
}

func TestAuthTransport_AuthEndpointsAreNeverReplayed(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	tokens := &fakeTokens{token: "tok", outcome: session.OutcomeSuccess}
	hc := &http.Client{Transport: &AuthTransport{Tokens: tokens}}

	resp, err := hc.Post(srv.URL+"/auth/login", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, 0, tokens.refreshCalls, "a rejected login must not trigger a refresh")
	require.Equal(t, 1, hits)
}
