package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tmorris/bizlink-admin/internal/common"
	"github.com/tmorris/bizlink-admin/internal/logging"
	"github.com/tmorris/bizlink-admin/internal/models"
	"github.com/tmorris/bizlink-admin/internal/session"
)

type fakeAuth struct {
	identity  *models.Identity
	loginErr  error
	logoutErr error

	lastEmail    string
	lastPassword string
	logoutCalls  int
}

func (f *fakeAuth) Login(ctx context.Context, email string, password []byte) (*models.Identity, error) {
	f.lastEmail = email
	f.lastPassword = string(password)
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.identity, nil
}

func (f *fakeAuth) RestoreSession(ctx context.Context) (*models.Identity, error) {
	return nil, common.ErrNoCredentials
}

func (f *fakeAuth) Logout(ctx context.Context) error {
	f.logoutCalls++
	return f.logoutErr
}

func (f *fakeAuth) Authenticated(ctx context.Context) bool { return f.identity != nil }

func (f *fakeAuth) SessionState(ctx context.Context) session.State {
	if f.identity != nil {
		return session.StateValid
	}
	return session.StateUnauthenticated
}

func (f *fakeAuth) TimeUntilExpiry(ctx context.Context) time.Duration { return time.Hour }

type nopStore struct{}

func (nopStore) Load(ctx context.Context) (*session.Credentials, error) { return nil, nil }
func (nopStore) Save(ctx context.Context, creds session.Credentials) error {
	return nil
}
func (nopStore) Clear(ctx context.Context) error { return nil }

type nopRefresher struct{}

func (nopRefresher) RefreshTokens(ctx context.Context, refreshToken string) (string, string, time.Duration, error) {
	return "", "", 0, common.ErrNoCredentials
}

func newAuthApp(auth *fakeAuth) *App {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	guard := session.NewGuard(nopStore{}, nopRefresher{}, log, session.Options{})
	return &App{
		auth:  auth,
		guard: guard,
		out:   &bytes.Buffer{},
	}
}

func TestLogin_SetsIdentity(t *testing.T) {
	lines := capturePrintln(t)

	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) { return []byte("s3cret"), nil }

	auth := &fakeAuth{identity: &models.Identity{UserID: "u1", Email: "admin@bizlink.nz", Role: "admin"}}
	app := newAuthApp(auth)
	app.reader = readerFromLines("admin@bizlink.nz")

	require.NoError(t, app.Login(context.Background()))
	t.Cleanup(app.stopSession)

	require.Equal(t, "admin@bizlink.nz", auth.lastEmail)
	require.Equal(t, "s3cret", auth.lastPassword)
	require.True(t, app.isLoggedIn())
	require.Contains(t, joined(lines), "Logged in as admin@bizlink.nz")
}

func TestLogin_FailureLeavesLoggedOut(t *testing.T) {
	lines := capturePrintln(t)

	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) { return []byte("wrong"), nil }

	auth := &fakeAuth{loginErr: common.ErrUnauthorized}
	app := newAuthApp(auth)
	app.reader = readerFromLines("admin@bizlink.nz")

	require.Error(t, app.Login(context.Background()))
	require.False(t, app.isLoggedIn())
	require.Contains(t, joined(lines), "Login unsuccessful")
}

func TestLogout_ClearsIdentity(t *testing.T) {
	capturePrintln(t)

	auth := &fakeAuth{}
	app := newAuthApp(auth)
	app.setIdentity(&models.Identity{Email: "admin@bizlink.nz"})

	require.NoError(t, app.Logout(context.Background()))
	require.Equal(t, 1, auth.logoutCalls)
	require.False(t, app.isLoggedIn())
}

// staleStore holds an already-expired triple so a refresh attempt goes out
// immediately.
type staleStore struct {
	mu    sync.Mutex
	creds *session.Credentials
}

func (s *staleStore) Load(ctx context.Context) (*session.Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.creds == nil {
		return nil, nil
	}
	c := *s.creds
	return &c, nil
}

func (s *staleStore) Save(ctx context.Context, creds session.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = &creds
	return nil
}

func (s *staleStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = nil
	return nil
}

type rejectRefresher struct{}

func (rejectRefresher) RefreshTokens(ctx context.Context, refreshToken string) (string, string, time.Duration, error) {
	return "", "", 0, common.ErrUnauthorized
}

func TestWatchSessionExpiry_DropsToLoggedOutUnderConcurrentCommands(t *testing.T) {
	silencePrintln(t)

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	store := &staleStore{creds: &session.Credentials{
		AccessToken:  "a",
		RefreshToken: "r",
		ExpiresAt:    time.Now().Add(-time.Minute),
	}}
	guard := session.NewGuard(store, rejectRefresher{}, log, session.Options{})

	app := &App{auth: &fakeAuth{}, guard: guard, out: &bytes.Buffer{}}
	app.setIdentity(&models.Identity{Email: "admin@bizlink.nz"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go app.watchSessionExpiry(ctx, guard.SessionExpired())

	// Hammer the App state from a second goroutine the way REPL command
	// handlers do while the watcher reacts to the broadcast.
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			app.isLoggedIn()
			app.startSession(ctx)
			app.stopSession()
		}
	}()

	require.Equal(t, session.OutcomeAuthFailure, guard.Refresh(ctx))

	require.Eventually(t, func() bool { return !app.isLoggedIn() },
		time.Second, 5*time.Millisecond, "watcher must drop the console to logged out")
	wg.Wait()
	app.stopSession()
}

func TestStatus_ReportsStateAndExpiry(t *testing.T) {
	lines := capturePrintln(t)

	auth := &fakeAuth{identity: &models.Identity{Email: "admin@bizlink.nz", Role: "admin"}}
	app := newAuthApp(auth)
	app.setIdentity(auth.identity)

	require.NoError(t, app.Status(context.Background()))

	out := joined(lines)
	require.Contains(t, out, "Session state: valid")
	require.Contains(t, out, "admin@bizlink.nz (admin)")
	require.Contains(t, out, "Token expires in: 1h0m0s")
}
