// Package cli implements the interactive admin console: a REPL dispatching
// moderation commands, with the session guard running underneath.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/tmorris/bizlink-admin/internal/api"
	"github.com/tmorris/bizlink-admin/internal/config"
	"github.com/tmorris/bizlink-admin/internal/logging"
	"github.com/tmorris/bizlink-admin/internal/models"
	"github.com/tmorris/bizlink-admin/internal/services"
	"github.com/tmorris/bizlink-admin/internal/session"
)

type App struct {
	config *config.Config
	log    logging.Logger

	guard     *session.Guard
	auth      services.AuthService
	admin     services.AdminService
	analytics services.AnalyticsService

	reader *bufio.Reader
	out    io.Writer

	// mu guards identity and endSession: both are touched by the REPL
	// goroutine and by the session-expiry watcher.
	mu       sync.Mutex
	identity *models.Identity
	// endSession cancels the proactive refresh loop of the current session.
	endSession context.CancelFunc
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := session.InitDatabase(ctx, cfg.CredentialsDB)
	if err != nil {
		log.Error(ctx, "error initializing credentials database", "error", err)
		return nil, err
	}

	store := session.NewSQLiteStore(db)
	authAPI := api.NewAuthAPI(cfg.APIBaseURL, log, cfg.RequestTimeout)
	guard := session.NewGuard(store, authAPI, log, session.Options{
		RefreshBuffer: cfg.RefreshBuffer,
		IdleThreshold: cfg.IdleThreshold,
	})
	client := api.New(cfg.APIBaseURL, guard, log, cfg.RequestTimeout)

	return &App{
		config:    cfg,
		log:       log,
		guard:     guard,
		auth:      services.NewAuthService(authAPI, client, guard, log),
		admin:     services.NewAdminService(client, log),
		analytics: services.NewAnalyticsService(client),
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.currentIdentity() != nil
}

func (a *App) setIdentity(identity *models.Identity) {
	a.mu.Lock()
	a.identity = identity
	a.mu.Unlock()
}

func (a *App) currentIdentity() *models.Identity {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.identity
}

// startSession launches the proactive refresh loop for the freshly
// established session, replacing any previous loop.
func (a *App) startSession(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopSessionLocked()
	sessionCtx, cancel := context.WithCancel(ctx)
	a.endSession = cancel
	go a.guard.RunProactiveRefresh(sessionCtx)
}

// stopSession cancels the proactive loop so no timer outlives a logout.
func (a *App) stopSession() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopSessionLocked()
}

func (a *App) stopSessionLocked() {
	if a.endSession != nil {
		a.endSession()
		a.endSession = nil
	}
}

// watchSessionExpiry consumes the guard's session-expired broadcast and
// drops the console back to the logged-out state with a message. The
// subscription is taken by the caller so no signal is lost before this
// goroutine is scheduled.
func (a *App) watchSessionExpiry(ctx context.Context, expired <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-expired:
			a.setIdentity(nil)
			a.stopSession()
			printlnFn("Session expired, please log in again.")
		}
	}
}

func (a *App) status(ctx context.Context) string {
	s := ""
	if identity := a.currentIdentity(); identity != nil && identity.Email != "" {
		s = identity.Email + " "
	}
	s += string(a.guard.State(ctx))
	return "(" + s + ")"
}

func (a *App) Run(ctx context.Context) {
	printlnFn("bizlink admin console (type 'help' for commands)")

	// Resume a session persisted by a previous run, if any.
	if identity, err := a.auth.RestoreSession(ctx); err == nil {
		a.setIdentity(identity)
		a.startSession(ctx)
		printlnFn("Restored previous session.")
	}

	go a.watchSessionExpiry(ctx, a.guard.SessionExpired())

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, func() string { return a.status(ctx) }, func() { a.guard.OnActivity(ctx) }, scanner)

	a.stopSession()
}
