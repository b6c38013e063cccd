package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/tmorris/bizlink-admin/internal/common"
	"github.com/tmorris/bizlink-admin/internal/logging"
)

// Outcome classifies the result of a refresh attempt.
type Outcome int

const (
	// OutcomeSuccess: a new credential triple was issued and stored.
	OutcomeSuccess Outcome = iota
	// OutcomeAuthFailure: the refresh token itself was rejected (or no
	// credentials exist). Unrecoverable; the session is over.
	OutcomeAuthFailure
	// OutcomeTransientFailure: network or server error. The stored
	// credentials are left untouched and a later retry may succeed.
	OutcomeTransientFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeAuthFailure:
		return "auth_failure"
	case OutcomeTransientFailure:
		return "transient_failure"
	default:
		return "unknown"
	}
}

// State describes where the credential lifetime currently stands.
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateValid           State = "valid"
	StateExpired         State = "expired"
	StateRefreshing      State = "refreshing"
)

// Refresher exchanges a refresh token for a new token pair. Implemented by
// the API client's auth endpoint group. The returned error must be
// errors.Is-matchable against common.ErrUnauthorized / common.ErrForbidden
// when the refresh token was rejected.
type Refresher interface {
	RefreshTokens(ctx context.Context, refreshToken string) (newAccess, newRefresh string, expiresIn time.Duration, err error)
}

// Options tune the Guard's timing policy. Zero values fall back to defaults.
type Options struct {
	// RefreshBuffer is how long before expiry the proactive refresh fires.
	RefreshBuffer time.Duration
	// IdleThreshold is the inactivity gap worth noting in logs. Idleness
	// alone never ends the session.
	IdleThreshold time.Duration
	// RetryInterval is the pause before the proactive loop retries after a
	// transient failure.
	RetryInterval time.Duration
}

const (
	defaultRefreshBuffer = 2 * time.Minute
	defaultIdleThreshold = 15 * time.Minute
	defaultRetryInterval = 30 * time.Second
)

func (o *Options) applyDefaults() {
	if o.RefreshBuffer <= 0 {
		o.RefreshBuffer = defaultRefreshBuffer
	}
	if o.IdleThreshold <= 0 {
		o.IdleThreshold = defaultIdleThreshold
	}
	if o.RetryInterval <= 0 {
		o.RetryInterval = defaultRetryInterval
	}
}

// Guard owns the credential triple: it is the only writer of the Store and
// the single place refresh decisions are made.
//
// Concurrency: the proactive timer and reactive triggers (on-activity,
// on-401 from the transport) can request a refresh at overlapping times.
// A singleflight group guarantees at most one network call is in flight;
// late callers attach to it and observe the same outcome. An explicit
// logout while a refresh is in flight bumps the session generation, which
// prevents the resolving refresh from resurrecting credentials.
type Guard struct {
	store     Store
	refresher Refresher
	log       logging.Logger
	opts      Options

	group singleflight.Group

	mu           sync.Mutex
	gen          uint64
	refreshing   bool
	lastActivity time.Time

	expired emitter

	// now is a test seam.
	now func() time.Time
}

func NewGuard(store Store, refresher Refresher, log logging.Logger, opts Options) *Guard {
	opts.applyDefaults()
	return &Guard{
		store:     store,
		refresher: refresher,
		log:       log,
		opts:      opts,
		now:       time.Now,
	}
}

// StoreCredentials persists a freshly issued triple, computing the absolute
// expiry from the server TTL. Overwrites any prior credentials.
func (g *Guard) StoreCredentials(ctx context.Context, accessToken, refreshToken string, expiresIn time.Duration) error {
	creds := Credentials{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    g.now().Add(expiresIn),
	}
	if err := g.store.Save(ctx, creds); err != nil {
		return err
	}
	g.log.Debug(ctx, "credentials stored", "expires_in", expiresIn.String())
	return nil
}

// ClearCredentials deletes the stored triple and invalidates any refresh
// currently in flight. Idempotent.
func (g *Guard) ClearCredentials(ctx context.Context) error {
	g.mu.Lock()
	g.gen++
	g.mu.Unlock()
	return g.store.Clear(ctx)
}

// AccessToken returns the stored access token, or "" when none is stored.
func (g *Guard) AccessToken(ctx context.Context) string {
	creds, err := g.store.Load(ctx)
	if err != nil {
		g.log.Error(ctx, "failed to load credentials", "error", err)
		return ""
	}
	if creds == nil {
		return ""
	}
	return creds.AccessToken
}

// Authenticated reports whether a credential triple is stored. This is the
// only authentication fact the view layer gets to observe.
func (g *Guard) Authenticated(ctx context.Context) bool {
	creds, err := g.store.Load(ctx)
	return err == nil && creds != nil
}

// IsExpired reports whether the access token's deadline has passed. True
// when nothing is stored.
func (g *Guard) IsExpired(ctx context.Context) bool {
	creds, err := g.store.Load(ctx)
	if err != nil {
		g.log.Error(ctx, "failed to load credentials", "error", err)
		return true
	}
	if creds == nil {
		return true
	}
	return !g.now().Before(creds.ExpiresAt)
}

// TimeUntilExpiry returns max(0, expiresAt-now); zero when nothing is stored.
func (g *Guard) TimeUntilExpiry(ctx context.Context) time.Duration {
	creds, err := g.store.Load(ctx)
	if err != nil || creds == nil {
		return 0
	}
	d := creds.ExpiresAt.Sub(g.now())
	if d < 0 {
		return 0
	}
	return d
}

// State derives the lifecycle state for display purposes.
func (g *Guard) State(ctx context.Context) State {
	g.mu.Lock()
	refreshing := g.refreshing
	g.mu.Unlock()
	if refreshing {
		return StateRefreshing
	}

	creds, err := g.store.Load(ctx)
	if err != nil || creds == nil {
		return StateUnauthenticated
	}
	if !g.now().Before(creds.ExpiresAt) {
		return StateExpired
	}
	return StateValid
}

// SessionExpired returns a channel that receives a signal when a refresh
// fails terminally and the session is force-ended. The console subscribes
// once at startup.
func (g *Guard) SessionExpired() <-chan struct{} {
	return g.expired.subscribe()
}

// Refresh exchanges the stored refresh token for a new triple.
//
// Concurrent callers share a single network call and observe the same
// outcome. On auth failure the credentials are cleared and the
// session-expired signal fires once; on transient failure nothing changes.
func (g *Guard) Refresh(ctx context.Context) Outcome {
	v, _, _ := g.group.Do("refresh", func() (any, error) {
		g.mu.Lock()
		g.refreshing = true
		g.mu.Unlock()
		defer func() {
			g.mu.Lock()
			g.refreshing = false
			g.mu.Unlock()
		}()
		return g.doRefresh(ctx), nil
	})
	return v.(Outcome)
}

func (g *Guard) doRefresh(ctx context.Context) Outcome {
	g.mu.Lock()
	gen := g.gen
	g.mu.Unlock()

	creds, err := g.store.Load(ctx)
	if err != nil {
		g.log.Error(ctx, "failed to load credentials", "error", err)
		return OutcomeTransientFailure
	}
	if creds == nil || creds.RefreshToken == "" {
		// Nothing to refresh with. No network call, no signal: there is no
		// session to force-end.
		return OutcomeAuthFailure
	}

	access, refresh, expiresIn, err := g.refresher.RefreshTokens(ctx, creds.RefreshToken)
	if err != nil {
		if isAuthError(err) {
			g.log.Warn(ctx, "refresh token rejected, ending session", "error", err)
			if clearErr := g.ClearCredentials(ctx); clearErr != nil {
				g.log.Error(ctx, "failed to clear credentials", "error", clearErr)
			}
			g.expired.emit()
			return OutcomeAuthFailure
		}
		g.log.Warn(ctx, "token refresh failed, will retry", "error", err)
		return OutcomeTransientFailure
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.gen != gen {
		// Logged out while the refresh was in flight. The result must not
		// resurrect the session.
		g.log.Debug(ctx, "discarding refresh result after logout")
		return OutcomeAuthFailure
	}

	newCreds := Credentials{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    g.now().Add(expiresIn),
	}
	if err := g.store.Save(ctx, newCreds); err != nil {
		g.log.Error(ctx, "failed to store refreshed credentials", "error", err)
		return OutcomeTransientFailure
	}

	g.log.Debug(ctx, "credentials refreshed", "expires_in", expiresIn.String())
	return OutcomeSuccess
}

// OnActivity records user interaction and, if the token has lapsed while a
// session is still stored, triggers a lazy refresh before the interaction
// proceeds. The very first request after expiry may still race the refresh;
// the transport's retry-on-401 covers that window.
func (g *Guard) OnActivity(ctx context.Context) {
	now := g.now()

	g.mu.Lock()
	prev := g.lastActivity
	g.lastActivity = now
	g.mu.Unlock()

	if !prev.IsZero() {
		if idle := now.Sub(prev); idle >= g.opts.IdleThreshold {
			g.log.Debug(ctx, "activity after idle period", "idle", idle.String())
		}
	}

	if g.Authenticated(ctx) && g.IsExpired(ctx) {
		g.Refresh(ctx)
	}
}

// LastActivity returns the time of the most recent recorded interaction.
func (g *Guard) LastActivity() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastActivity
}

func isAuthError(err error) bool {
	return errors.Is(err, common.ErrUnauthorized) ||
		errors.Is(err, common.ErrForbidden) ||
		errors.Is(err, common.ErrTokenExpired)
}
