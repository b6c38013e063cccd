package session

import (
	"context"
	"time"
)

// RunProactiveRefresh renews the access token shortly before it expires,
// re-arming itself after every successful refresh. It blocks until ctx is
// cancelled or the refresh fails terminally, so callers run it in a
// goroutine and cancel the context on logout to avoid dangling work.
//
// A transient failure leaves the session expired but eligible for retry:
// the loop pauses for RetryInterval and tries again (on-activity refresh
// may beat it to it, which is fine; both go through the single-flight
// group).
func (g *Guard) RunProactiveRefresh(ctx context.Context) {
	for {
		delay := g.TimeUntilExpiry(ctx) - g.opts.RefreshBuffer
		if delay < 0 {
			delay = 0
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		switch g.Refresh(ctx) {
		case OutcomeSuccess:
			// Re-arm from the new expiry.
		case OutcomeTransientFailure:
			select {
			case <-ctx.Done():
				return
			case <-time.After(g.opts.RetryInterval):
			}
		case OutcomeAuthFailure:
			return
		}
	}
}
