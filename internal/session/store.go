// Package session owns the access/refresh credential pair for the admin
// console: durable persistence, expiry tracking, single-flight refresh,
// proactive renewal and the session-expired broadcast.
//
// The Guard is the sole mutator of the stored credentials. Other components
// (the HTTP transport, the console view) only observe them through the
// Guard's methods.
package session

import (
	"context"
	"time"
)

// Credentials is the persisted triple. ExpiresAt is an absolute deadline
// computed at issuance time from the server-provided TTL.
//
// Invariant: the three fields are always written together; a reader never
// observes a half-updated triple.
type Credentials struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// Store is durable key/value persistence for the credential triple,
// surviving restarts of the console.
//
// Contract:
//   - Load returns (nil, nil) when no complete triple is stored.
//   - Save overwrites any prior triple atomically.
//   - Clear removes the triple and is a no-op when nothing is stored.
type Store interface {
	Load(ctx context.Context) (*Credentials, error)
	Save(ctx context.Context, creds Credentials) error
	Clear(ctx context.Context) error
}
