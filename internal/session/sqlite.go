package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tmorris/bizlink-admin/internal/dbx"
)

// Fixed keys the triple is stored under.
const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyExpiresAt    = "expires_at"
)

// SQLiteStore persists credentials in a local SQLite key/value table so the
// session survives console restarts.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) set(ctx context.Context, q dbx.DBTX, key, value string) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set credentials[%s]: %w", key, err)
	}
	return nil
}

// Load returns the stored triple, or (nil, nil) if any field is absent.
// A partial triple is treated as absent.
//
// All keys are read in a single statement so the result is one consistent
// snapshot: a Save committing concurrently can never yield a mix of old and
// new tokens.
func (s *SQLiteStore) Load(ctx context.Context) (*Credentials, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM credentials`)
	if err != nil {
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string, 3)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to load credentials: %w", err)
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}

	access, refresh, expires := values[keyAccessToken], values[keyRefreshToken], values[keyExpiresAt]
	if access == "" || refresh == "" || expires == "" {
		return nil, nil
	}

	expiresAt, err := time.Parse(time.RFC3339Nano, expires)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored expiry: %w", err)
	}

	return &Credentials{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt,
	}, nil
}

// Save writes all three fields in a single transaction.
func (s *SQLiteStore) Save(ctx context.Context, creds Credentials) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.set(ctx, tx, keyAccessToken, creds.AccessToken); err != nil {
			return err
		}
		if err := s.set(ctx, tx, keyRefreshToken, creds.RefreshToken); err != nil {
			return err
		}
		return s.set(ctx, tx, keyExpiresAt, creds.ExpiresAt.Format(time.RFC3339Nano))
	})
}

// Clear deletes the triple. Idempotent.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credentials`)
	if err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}
