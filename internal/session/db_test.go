package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInitDatabase_MigratesSchema(t *testing.T) {
	ctx := context.Background()

	db, err := InitDatabase(ctx, "file:init_test?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// The migrated schema must be usable by the store straight away.
	store := NewSQLiteStore(db)
	require.NoError(t, store.Save(ctx, Credentials{
		AccessToken:  "a",
		RefreshToken: "r",
		ExpiresAt:    time.Now().Add(time.Hour),
	}))

	creds, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, creds)
	require.Equal(t, "a", creds.AccessToken)
}

func TestInitDatabase_Idempotent(t *testing.T) {
	ctx := context.Background()

	db, err := InitDatabase(ctx, "file:init_twice?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// Running the migrations again must be a no-op.
	require.NoError(t, RunMigrations(ctx, db))
}
