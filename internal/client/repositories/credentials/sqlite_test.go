package credentials

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:credrepo?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS credentials (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
DELETE FROM credentials;
`)
	require.NoError(t, err)
	return db
}

func TestSetGet(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyToken, "T1"))

	v, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Equal(t, "T1", v)
}

func TestSet_Overwrites(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyIdentity, "alice"))
	require.NoError(t, repo.Set(ctx, KeyIdentity, "bob"))

	v, err := repo.Get(ctx, KeyIdentity)
	require.NoError(t, err)
	require.Equal(t, "bob", v)
}

func TestGet_MissingKeyIsEmpty(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))

	v, err := repo.Get(context.Background(), KeyToken)
	require.NoError(t, err)
	require.Empty(t, v)
}

func TestDeleteAndClear(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyToken, "T1"))
	require.NoError(t, repo.Set(ctx, KeyIdentity, "alice"))

	require.NoError(t, repo.Delete(ctx, KeyToken))
	v, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Empty(t, v)

	require.NoError(t, repo.Clear(ctx))
	v, err = repo.Get(ctx, KeyIdentity)
	require.NoError(t, err)
	require.Empty(t, v)

	// Clear on an empty table is fine.
	require.NoError(t, repo.Clear(ctx))
}
