package localstate

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	ctx := context.Background()

	db, err := Open(ctx, filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewSQLiteRepository(db)
}

func TestSQLiteRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	value, err := repo.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, value)

	require.NoError(t, repo.Set(ctx, "session_token", []byte("s1")))

	value, err = repo.Get(ctx, "session_token")
	require.NoError(t, err)
	assert.Equal(t, []byte("s1"), value)

	// Set on an existing key overwrites.
	require.NoError(t, repo.Set(ctx, "session_token", []byte("s2")))
	value, err = repo.Get(ctx, "session_token")
	require.NoError(t, err)
	assert.Equal(t, []byte("s2"), value)

	require.NoError(t, repo.Delete(ctx, "session_token"))
	value, err = repo.Get(ctx, "session_token")
	require.NoError(t, err)
	assert.Nil(t, value)

	// Deleting an absent key is not an error.
	require.NoError(t, repo.Delete(ctx, "session_token"))
}

func TestSQLiteRepository_DeleteMany(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	require.NoError(t, repo.Set(ctx, "session_token", []byte("s1")))
	require.NoError(t, repo.Set(ctx, "current_user", []byte(`{"name":"A"}`)))
	require.NoError(t, repo.Set(ctx, "other", []byte("keep")))

	require.NoError(t, repo.DeleteMany(ctx, "session_token", "current_user"))

	for _, key := range []string{"session_token", "current_user"} {
		value, err := repo.Get(ctx, key)
		require.NoError(t, err)
		assert.Nil(t, value)
	}

	value, err := repo.Get(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, []byte("keep"), value)
}

func TestSQLiteRepository_Clear(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	require.NoError(t, repo.Set(ctx, "a", []byte("1")))
	require.NoError(t, repo.Set(ctx, "b", []byte("2")))

	require.NoError(t, repo.Clear(ctx))

	for _, key := range []string{"a", "b"} {
		value, err := repo.Get(ctx, key)
		require.NoError(t, err)
		assert.Nil(t, value)
	}
}
