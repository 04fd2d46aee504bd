package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *SQLiteStore {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewSQLiteStore(db)
}

func TestLoadEmpty(t *testing.T) {
	store := newTestDB(t)

	blob, ok, err := store.Load(context.Background())
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, blob)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, []byte(`{"v":1}`)))

	blob, ok, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte(`{"v":1}`), blob)
}

func TestSaveOverwrites(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, []byte(`first`)))
	require.NoError(t, store.Save(ctx, []byte(`second`)))

	blob, ok, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte(`second`), blob)
}

func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewSQLiteStore(db).Save(ctx, []byte(`persisted`)))
	require.NoError(t, db.Close())

	db, err = Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	blob, ok, err := NewSQLiteStore(db).Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte(`persisted`), blob)
}

func TestMemoryStoreCountsSaves(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, ok, err := store.Load(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, store.Save(ctx, []byte(`a`)))
	require.NoError(t, store.Save(ctx, []byte(`b`)))
	require.Equal(t, 2, store.Saves)

	blob, ok, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte(`b`), blob)
}
