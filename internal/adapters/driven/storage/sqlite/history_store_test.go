package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestHistoryStore_EmptyOnFreshDatabase(t *testing.T) {
	store := newTestStore(t)

	searches, err := store.HistoryStore().Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, searches)
}

func TestHistoryStore_SaveAndLoadPreservesOrder(t *testing.T) {
	ctx := context.Background()
	history := newTestStore(t).HistoryStore()

	saved := []string{"vss unity", "apollo 11", "skylab 4"}
	require.NoError(t, history.Save(ctx, saved))

	loaded, err := history.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestHistoryStore_SaveReplacesPriorList(t *testing.T) {
	ctx := context.Background()
	history := newTestStore(t).HistoryStore()

	require.NoError(t, history.Save(ctx, []string{"apollo 11", "skylab 4"}))
	require.NoError(t, history.Save(ctx, []string{"artemis i"}))

	loaded, err := history.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"artemis i"}, loaded)
}

func TestHistoryStore_SaveEmptyClears(t *testing.T) {
	ctx := context.Background()
	history := newTestStore(t).HistoryStore()

	require.NoError(t, history.Save(ctx, []string{"apollo 11"}))
	require.NoError(t, history.Save(ctx, nil))

	loaded, err := history.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestStore_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.HistoryStore().Save(ctx, []string{"apollo 11"}))
	require.NoError(t, store.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	loaded, err := reopened.HistoryStore().Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"apollo 11"}, loaded)
}
