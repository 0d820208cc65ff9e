package sqlite_test

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/readably/internal/infrastructure/persistence/sqlite"
)

func TestLazyDB_OpensOnFirstUse(t *testing.T) {
	ctx := testCtx()
	path := filepath.Join(t.TempDir(), "nested", "readably.sqlite")
	lazy := sqlite.NewLazyDB(path)
	defer func() { _ = lazy.Close() }()

	assert.False(t, lazy.IsInitialized())
	assert.NoFileExists(t, path)

	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	assert.True(t, lazy.IsInitialized())
	assert.FileExists(t, path)

	version, err := sqlite.SchemaVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)
}

func TestLazyDB_SharesOneHandle(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "readably.sqlite"))
	defer func() { _ = lazy.Close() }()

	const workers = 8
	handles := make([]*sql.DB, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			db, err := lazy.DB(ctx)
			assert.NoError(t, err)
			handles[i] = db
		}()
	}
	wg.Wait()

	for _, db := range handles[1:] {
		assert.Same(t, handles[0], db)
	}
}

func TestLazyDB_CloseBeforeOpen(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "readably.sqlite"))

	require.NoError(t, lazy.Close())
	_, err := lazy.DB(testCtx())
	assert.ErrorIs(t, err, sqlite.ErrClosed)
}

func TestLazyDB_CloseAfterOpen(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "readably.sqlite"))

	_, err := lazy.DB(ctx)
	require.NoError(t, err)
	require.NoError(t, lazy.Close())
	assert.False(t, lazy.IsInitialized())
	require.NoError(t, lazy.Close())
}

func TestLazyDB_OpenFailureIsSticky(t *testing.T) {
	ctx := testCtx()
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	// The parent "directory" is a regular file, so MkdirAll fails.
	lazy := sqlite.NewLazyDB(filepath.Join(blocker, "readably.sqlite"))
	_, err := lazy.DB(ctx)
	require.Error(t, err)

	_, again := lazy.DB(ctx)
	assert.Equal(t, err.Error(), again.Error())
	assert.False(t, lazy.IsInitialized())
}

func TestLazyDB_MigrateIsIdempotent(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "readably.sqlite"))
	defer func() { _ = lazy.Close() }()

	db, err := lazy.DB(ctx)
	require.NoError(t, err)

	version, err := sqlite.Migrate(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)
}
