package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bnema/readably/internal/domain/entity"
	"github.com/bnema/readably/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/readably/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func openTestDB(t *testing.T) (context.Context, *sqlite.LazyDB) {
	t.Helper()
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "readably.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })
	return ctx, lazy
}

func TestSettingsRepository_EmptyStoreReturnsDefaults(t *testing.T) {
	ctx, lazy := openTestDB(t)
	db, err := lazy.DB(ctx)
	require.NoError(t, err)

	repo := sqlite.NewSettingsRepository(db)

	got, err := repo.Get(ctx, entity.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultSettings(), got)

	defaults := entity.Settings{Zoom: 20}
	got, err = repo.Get(ctx, defaults)
	require.NoError(t, err)
	assert.Equal(t, defaults, got)
}

func TestSettingsRepository_SetMergesKeys(t *testing.T) {
	ctx, lazy := openTestDB(t)
	db, err := lazy.DB(ctx)
	require.NoError(t, err)

	repo := sqlite.NewSettingsRepository(db)

	require.NoError(t, repo.Set(ctx, entity.Patch{entity.DimensionContrast: 3}))
	require.NoError(t, repo.Set(ctx, entity.Patch{
		entity.DimensionFont:         2,
		entity.DimensionReadableFont: 1,
	}))
	require.NoError(t, repo.Set(ctx, entity.Patch{entity.DimensionZoom: -10}))

	got, err := repo.Get(ctx, entity.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, entity.Settings{
		Contrast:     3,
		Font:         2,
		Zoom:         -10,
		ReadableFont: true,
	}, got)

	// Later writes replace earlier ones key by key.
	require.NoError(t, repo.Set(ctx, entity.Patch{entity.DimensionContrast: 0}))
	got, err = repo.Get(ctx, entity.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, 0, got.Contrast)
	assert.Equal(t, 2, got.Font)
}

func TestSettingsRepository_SkipsUnknownAndMalformedRows(t *testing.T) {
	ctx, lazy := openTestDB(t)
	db, err := lazy.DB(ctx)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `INSERT INTO settings (key, value) VALUES
		('spacing', '"4"'),
		('align', 'not-a-number'),
		('legacyKey', '7')`)
	require.NoError(t, err)

	repo := sqlite.NewSettingsRepository(db)
	got, err := repo.Get(ctx, entity.Settings{Align: 2})
	require.NoError(t, err)
	assert.Equal(t, 4, got.Spacing)
	assert.Equal(t, 2, got.Align, "malformed rows keep the default")
}

func TestSettingsRepository_Reset(t *testing.T) {
	ctx, lazy := openTestDB(t)
	db, err := lazy.DB(ctx)
	require.NoError(t, err)

	repo := sqlite.NewSettingsRepository(db)
	require.NoError(t, repo.Set(ctx, entity.Patch{entity.DimensionSpacing: 5}))
	require.NoError(t, repo.Reset(ctx))

	got, err := repo.Get(ctx, entity.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultSettings(), got)
}

func TestLazySettingsRepository_InitializesOnFirstUse(t *testing.T) {
	ctx, lazy := openTestDB(t)
	repo := sqlite.NewLazySettingsRepository(lazy)

	assert.False(t, lazy.IsInitialized())
	require.NoError(t, repo.Set(ctx, entity.Patch{entity.DimensionAlign: 3}))
	assert.True(t, lazy.IsInitialized())

	got, err := repo.Get(ctx, entity.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, 3, got.Align)
}

func TestLazySettingsRepository_PropagatesInitError(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewLazySettingsRepository(sqlite.NewLazyDB(""))

	defaults := entity.Settings{Contrast: 1}
	got, err := repo.Get(ctx, defaults)
	require.Error(t, err)
	assert.Equal(t, defaults, got)
	assert.Error(t, repo.Set(ctx, entity.Patch{entity.DimensionFont: 1}))
}
