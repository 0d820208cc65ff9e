package writeback_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/bnema/readably/internal/domain/entity"
	"github.com/bnema/readably/internal/domain/repository/mocks"
	"github.com/bnema/readably/internal/infrastructure/persistence/writeback"
	"github.com/bnema/readably/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func TestWriter_SetIsWrittenInOrder(t *testing.T) {
	ctx := testCtx()
	repo := mocks.NewMockSettingsRepository(t)

	var mu sync.Mutex
	var written []int
	repo.EXPECT().Set(mock.Anything, mock.Anything).
		Run(func(_ context.Context, patch entity.Patch) {
			mu.Lock()
			written = append(written, patch[entity.DimensionZoom])
			mu.Unlock()
		}).
		Return(nil).
		Times(50)

	w := writeback.NewWriter(ctx, repo)
	for i := range 50 {
		require.NoError(t, w.Set(ctx, entity.Patch{entity.DimensionZoom: i}))
	}
	w.Flush()

	require.Len(t, written, 50)
	for i, v := range written {
		assert.Equal(t, i, v)
	}
}

func TestWriter_SetSwallowsErrors(t *testing.T) {
	ctx := testCtx()
	repo := mocks.NewMockSettingsRepository(t)
	repo.EXPECT().Set(mock.Anything, mock.Anything).Return(errors.New("disk full")).Twice()

	w := writeback.NewWriter(ctx, repo)
	assert.NoError(t, w.Set(ctx, entity.Patch{entity.DimensionFont: 1}))
	assert.NoError(t, w.Set(ctx, entity.Patch{entity.DimensionFont: 2}))
	require.NoError(t, w.Close())

	assert.Equal(t, 2, w.Failures())
}

func TestWriter_EmptyPatchIsIgnored(t *testing.T) {
	ctx := testCtx()
	repo := mocks.NewMockSettingsRepository(t)

	w := writeback.NewWriter(ctx, repo)
	require.NoError(t, w.Set(ctx, entity.Patch{}))
	w.Flush()

	repo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestWriter_GetFlushesFirst(t *testing.T) {
	ctx := testCtx()
	repo := mocks.NewMockSettingsRepository(t)

	var mu sync.Mutex
	stored := entity.DefaultSettings()
	repo.EXPECT().Set(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, patch entity.Patch) error {
			mu.Lock()
			stored = stored.Merge(patch)
			mu.Unlock()
			return nil
		})
	repo.EXPECT().Get(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, entity.Settings) (entity.Settings, error) {
			mu.Lock()
			defer mu.Unlock()
			return stored, nil
		})

	w := writeback.NewWriter(ctx, repo)
	require.NoError(t, w.Set(ctx, entity.Patch{entity.DimensionSpacing: 4}))

	got, err := w.Get(ctx, entity.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, 4, got.Spacing)
}

func TestWriter_ResetAfterPendingWrites(t *testing.T) {
	ctx := testCtx()
	repo := mocks.NewMockSettingsRepository(t)

	var mu sync.Mutex
	var calls []string
	repo.EXPECT().Set(mock.Anything, mock.Anything).
		Run(func(context.Context, entity.Patch) {
			mu.Lock()
			calls = append(calls, "set")
			mu.Unlock()
		}).
		Return(nil)
	repo.EXPECT().Reset(mock.Anything).
		Run(func(context.Context) {
			mu.Lock()
			calls = append(calls, "reset")
			mu.Unlock()
		}).
		Return(nil)

	w := writeback.NewWriter(ctx, repo)
	require.NoError(t, w.Set(ctx, entity.Patch{entity.DimensionAlign: 1}))
	require.NoError(t, w.Reset(ctx))

	assert.Equal(t, []string{"set", "reset"}, calls)
}

func TestWriter_IgnoresCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(testCtx())
	repo := mocks.NewMockSettingsRepository(t)
	repo.EXPECT().Set(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ entity.Patch) error {
			return ctx.Err()
		})

	w := writeback.NewWriter(ctx, repo)
	cancel()
	require.NoError(t, w.Set(ctx, entity.Patch{entity.DimensionContrast: 2}))
	w.Flush()

	assert.Zero(t, w.Failures())
}

func TestWriter_FlushConcurrentWithSet(t *testing.T) {
	ctx := testCtx()
	repo := mocks.NewMockSettingsRepository(t)

	var writes atomic.Int32
	repo.EXPECT().Set(mock.Anything, mock.Anything).
		Run(func(context.Context, entity.Patch) { writes.Add(1) }).
		Return(nil)

	w := writeback.NewWriter(ctx, repo)
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, w.Set(ctx, entity.Patch{entity.DimensionZoom: i}))
		}()
		go func() {
			defer wg.Done()
			w.Flush()
		}()
	}
	wg.Wait()
	w.Flush()

	assert.Equal(t, int32(20), writes.Load())
}
