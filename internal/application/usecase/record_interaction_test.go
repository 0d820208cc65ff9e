package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/bnema/readably/internal/application/usecase"
	"github.com/bnema/readably/internal/domain/entity"
	repomocks "github.com/bnema/readably/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func TestRecordInteractionUseCase_CountsZoomDirections(t *testing.T) {
	ctx := testContext()
	clock := &fakeClock{now: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)}
	repo := repomocks.NewMockInteractionRepository(t)

	repo.EXPECT().Insert(mock.Anything, mock.AnythingOfType("*entity.Interaction")).Return(nil)

	uc := usecase.NewRecordInteractionUseCase(repo, clock.Now)
	tracker := uc.Start(entity.DefaultSettings())

	s0 := entity.DefaultSettings()
	s1 := s0.With(entity.DimensionZoom, 10)
	s2 := s1.With(entity.DimensionZoom, 20)
	s3 := s2.With(entity.DimensionZoom, 0)
	s4 := s3.With(entity.DimensionContrast, 2)
	tracker.Observe(s0, s1)
	tracker.Observe(s1, s2)
	tracker.Observe(s2, s3)
	tracker.Observe(s3, s4)

	in, out := tracker.Counts()
	assert.Equal(t, 2, in)
	assert.Equal(t, 1, out)

	clock.now = clock.now.Add(42*time.Second + 300*time.Millisecond)
	got, err := uc.Finish(ctx, tracker)
	require.NoError(t, err)

	assert.Equal(t, 2, got.ZoomInCount)
	assert.Equal(t, 1, got.ZoomOutCount)
	assert.Equal(t, 42*time.Second, got.TimeOnPage)
	assert.Equal(t, s4, got.Settings)
}

func TestRecordInteractionUseCase_FinishWrapsInsertError(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockInteractionRepository(t)
	repo.EXPECT().Insert(mock.Anything, mock.Anything).Return(errors.New("readonly"))

	uc := usecase.NewRecordInteractionUseCase(repo, nil)
	got, err := uc.Finish(ctx, uc.Start(entity.DefaultSettings()))
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), "failed to log interaction")
}

func TestRecordInteractionUseCase_ListDefaultsLimit(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockInteractionRepository(t)

	rows := []*entity.Interaction{{ID: 2}, {ID: 1}}
	repo.EXPECT().List(mock.Anything, 20).Return(rows, nil)
	repo.EXPECT().List(mock.Anything, 5).Return(rows[:1], nil)

	uc := usecase.NewRecordInteractionUseCase(repo, nil)

	got, err := uc.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = uc.List(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
