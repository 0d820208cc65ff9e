package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/readably/internal/domain/entity"
	"github.com/bnema/readably/internal/domain/repository"
	"github.com/bnema/readably/internal/logging"
)

// InteractionTracker accumulates usage counters for one page session.
type InteractionTracker struct {
	mu        sync.Mutex
	startedAt time.Time
	zoomIn    int
	zoomOut   int
	last      entity.Settings
}

// Observe records a settings transition.
func (t *InteractionTracker) Observe(prev, next entity.Settings) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch {
	case next.Zoom > prev.Zoom:
		t.zoomIn++
	case next.Zoom < prev.Zoom:
		t.zoomOut++
	}
	t.last = next
}

// Counts returns the zoom in and zoom out counters.
func (t *InteractionTracker) Counts() (zoomIn, zoomOut int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.zoomIn, t.zoomOut
}

// RecordInteractionUseCase writes popup sessions to the interaction log.
type RecordInteractionUseCase struct {
	repo repository.InteractionRepository
	now  func() time.Time
}

// NewRecordInteractionUseCase creates the use case. now defaults to time.Now.
func NewRecordInteractionUseCase(repo repository.InteractionRepository, now func() time.Time) *RecordInteractionUseCase {
	if now == nil {
		now = time.Now
	}
	return &RecordInteractionUseCase{repo: repo, now: now}
}

// Start begins tracking a session whose initial state is initial.
func (uc *RecordInteractionUseCase) Start(initial entity.Settings) *InteractionTracker {
	return &InteractionTracker{startedAt: uc.now(), last: initial}
}

// Finish stores one interaction row for the tracked session.
func (uc *RecordInteractionUseCase) Finish(ctx context.Context, t *InteractionTracker) (*entity.Interaction, error) {
	log := logging.FromContext(ctx)

	t.mu.Lock()
	interaction := &entity.Interaction{
		ZoomInCount:  t.zoomIn,
		ZoomOutCount: t.zoomOut,
		TimeOnPage:   uc.now().Sub(t.startedAt).Truncate(time.Second),
		Settings:     t.last,
	}
	t.mu.Unlock()

	if err := uc.repo.Insert(ctx, interaction); err != nil {
		return nil, fmt.Errorf("failed to log interaction: %w", err)
	}

	log.Info().
		Int("zoom_in", interaction.ZoomInCount).
		Int("zoom_out", interaction.ZoomOutCount).
		Dur("time_on_page", interaction.TimeOnPage).
		Msg("interaction logged")
	return interaction, nil
}

// List returns the most recent interactions.
func (uc *RecordInteractionUseCase) List(ctx context.Context, limit int) ([]*entity.Interaction, error) {
	if limit <= 0 {
		limit = 20
	}
	interactions, err := uc.repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list interactions: %w", err)
	}
	return interactions, nil
}
