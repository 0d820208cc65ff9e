// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/readably/internal/application/port"
	"github.com/bnema/readably/internal/domain/entity"
	"github.com/bnema/readably/internal/domain/repository"
	"github.com/bnema/readably/internal/domain/style"
	"github.com/bnema/readably/internal/logging"
)

// ApplyStyleUseCase is the page-side style engine: it turns settings into style
// elements and mirrors every applied value into the settings store.
type ApplyStyleUseCase struct {
	sink     port.StyleSink
	settings repository.SettingsRepository
}

// NewApplyStyleUseCase creates a style engine writing to sink and persisting to settings.
func NewApplyStyleUseCase(sink port.StyleSink, settings repository.SettingsRepository) *ApplyStyleUseCase {
	return &ApplyStyleUseCase{
		sink:     sink,
		settings: settings,
	}
}

// Apply renders dimension d of s and persists its value.
// Persistence failures are logged and never returned.
func (uc *ApplyStyleUseCase) Apply(ctx context.Context, s entity.Settings, d entity.Dimension) error {
	if err := uc.render(ctx, s, d); err != nil {
		return err
	}

	patch := s.Patch(d)
	if err := uc.settings.Set(ctx, patch); err != nil {
		logging.FromContext(ctx).Warn().
			Err(err).
			Str("dimension", string(d)).
			Msg("failed to persist setting")
	}
	return nil
}

// Render applies every dimension of s without persisting anything.
// ReadableFont is only touched when enabled.
func (uc *ApplyStyleUseCase) Render(ctx context.Context, s entity.Settings) error {
	for _, d := range entity.RestoreOrder {
		if d == entity.DimensionReadableFont && !s.ReadableFont {
			continue
		}
		if err := uc.render(ctx, s, d); err != nil {
			return err
		}
	}
	return nil
}

// Restore loads the stored settings and renders them in restore order.
func (uc *ApplyStyleUseCase) Restore(ctx context.Context) (entity.Settings, error) {
	log := logging.FromContext(ctx)

	s, err := uc.settings.Get(ctx, entity.DefaultSettings())
	if err != nil {
		return entity.DefaultSettings(), fmt.Errorf("failed to load settings: %w", err)
	}

	if err := uc.Render(ctx, s); err != nil {
		return s, fmt.Errorf("failed to restore styles: %w", err)
	}

	log.Debug().Interface("settings", s).Msg("styles restored")
	return s, nil
}

func (uc *ApplyStyleUseCase) render(ctx context.Context, s entity.Settings, d entity.Dimension) error {
	log := logging.FromContext(ctx)
	id := d.ElementID()

	css, present := style.Rule(d, s)
	if !present {
		log.Debug().Str("id", id).Msg("removing style element")
		if err := uc.sink.Remove(ctx, id); err != nil {
			return fmt.Errorf("failed to remove %s: %w", id, err)
		}
		return nil
	}

	log.Debug().Str("id", id).Int("value", s.Value(d)).Msg("upserting style element")
	if err := uc.sink.Upsert(ctx, id, css); err != nil {
		return fmt.Errorf("failed to apply %s: %w", id, err)
	}
	return nil
}
