package repository

import (
	"context"

	"github.com/bnema/readably/internal/domain/entity"
)

// SettingsRepository is the persistent key-value store of style preferences.
type SettingsRepository interface {
	// Get returns the stored settings, using defaults for every missing key.
	Get(ctx context.Context, defaults entity.Settings) (entity.Settings, error)

	// Set merges the patch keys into the store. Keys are written independently.
	Set(ctx context.Context, patch entity.Patch) error

	// Reset removes every stored key.
	Reset(ctx context.Context) error
}
