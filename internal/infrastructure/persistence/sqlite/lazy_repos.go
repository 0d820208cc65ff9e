// Package sqlite provides SQLite implementations of domain repositories.
//
// The lazy wrappers below defer opening the database until a repository is
// first used, so commands that never touch the store (schema, version) skip
// the WASM compilation and migrations entirely.
package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/readably/internal/application/port"
	"github.com/bnema/readably/internal/domain/entity"
	"github.com/bnema/readably/internal/domain/repository"
)

// LazySettingsRepository wraps a settings repository with lazy database initialization.
type LazySettingsRepository struct {
	provider port.Database
	repo     repository.SettingsRepository
	once     sync.Once
	initErr  error
}

// NewLazySettingsRepository creates a lazy-loading settings repository.
func NewLazySettingsRepository(provider port.Database) repository.SettingsRepository {
	return &LazySettingsRepository{provider: provider}
}

func (r *LazySettingsRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewSettingsRepository(db)
	})
	return r.initErr
}

func (r *LazySettingsRepository) Get(ctx context.Context, defaults entity.Settings) (entity.Settings, error) {
	if err := r.init(ctx); err != nil {
		return defaults, err
	}
	return r.repo.Get(ctx, defaults)
}

func (r *LazySettingsRepository) Set(ctx context.Context, patch entity.Patch) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Set(ctx, patch)
}

func (r *LazySettingsRepository) Reset(ctx context.Context) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Reset(ctx)
}

// LazyInteractionRepository wraps an interaction repository with lazy database initialization.
type LazyInteractionRepository struct {
	provider port.Database
	repo     repository.InteractionRepository
	once     sync.Once
	initErr  error
}

// NewLazyInteractionRepository creates a lazy-loading interaction repository.
func NewLazyInteractionRepository(provider port.Database) repository.InteractionRepository {
	return &LazyInteractionRepository{provider: provider}
}

func (r *LazyInteractionRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewInteractionRepository(db)
	})
	return r.initErr
}

func (r *LazyInteractionRepository) Insert(ctx context.Context, interaction *entity.Interaction) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Insert(ctx, interaction)
}

func (r *LazyInteractionRepository) List(ctx context.Context, limit int) ([]*entity.Interaction, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.List(ctx, limit)
}
