package repository

import (
	"context"

	"github.com/bnema/readably/internal/domain/entity"
)

// InteractionRepository is the insert-only usage log.
type InteractionRepository interface {
	// Insert appends an interaction and sets its ID.
	Insert(ctx context.Context, interaction *entity.Interaction) error

	// List returns the most recent interactions, newest first.
	List(ctx context.Context, limit int) ([]*entity.Interaction, error)
}
