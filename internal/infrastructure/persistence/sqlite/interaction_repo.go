package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/bnema/readably/internal/domain/entity"
	"github.com/bnema/readably/internal/domain/repository"
	"github.com/bnema/readably/internal/infrastructure/persistence/sqlite/sqlc"
	"github.com/bnema/readably/internal/logging"
)

type interactionRepo struct {
	queries *sqlc.Queries
}

// NewInteractionRepository creates a new SQLite-backed interaction log.
func NewInteractionRepository(db *sql.DB) repository.InteractionRepository {
	return &interactionRepo{queries: sqlc.New(db)}
}

func (r *interactionRepo) Insert(ctx context.Context, in *entity.Interaction) error {
	log := logging.FromContext(ctx)

	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now()
	}

	id, err := r.queries.InsertInteraction(ctx, sqlc.InsertInteractionParams{
		ZoomInCount:  int64(in.ZoomInCount),
		ZoomOutCount: int64(in.ZoomOutCount),
		TimeOnPage:   int64(in.TimeOnPage / time.Second),
		Contrast:     int64(in.Settings.Contrast),
		Font:         int64(in.Settings.Font),
		Zoom:         int64(in.Settings.Zoom),
		Spacing:      int64(in.Settings.Spacing),
		Align:        int64(in.Settings.Align),
		ReadableFont: boolToInt64(in.Settings.ReadableFont),
		CreatedAt:    in.CreatedAt.Unix(),
	})
	if err != nil {
		return err
	}

	in.ID = id
	log.Debug().Int64("id", id).Msg("interaction inserted")
	return nil
}

func (r *interactionRepo) List(ctx context.Context, limit int) ([]*entity.Interaction, error) {
	rows, err := r.queries.ListInteractions(ctx, int64(limit))
	if err != nil {
		return nil, err
	}

	interactions := make([]*entity.Interaction, len(rows))
	for i, row := range rows {
		interactions[i] = interactionFromRow(row)
	}
	return interactions, nil
}

func interactionFromRow(row sqlc.UserInteraction) *entity.Interaction {
	return &entity.Interaction{
		ID:           row.ID,
		ZoomInCount:  int(row.ZoomInCount),
		ZoomOutCount: int(row.ZoomOutCount),
		TimeOnPage:   time.Duration(row.TimeOnPage) * time.Second,
		Settings: entity.Settings{
			Contrast:     int(row.Contrast),
			Font:         int(row.Font),
			Zoom:         int(row.Zoom),
			Spacing:      int(row.Spacing),
			Align:        int(row.Align),
			ReadableFont: row.ReadableFont != 0,
		},
		CreatedAt: time.Unix(row.CreatedAt, 0),
	}
}

func boolToInt64(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
