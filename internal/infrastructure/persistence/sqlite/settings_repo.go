package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/bnema/readably/internal/domain/entity"
	"github.com/bnema/readably/internal/domain/repository"
	"github.com/bnema/readably/internal/infrastructure/persistence/sqlite/sqlc"
	"github.com/bnema/readably/internal/logging"
)

type settingsRepo struct {
	queries *sqlc.Queries
}

// NewSettingsRepository creates a new SQLite-backed settings store.
func NewSettingsRepository(db *sql.DB) repository.SettingsRepository {
	return &settingsRepo{queries: sqlc.New(db)}
}

func (r *settingsRepo) Get(ctx context.Context, defaults entity.Settings) (entity.Settings, error) {
	log := logging.FromContext(ctx)

	rows, err := r.queries.ListSettings(ctx)
	if err != nil {
		return defaults, err
	}

	s := defaults
	for _, row := range rows {
		d, err := entity.ParseDimension(row.Key)
		if err != nil {
			log.Debug().Str("key", row.Key).Msg("ignoring unknown setting key")
			continue
		}
		v, err := entity.ParseValue(json.RawMessage(row.Value))
		if err != nil {
			log.Warn().Err(err).Str("key", row.Key).Str("value", row.Value).Msg("ignoring malformed setting")
			continue
		}
		s = s.With(d, v)
	}

	log.Debug().Int("keys", len(rows)).Msg("settings loaded")
	return s, nil
}

func (r *settingsRepo) Set(ctx context.Context, patch entity.Patch) error {
	log := logging.FromContext(ctx)

	for _, d := range patch.Keys() {
		value := encodeValue(d, patch[d])
		log.Debug().Str("key", d.Key()).Str("value", value).Msg("writing setting")

		if err := r.queries.UpsertSetting(ctx, sqlc.UpsertSettingParams{
			Key:   d.Key(),
			Value: value,
		}); err != nil {
			return fmt.Errorf("failed to write %s: %w", d.Key(), err)
		}
	}
	return nil
}

func (r *settingsRepo) Reset(ctx context.Context) error {
	return r.queries.DeleteAllSettings(ctx)
}

// encodeValue stores readableFont as a JSON boolean and every other key as a number.
func encodeValue(d entity.Dimension, v int) string {
	if d == entity.DimensionReadableFont {
		return strconv.FormatBool(v != 0)
	}
	return strconv.Itoa(v)
}
