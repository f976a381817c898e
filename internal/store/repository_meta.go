package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pkruglov/notesync/internal/logger"
	"github.com/pkruglov/notesync/models"
)

type metaRepository struct {
	*DB
	logger *logger.Logger
}

func NewMetaRepository(db *DB, logger *logger.Logger) MetaRepository {
	return &metaRepository{
		DB:     db,
		logger: logger,
	}
}

func (m *metaRepository) LoadMeta(ctx context.Context, kind models.RecordKind) (models.SyncMeta, error) {
	log := logger.FromContext(ctx)

	var meta models.SyncMeta
	row := m.DB.QueryRowContext(ctx, getSyncMeta, kind)
	err := row.Scan(
		&meta.Kind,
		&meta.ChangeToken,
		&meta.LastSyncedAt,
		&meta.DeviceID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SyncMeta{}, ErrMetaNotFound
		}
		log.Err(err).
			Str("func", "metaRepository.LoadMeta").
			Str("kind", string(kind)).
			Msg("failed to scan sync meta row")
		return models.SyncMeta{}, fmt.Errorf("failed to scan sync meta row: %w", err)
	}

	return meta, nil
}

func (m *metaRepository) SaveMeta(ctx context.Context, meta models.SyncMeta) error {
	log := logger.FromContext(ctx)

	_, err := m.DB.ExecContext(ctx, upsertSyncMeta,
		meta.Kind,
		meta.ChangeToken,
		meta.LastSyncedAt,
		meta.DeviceID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "metaRepository.SaveMeta").
			Str("kind", string(meta.Kind)).
			Msg("failed to execute upsert for sync meta")
		return fmt.Errorf("failed to save sync meta (kind=%s): %w", meta.Kind, err)
	}

	return nil
}
