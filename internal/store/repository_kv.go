package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pkruglov/notesync/internal/logger"
)

type kvRepository struct {
	*DB
	logger *logger.Logger
}

func NewKVRepository(db *DB, logger *logger.Logger) KVRepository {
	return &kvRepository{
		DB:     db,
		logger: logger,
	}
}

func (k *kvRepository) GetValue(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	var value string
	row := k.DB.QueryRowContext(ctx, getKVValue, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrKeyNotFound
		}
		log.Err(err).
			Str("func", "kvRepository.GetValue").
			Str("key", key).
			Msg("failed to scan kv row")
		return "", fmt.Errorf("failed to scan kv row: %w", err)
	}

	return value, nil
}

func (k *kvRepository) SetValue(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	if _, err := k.DB.ExecContext(ctx, upsertKVValue, key, value); err != nil {
		log.Err(err).
			Str("func", "kvRepository.SetValue").
			Str("key", key).
			Msg("failed to execute upsert for kv value")
		return fmt.Errorf("failed to set kv value (key=%s): %w", key, err)
	}

	return nil
}
