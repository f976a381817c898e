package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/pkruglov/notesync/internal/logger"
	"github.com/pkruglov/notesync/models"
)

type recordRepository struct {
	*DB
	logger *logger.Logger
}

func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	return &recordRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *recordRepository) LoadAll(ctx context.Context, kind models.RecordKind) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(recordColumns...).
		From("records").
		Where(sq.Eq{"kind": kind}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build records query: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.LoadAll").
			Str("kind", string(kind)).
			Msg("failed to execute query for loading records")
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []models.Record

	for rows.Next() {
		record, scanErr := scanRecord(rows)
		if scanErr != nil {
			// One malformed row must not block the rest of the collection.
			log.Warn().Err(scanErr).
				Str("func", "recordRepository.LoadAll").
				Str("kind", string(kind)).
				Msg("skipping record row that failed to decode")
			continue
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating record rows: %w", err)
	}

	return records, nil
}

func (r *recordRepository) Get(ctx context.Context, id string) (models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(recordColumns...).
		From("records").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Record{}, fmt.Errorf("failed to build record query: %w", err)
	}

	row := r.DB.QueryRowContext(ctx, query, args...)
	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Record{}, ErrRecordNotFound
		}
		log.Err(err).
			Str("func", "recordRepository.Get").
			Str("id", id).
			Msg("failed to scan record row")
		return models.Record{}, fmt.Errorf("failed to scan record row: %w", err)
	}

	return record, nil
}

func (r *recordRepository) SaveOne(ctx context.Context, record models.Record) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, upsertRecord, upsertArgs(record)...); err != nil {
		log.Err(err).
			Str("func", "recordRepository.SaveOne").
			Str("id", record.ID).
			Str("kind", string(record.Kind)).
			Msg("failed to execute upsert for record")
		return fmt.Errorf("failed to save record (id=%s): %w", record.ID, err)
	}

	return nil
}

func (r *recordRepository) SaveAll(ctx context.Context, kind models.RecordKind, records []models.Record) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin records transaction: %w", err)
	}
	defer tx.Rollback()

	for _, record := range records {
		if record.Kind != kind {
			continue
		}
		if _, err = tx.ExecContext(ctx, upsertRecord, upsertArgs(record)...); err != nil {
			log.Err(err).
				Str("func", "recordRepository.SaveAll").
				Str("id", record.ID).
				Str("kind", string(kind)).
				Msg("failed to execute upsert for record in batch")
			return fmt.Errorf("failed to save record (id=%s): %w", record.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit records transaction: %w", err)
	}

	return nil
}

func (r *recordRepository) DeleteOne(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteRecord, id); err != nil {
		log.Err(err).
			Str("func", "recordRepository.DeleteOne").
			Str("id", id).
			Msg("failed to execute delete for record")
		return fmt.Errorf("failed to delete record (id=%s): %w", id, err)
	}

	return nil
}

func upsertArgs(record models.Record) []any {
	var lastSyncedAt sql.NullTime
	if record.LastSyncedAt != nil {
		lastSyncedAt = sql.NullTime{Time: *record.LastSyncedAt, Valid: true}
	}

	return []any{
		record.ID,
		record.Kind,
		record.Payload.Title,
		record.Payload.Content,
		record.Payload.Done,
		record.CreatedAt,
		record.UpdatedAt,
		record.SyncVersion,
		record.SyncStatus,
		record.IsDirty,
		record.DeviceID,
		lastSyncedAt,
		record.HasConflict,
		record.ConflictCopyID,
	}
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (models.Record, error) {
	var record models.Record
	var lastSyncedAt sql.NullTime

	err := row.Scan(
		&record.ID,
		&record.Kind,
		&record.Payload.Title,
		&record.Payload.Content,
		&record.Payload.Done,
		&record.CreatedAt,
		&record.UpdatedAt,
		&record.SyncVersion,
		&record.SyncStatus,
		&record.IsDirty,
		&record.DeviceID,
		&lastSyncedAt,
		&record.HasConflict,
		&record.ConflictCopyID,
	)
	if err != nil {
		return models.Record{}, err
	}

	if lastSyncedAt.Valid {
		t := lastSyncedAt.Time
		record.LastSyncedAt = &t
	}

	return record, nil
}
