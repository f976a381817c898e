// Package store implements the client's durable local storage: an SQLite
// database holding the record collections, per-kind sync metadata, and a
// small key/value table for installation-scoped values such as the device
// identifier.
package store

import (
	"context"

	"github.com/pkruglov/notesync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RecordRepository is the durable collection of syncable records. All
// methods are safe to call across process restarts; a row that fails to
// decode is skipped, never fatal to the surrounding load.
type RecordRepository interface {
	// LoadAll returns every record of the given kind in stable id order.
	LoadAll(ctx context.Context, kind models.RecordKind) ([]models.Record, error)

	// Get returns a single record by id. Returns [ErrRecordNotFound] if no
	// row exists.
	Get(ctx context.Context, id string) (models.Record, error)

	// SaveOne upserts a single record.
	SaveOne(ctx context.Context, record models.Record) error

	// SaveAll upserts every record in records. Records of other kinds are
	// left untouched.
	SaveAll(ctx context.Context, kind models.RecordKind, records []models.Record) error

	// DeleteOne removes the record with the given id. Deleting a missing id
	// is a no-op.
	DeleteOne(ctx context.Context, id string) error
}

// MetaRepository persists per-kind sync metadata: the change token and the
// last successful reconciliation timestamp.
type MetaRepository interface {
	// LoadMeta returns the stored metadata for kind, or [ErrMetaNotFound]
	// when no pass has completed yet.
	LoadMeta(ctx context.Context, kind models.RecordKind) (models.SyncMeta, error)

	// SaveMeta upserts the metadata for meta.Kind.
	SaveMeta(ctx context.Context, meta models.SyncMeta) error
}

// KVRepository is a small string key/value table for installation-scoped
// values (e.g. the device identifier).
type KVRepository interface {
	// GetValue returns the value for key, or [ErrKeyNotFound].
	GetValue(ctx context.Context, key string) (string, error)

	// SetValue upserts the value for key.
	SetValue(ctx context.Context, key, value string) error
}
