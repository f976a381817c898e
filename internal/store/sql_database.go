package store

import (
	"database/sql"

	"github.com/pkruglov/notesync/internal/logger"
	"github.com/pkruglov/notesync/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
