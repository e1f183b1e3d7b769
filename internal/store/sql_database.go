package store

import (
	"database/sql"

	"github.com/evgkondr/bidpilot/internal/logger"
	"github.com/evgkondr/bidpilot/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
