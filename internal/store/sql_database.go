package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/gamegenius/internal/logger"
	"github.com/MKhiriev/gamegenius/migrations"
	sq "github.com/Masterminds/squirrel"
)

// SQL dialects understood by [migrations.Migrate].
const (
	dialectSQLite   = "sqlite3"
	dialectPostgres = "pgx"
)

// DB is an open database/sql pool together with the dialect details the
// key/value repository needs.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations for the pool's dialect.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB, db.dialect); err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return nil
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}
