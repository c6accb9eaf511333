package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/gamegenius/internal/logger"
)

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewConnectSQLite opens (creating if needed) the SQLite database file at
// dsn and pings it.
func NewConnectSQLite(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(dsn); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, storageError("open", dsn, err, nil)
	}

	conn, err := sql.Open(dialectSQLite, dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, storageError("open", dsn, err, SQLiteErrorClassifier{})
	}
	// one writer at a time; concurrent callers queue on the pool
	conn.SetMaxOpenConns(1)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		conn.Close()
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, storageError("ping", dsn, err, SQLiteErrorClassifier{})
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		dialect:            dialectSQLite,
		placeholder:        sq.Question,
		errorClassificator: SQLiteErrorClassifier{},
		logger:             log,
	}, nil
}

// sqliteFilePath returns the filesystem path named by a go-sqlite3 DSN, or
// "" when the DSN names an in-memory database.
func sqliteFilePath(dsn string) string {
	path := strings.TrimPrefix(dsn, "file:")
	query := ""
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path, query = path[:i], path[i+1:]
	}
	if path == "" || path == ":memory:" || strings.Contains(query, "mode=memory") {
		return ""
	}
	return path
}

func createLocalDBFileIfNotExists(dsn string) error {
	dbFile := sqliteFilePath(dsn)
	if dbFile == "" {
		return nil
	}

	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if dir := filepath.Dir(dbFile); dir != "." {
			if err = os.MkdirAll(dir, 0o700); err != nil {
				return fmt.Errorf("error creating DB dir: %w", err)
			}
		}
		// if not found - create
		f, err := os.OpenFile(dbFile, os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}

// Classify implements [ErrorClassificator].
//
//   - SQLITE_FULL is [QuotaExceeded]
//   - SQLITE_BUSY, SQLITE_LOCKED and SQLITE_CANTOPEN are [Unavailable]
func (SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return Unclassified
	}

	switch sqliteErr.Code {
	case sqlite3.ErrFull:
		return QuotaExceeded
	case sqlite3.ErrBusy, sqlite3.ErrLocked, sqlite3.ErrCantOpen:
		return Unavailable
	}

	return Unclassified
}
