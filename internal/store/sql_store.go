package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/gamegenius/internal/logger"
)

// sqlStore is the [KeyValueStore] over the local_storage table, shared by
// the SQLite and PostgreSQL backends.
type sqlStore struct {
	db     *DB
	now    func() time.Time
	logger *logger.Logger
}

// NewSQLStore returns a [KeyValueStore] backed by db. The schema must
// already be migrated.
func NewSQLStore(db *DB, log *logger.Logger) KeyValueStore {
	return &sqlStore{db: db, now: time.Now, logger: log}
}

func (s *sqlStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := checkCall(ctx, "get", key); err != nil {
		return "", false, err
	}

	query, args, err := buildGetValueQuery(s.db.builder(), key)
	if err != nil {
		return "", false, fmt.Errorf("%w: build get query: %w", ErrStorage, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "sqlStore.Get").Str("key", key).Msg("failed to query value")
		return "", false, storageError("get", key, err, s.db.errorClassificator)
	}

	return value, true, nil
}

func (s *sqlStore) Set(ctx context.Context, key, value string) error {
	if err := checkCall(ctx, "set", key); err != nil {
		return err
	}

	query, args, err := buildSetValueQuery(s.db.builder(), key, value, s.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: build set query: %w", ErrStorage, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "sqlStore.Set").Str("key", key).Msg("failed to upsert value")
		return storageError("set", key, err, s.db.errorClassificator)
	}

	return nil
}

func (s *sqlStore) Remove(ctx context.Context, key string) error {
	if err := checkCall(ctx, "remove", key); err != nil {
		return err
	}

	query, args, err := buildRemoveValueQuery(s.db.builder(), key)
	if err != nil {
		return fmt.Errorf("%w: build remove query: %w", ErrStorage, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "sqlStore.Remove").Str("key", key).Msg("failed to delete value")
		return storageError("remove", key, err, s.db.errorClassificator)
	}

	return nil
}

func (s *sqlStore) Close() error {
	return s.db.Close()
}
