// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store provides the durable key/value stores the secret vault
// persists its records to.
//
// [NewKeyValueStore] picks the backend from the configured DSN:
//
//	memory, :memory:          in-process map
//	file://<path>, *.json     JSON document
//	redis://, rediss://       Redis, keys namespaced by a prefix
//	postgres://, postgresql:// PostgreSQL table local_storage
//	anything else             SQLite database file
//
// Every backend error wraps [ErrStorage]; quota and availability failures
// additionally wrap [ErrQuotaExceeded] or [ErrStoreUnavailable].
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/gamegenius/internal/config"
	"github.com/MKhiriev/gamegenius/internal/logger"
)

// Backend names reported by [BackendFor].
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// BackendFor returns the backend name selected by dsn.
func BackendFor(dsn string) string {
	lower := strings.ToLower(dsn)
	switch {
	case lower == "memory" || lower == ":memory:":
		return BackendMemory
	case strings.HasPrefix(lower, "file://") || strings.HasSuffix(lower, ".json"):
		return BackendFile
	case strings.HasPrefix(lower, "redis://") || strings.HasPrefix(lower, "rediss://"):
		return BackendRedis
	case strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://"):
		return BackendPostgres
	default:
		return BackendSQLite
	}
}

// NewKeyValueStore initialises the backend selected by cfg.DB.DSN. SQL
// backends are migrated before they are returned.
func NewKeyValueStore(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (KeyValueStore, error) {
	dsn := cfg.DB.DSN
	if dsn == "" {
		return nil, fmt.Errorf("%w: %w: empty dsn", ErrStorage, ErrUnknownDSN)
	}

	backend := BackendFor(dsn)
	log.Info().Str("func", "NewKeyValueStore").Str("backend", backend).Msg("creating key/value store...")

	switch backend {
	case BackendMemory:
		return NewMemoryStore(cfg.QuotaBytes), nil
	case BackendFile:
		return NewFileStore(strings.TrimPrefix(dsn, "file://"), cfg.QuotaBytes)
	case BackendRedis:
		return NewConnectRedis(ctx, dsn, cfg.KeyPrefix, log)
	}

	var (
		db  *DB
		err error
	)
	if backend == BackendPostgres {
		db, err = NewConnectPostgres(ctx, dsn, log)
	} else {
		db, err = NewConnectSQLite(ctx, dsn, log)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", backend, err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		log.Err(err).Str("func", "NewKeyValueStore").Msg("migration failed")
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewSQLStore(db, log), nil
}
