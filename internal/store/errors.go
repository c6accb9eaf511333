// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
)

// Sentinel errors returned by every [KeyValueStore] backend. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrStorage wraps every failure reported by a backend.
	ErrStorage = errors.New("storage error")

	// ErrQuotaExceeded is returned when the backend refuses a write because
	// it ran out of space or memory.
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	// ErrStoreUnavailable is returned when the backend cannot be reached or
	// is locked by another process.
	ErrStoreUnavailable = errors.New("storage unavailable")

	// ErrEmptyKey is returned when an operation is called with an empty key.
	ErrEmptyKey = errors.New("storage key is empty")

	// ErrUnknownDSN is returned by [NewKeyValueStore] for a DSN no backend
	// accepts.
	ErrUnknownDSN = errors.New("unsupported storage dsn")
)

// ErrorClassification is the result of [ErrorClassificator.Classify].
type ErrorClassification int

const (
	// Unclassified is the default for errors no backend rule matches.
	Unclassified ErrorClassification = iota

	// QuotaExceeded maps to [ErrQuotaExceeded].
	QuotaExceeded

	// Unavailable maps to [ErrStoreUnavailable].
	Unavailable
)

// sentinel returns the error matching c, or nil for [Unclassified].
func (c ErrorClassification) sentinel() error {
	switch c {
	case QuotaExceeded:
		return ErrQuotaExceeded
	case Unavailable:
		return ErrStoreUnavailable
	default:
		return nil
	}
}

// classifyCommon covers errors shared by all network and database/sql
// backends.
func classifyCommon(err error) ErrorClassification {
	var netErr net.Error
	switch {
	case errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone),
		errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr):
		return Unavailable
	}
	return Unclassified
}

// storageError wraps err in [ErrStorage] and, when classifier recognises it,
// in the matching classification sentinel as well.
func storageError(op, key string, err error, classifier ErrorClassificator) error {
	if errors.Is(err, ErrStorage) {
		return err
	}

	class := Unclassified
	if classifier != nil {
		class = classifier.Classify(err)
	}
	if class == Unclassified {
		class = classifyCommon(err)
	}

	if sentinel := class.sentinel(); sentinel != nil {
		return fmt.Errorf("%w: %w: %s %q: %w", ErrStorage, sentinel, op, key, err)
	}
	return fmt.Errorf("%w: %s %q: %w", ErrStorage, op, key, err)
}
