package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStore is a durable string-keyed store of string values.
//
// Get reports found=false with a nil error for an absent key. Remove of an
// absent key is a no-op. Implementations are safe for concurrent use.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// ErrorClassificator maps a backend error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
