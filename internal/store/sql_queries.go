package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	localStorageTable = "local_storage"

	columnStorageKey = "storage_key"
	columnValue      = "value"
	columnUpdatedAt  = "updated_at"

	upsertOnConflict = "ON CONFLICT (storage_key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"
)

func buildGetValueQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	return b.Select(columnValue).
		From(localStorageTable).
		Where(sq.Eq{columnStorageKey: key}).
		ToSql()
}

func buildSetValueQuery(b sq.StatementBuilderType, key, value string, at time.Time) (string, []any, error) {
	return b.Insert(localStorageTable).
		Columns(columnStorageKey, columnValue, columnUpdatedAt).
		Values(key, value, at).
		Suffix(upsertOnConflict).
		ToSql()
}

func buildRemoveValueQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	return b.Delete(localStorageTable).
		Where(sq.Eq{columnStorageKey: key}).
		ToSql()
}
