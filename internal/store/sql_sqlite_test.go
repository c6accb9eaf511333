package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/gamegenius/internal/logger"
)

func TestSQLiteFilePath(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{dsn: "gamegenius.db", want: "gamegenius.db"},
		{dsn: "/var/lib/gamegenius/vault.db", want: "/var/lib/gamegenius/vault.db"},
		{dsn: "file:vault.db", want: "vault.db"},
		{dsn: "file:/tmp/vault.db?_busy_timeout=5000&_journal_mode=WAL", want: "/tmp/vault.db"},
		{dsn: "vault.db?cache=shared", want: "vault.db"},
		{dsn: ":memory:", want: ""},
		{dsn: "file::memory:?cache=shared", want: ""},
		{dsn: "file:vault?mode=memory&cache=shared", want: ""},
		{dsn: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			assert.Equal(t, tt.want, sqliteFilePath(tt.dsn))
		})
	}
}

func TestNewConnectSQLite_URIDSN(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "vault.db")

	db, err := NewConnectSQLite(context.Background(), "file:"+path+"?_busy_timeout=5000", logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	assert.FileExists(t, path)

	entries, err := os.ReadDir(filepath.Join(dir, "nested"))
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), "?")
		assert.NotContains(t, e.Name(), "file:")
	}
	_, err = os.Stat("file:" + path + "?_busy_timeout=5000")
	assert.True(t, os.IsNotExist(err))
}

func TestNewConnectSQLite_InMemoryCreatesNoFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	db, err := NewConnectSQLite(context.Background(), ":memory:", logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
