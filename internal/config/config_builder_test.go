package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterConfigOverrides verifies that non-zero fields of later
// configs win and zero fields keep earlier values.
func TestBuild_LaterConfigOverrides(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{StorageKey: "apiKey", HashKey: "first"}},
		&StructuredConfig{App: App{HashKey: "second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "apiKey", cfg.App.StorageKey)
	assert.Equal(t, "second", cfg.App.HashKey)
}

func TestBuild_ValidationError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Storage: Storage{QuotaBytes: -1}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_AppendsDefaults(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	require.Len(t, b.configs, 1)
	assert.Equal(t, DefaultStorageKey, b.configs[0].App.StorageKey)
	assert.Equal(t, DefaultKDF, b.configs[0].Crypto.KDF)
	assert.Equal(t, DefaultPBKDF2Iterations, b.configs[0].Crypto.Iterations)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_PASSPHRASE", "env-pass")
	t.Setenv("STORAGE_DB_DSN", "memory")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-pass", b.configs[0].App.Passphrase)
	assert.Equal(t, "memory", b.configs[0].Storage.DB.DSN)
}

func TestWithEnv_InvalidValueSetsError(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "not-a-duration")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_ParsesArgs(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-p", "flag-pass", "-d", "memory"})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-pass", b.configs[0].App.Passphrase)
	assert.Equal(t, "memory", b.configs[0].Storage.DB.DSN)
}

func TestWithFlags_UnknownFlagSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-no-such-flag"})
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withDefaults().withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFileFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"passphrase": "json-pass"},
		"adapter": map[string]any{"request_timeout": "15s"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-pass", b.configs[1].App.Passphrase)
	assert.Equal(t, 15*time.Second, b.configs[1].Adapter.RequestTimeout)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── GetStructuredConfig / GetClientConfig ─────────────────────────────────────

func TestGetStructuredConfig_PriorityOrder(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{"dsn": "json.db"},
	})
	t.Setenv("APP_PASSPHRASE", "env-pass")
	t.Setenv("STORAGE_DB_DSN", "env.db")
	t.Setenv("APP_HASH_KEY", "env-hash")

	cfg, err := GetStructuredConfig([]string{"-hash-key", "flag-hash", "-c", path})
	require.NoError(t, err)

	assert.Equal(t, "env-pass", cfg.App.Passphrase)
	assert.Equal(t, "flag-hash", cfg.App.HashKey)
	assert.Equal(t, "json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultStorageKey, cfg.App.StorageKey)
}

func TestGetClientConfig_Success(t *testing.T) {
	cfg, err := GetClientConfig([]string{"-p", "secret", "-d", "memory"})
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.App.Passphrase)
	assert.Equal(t, DefaultStorageKey, cfg.App.StorageKey)
	assert.Equal(t, "memory", cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
}

func TestGetClientConfig_MissingPassphrase(t *testing.T) {
	_, err := GetClientConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}
