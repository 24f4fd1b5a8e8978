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

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"consent-server"}, args...)
	t.Cleanup(func() { os.Args = old })
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenTTL)
	assert.Equal(t, 100, cfg.App.ScanPageSize)
	assert.Equal(t, 10, cfg.App.ScanMaxPages)
	assert.Equal(t, 30*24*time.Hour, cfg.App.ScriptCategoryTTL)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_FirstNonZeroWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenTTL: time.Hour}},
		&StructuredConfig{App: App{TokenTTL: 2 * time.Hour, Version: "1.0.0"}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.App.TokenTTL)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, 365*24*time.Hour, cfg.App.ConsentTTL)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("STORAGE_BACKEND", "postgres")

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, BackendPostgres, b.configs[0].Storage.Backend)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("APP_TOKEN_TTL", "not-a-duration")

	b := newConfigBuilder().withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_ReadsArgs(t *testing.T) {
	withArgs(t, "-a", "localhost:9000", "-backend", "s3")

	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags())

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "localhost:9000", b.configs[0].Server.HTTPAddress)
	assert.Equal(t, BackendS3, b.configs[0].Storage.Backend)
}

func TestWithFlags_UnknownFlag(t *testing.T) {
	withArgs(t, "-unknown")

	b := newConfigBuilder().withFlags()

	assert.ErrorIs(t, b.err, ErrInvalidFlags)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOpWhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withJSON())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Storage.Backend = BackendPostgres
	payload.Storage.DB.DSN = "postgres://localhost/consent"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "postgres://localhost/consent", b.configs[1].Storage.DB.DSN)
}

func TestWithJSON_FirstPathWins(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.Version = "first"
	second := StructuredJSONConfig{}
	second.App.Version = "second"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, second)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "first", b.configs[2].App.Version)
}

func TestWithJSON_Errors(t *testing.T) {
	bad, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = bad.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, bad.Close())

	tests := []struct {
		name string
		path string
	}{
		{name: "missing file", path: "/nonexistent/config.json"},
		{name: "malformed json", path: bad.Name()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, &StructuredConfig{JSONFilePath: tt.path})
			b.withJSON()

			assert.Error(t, b.err)
			assert.Len(t, b.configs, 1)
		})
	}
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_EnvOverridesJSON(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.LogLevel = "warn"
	payload.Server.HTTPAddress = "0.0.0.0:7000"
	path := writeTempJSONConfig(t, payload)

	withArgs(t, "-c", path)
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:8081")

	cfg, err := GetStructuredConfig()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, path, cfg.JSONFilePath)
}
