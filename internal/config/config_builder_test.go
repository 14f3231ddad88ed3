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

func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{TokenIssuer: "issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
}

// TestBuild_EarlierSourceWins verifies that a non-zero value from an earlier
// source is not overwritten by a later one.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder().
		withValues(&StructuredConfig{Client: Client{Mode: ModeLocal}}).
		withDefaults(&StructuredConfig{
			Client:  Client{Mode: ModeOnline},
			Workers: Workers{SyncInterval: time.Minute},
		})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, ModeLocal, cfg.Client.Mode)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
}

func TestBuild_InvalidMode(t *testing.T) {
	b := newConfigBuilder().withValues(&StructuredConfig{Client: Client{Mode: "offline"}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidMode)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("WORKERS_SYNC_INTERVAL", "soon")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-d", "postgres://localhost/db"})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "postgres://localhost/db", b.configs[0].Storage.DB.DSN)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})
	assert.Error(t, b.err)
}

// ── withValues ────────────────────────────────────────────────────────────────

func TestWithValues_IgnoresNil(t *testing.T) {
	b := newConfigBuilder().withValues(nil)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Client.Mode = ModeLocal
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, ModeLocal, b.configs[1].Client.Mode)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesFirstPath verifies that the highest-priority source
// naming a JSON file decides which file is read.
func TestWithJSON_UsesFirstPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.Version = "first"
	second := StructuredJSONConfig{}
	second.App.Version = "second"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: ""},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, second)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 4)
	assert.Equal(t, "first", b.configs[3].App.Version)
}

// ── GetClientConfig ───────────────────────────────────────────────────────────

func TestGetClientConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, ModeOnline, cfg.Mode)
	assert.False(t, cfg.IsLocal())
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 2*time.Minute, cfg.Workers.PullLookback)
	assert.Equal(t, "game-keeper.db", cfg.Storage.DSN)
}

func TestGetClientConfig_PullLookbackFromEnv(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("WORKERS_PULL_LOOKBACK", "30s")

	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Workers.PullLookback)
}

func TestGetClientConfig_OverridesWinOverEnv(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("CLIENT_MODE", ModeOnline)
	t.Setenv("STORAGE_LOCAL_DSN", "/tmp/env.db")

	cfg, err := GetClientConfig(&StructuredConfig{Client: Client{Mode: ModeLocal}})
	require.NoError(t, err)

	assert.True(t, cfg.IsLocal())
	assert.Equal(t, "/tmp/env.db", cfg.Storage.DSN)
}

func TestGetClientConfig_InvalidMode(t *testing.T) {
	clearEnvVars(t)

	_, err := GetClientConfig(&StructuredConfig{Client: Client{Mode: "sometimes"}})
	assert.ErrorIs(t, err, ErrInvalidMode)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_EnvWinsOverFlags(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env/db")

	cfg, err := GetStructuredConfig([]string{
		"-d", "postgres://flag/db",
		"-a", "localhost:8080",
		"-token-sign-key", "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, "postgres://env/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, uint64(5), cfg.Services.TxMaxRetries)
}

func TestGetStructuredConfig_MissingDSN(t *testing.T) {
	clearEnvVars(t)

	_, err := GetStructuredConfig([]string{"-a", "localhost:8080", "-token-sign-key", "k"})
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestGetStructuredConfig_MissingSignKey(t *testing.T) {
	clearEnvVars(t)

	_, err := GetStructuredConfig([]string{"-a", "localhost:8080", "-d", "postgres://x/db"})
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}
