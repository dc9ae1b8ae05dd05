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

// TestBuild_LaterSourcesOverride verifies that a non-zero field of a later
// config wins while zero fields keep the earlier value.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Adapter: Adapter{HTTPAddress: "localhost:8080", RequestTimeout: 15 * time.Second},
			Workers: Workers{CheckInterval: 30 * time.Minute},
		},
		&StructuredConfig{
			Adapter: Adapter{HTTPAddress: "dicts.internal:9000"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "dicts.internal:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Workers.CheckInterval)
}

func TestBuild_RejectsNegativeDurations(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Workers: Workers{CheckInterval: -time.Second}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}

// ── withDefaults ─────────────────────────────────────────────────────────────

func TestWithDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultAdapterAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultAdapterRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, SnapshotDriverSQLite, cfg.Storage.Snapshot.Driver)
	assert.Equal(t, DefaultSnapshotDSN, cfg.Storage.Snapshot.DSN)
	assert.Equal(t, DefaultCheckInterval, cfg.Workers.CheckInterval)
	assert.Equal(t, DefaultProbeInterval, cfg.Workers.ProbeInterval)
}

// ── withEnv ──────────────────────────────────────────────────────────────────

func TestWithEnv(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "env-host:7000")
	t.Setenv("WORKERS_CHECK_INTERVAL", "5m")
	t.Setenv("CACHE_PRELOAD_TYPES", "projectStatus,currency")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://u:p@localhost/dicts")
	t.Setenv("APP_SCHEMA_VERSION", "7")

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)

	cfg := b.configs[0]
	assert.Equal(t, "env-host:7000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Minute, cfg.Workers.CheckInterval)
	assert.Equal(t, []string{"projectStatus", "currency"}, cfg.Cache.PreloadTypes)
	assert.Equal(t, "postgres://u:p@localhost/dicts", cfg.Storage.DB.DSN)
	assert.Equal(t, "7", cfg.App.SchemaVersion)
}

func TestWithEnv_InvalidDuration(t *testing.T) {
	t.Setenv("WORKERS_CHECK_INTERVAL", "not-a-duration")

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ────────────────────────────────────────────────────────────────

func TestWithFlags_InvalidFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown-flag"})
	assert.ErrorIs(t, b.err, ErrInvalidFlags)
}

// ── withJSON ─────────────────────────────────────────────────────────────────

func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder().withDefaults().withJSON()
	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	b.withJSON()
	assert.Error(t, b.err)
}

// TestGetStructuredConfig_Priority verifies defaults < env < flags < json.
func TestGetStructuredConfig_Priority(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"workers": map[string]any{"probe_interval": "45s"},
	})

	t.Setenv("ADAPTER_ADDRESS", "env-host:7000")
	t.Setenv("WORKERS_CHECK_INTERVAL", "5m")

	cfg, err := getStructuredConfig([]string{"-check-interval", "10m", "-c", path})
	require.NoError(t, err)

	assert.Equal(t, "env-host:7000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Minute, cfg.Workers.CheckInterval)
	assert.Equal(t, 45*time.Second, cfg.Workers.ProbeInterval)
	assert.Equal(t, DefaultSnapshotDSN, cfg.Storage.Snapshot.DSN)
}

// ── validation ───────────────────────────────────────────────────────────────

func TestValidateServer(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			name: "valid",
			cfg: StructuredConfig{
				App:     App{Version: "1.0.0"},
				Storage: Storage{DB: DB{DSN: "postgres://localhost/dicts"}},
				Server:  Server{HTTPAddress: "localhost:8080"},
			},
		},
		{
			name: "missing dsn",
			cfg: StructuredConfig{
				App:    App{Version: "1.0.0"},
				Server: Server{HTTPAddress: "localhost:8080"},
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "no address",
			cfg: StructuredConfig{
				App:     App{Version: "1.0.0"},
				Storage: Storage{DB: DB{DSN: "postgres://localhost/dicts"}},
			},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name: "no version",
			cfg: StructuredConfig{
				Storage: Storage{DB: DB{DSN: "postgres://localhost/dicts"}},
				Server:  Server{GRPCAddress: "localhost:9090"},
			},
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validateServer()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return newClientConfig(defaultConfig())
	}

	require.NoError(t, valid().validate())

	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{"unknown driver", func(c *ClientConfig) { c.Storage.Driver = "redis" }, ErrInvalidStorageConfigs},
		{"empty dsn", func(c *ClientConfig) { c.Storage.DSN = "" }, ErrInvalidStorageConfigs},
		{"in-memory dsn", func(c *ClientConfig) { c.Storage.DSN = ":memory:" }, ErrInvalidStorageConfigs},
		{"no server address", func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, ErrInvalidAdapterConfigs},
		{"zero timeout", func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, ErrInvalidAdapterConfigs},
		{"zero check interval", func(c *ClientConfig) { c.Workers.CheckInterval = 0 }, ErrInvalidWorkerConfigs},
		{"zero probe interval", func(c *ClientConfig) { c.Workers.ProbeInterval = 0 }, ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.wantErr)
		})
	}
}

func TestNewClientConfig_TrimsPreloadTypes(t *testing.T) {
	cfg := defaultConfig()
	cfg.Cache.PreloadTypes = []string{" projectStatus ", "", "currency"}
	cfg.App.HashKey = "secret"

	clientCfg := newClientConfig(cfg)
	assert.Equal(t, []string{"projectStatus", "currency"}, clientCfg.Cache.PreloadTypes)
	assert.Equal(t, "secret", clientCfg.App.HashKey)
	assert.Equal(t, SnapshotDriverSQLite, clientCfg.Storage.Driver)
}
