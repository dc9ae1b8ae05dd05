package config

import (
	"fmt"
	"strings"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// HashKey verifies the HashSHA256 header of server responses.
	HashKey string
	// SchemaVersion is the pinned cache schema version, possibly empty.
	SchemaVersion string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientStorage holds the snapshot persistence settings.
type ClientStorage struct {
	Driver string
	DSN    string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	CheckInterval time.Duration
	ProbeInterval time.Duration
}

// ClientCache holds the cache policy.
type ClientCache struct {
	PreloadTypes []string
	BatchMaxAge  time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Cache   ClientCache
	LogFile string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	preload := make([]string, 0, len(cfg.Cache.PreloadTypes))
	for _, t := range cfg.Cache.PreloadTypes {
		if t = strings.TrimSpace(t); t != "" {
			preload = append(preload, t)
		}
	}

	return &ClientConfig{
		App: ClientApp{
			HashKey:       cfg.App.HashKey,
			SchemaVersion: cfg.App.SchemaVersion,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Driver: cfg.Storage.Snapshot.Driver,
			DSN:    cfg.Storage.Snapshot.DSN,
		},
		Workers: ClientWorkers{
			CheckInterval: cfg.Workers.CheckInterval,
			ProbeInterval: cfg.Workers.ProbeInterval,
		},
		Cache: ClientCache{
			PreloadTypes: preload,
			BatchMaxAge:  cfg.Cache.BatchMaxAge,
		},
		LogFile: cfg.Log.FilePath,
	}
}
