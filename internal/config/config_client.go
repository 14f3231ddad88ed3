package config

import (
	"fmt"
	"time"
)

// Client run modes.
const (
	// ModeOnline wires the sync engine to the backend.
	ModeOnline = "online"
	// ModeLocal wires the sync engine to a no-op remote store.
	ModeLocal = "local"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// HashKey is the HMAC key used to sign pushed payloads.
	HashKey string
	// LogLevel is the zerolog level of the client log file.
	LogLevel string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend base URL.
	HTTPAddress string
	// GRPCAddress is the optional gRPC endpoint of the relationship
	// service. When empty, relationship calls go over REST.
	GRPCAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	// DSN is the SQLite database path of the local record store.
	DSN string
	// LogFile is the client log file path.
	LogFile string
	// TokenFile persists the session token between invocations.
	TokenFile string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the sync job runs.
	SyncInterval time.Duration
	// ProbeInterval defines how often backend reachability is checked.
	ProbeInterval time.Duration
	// PullLookback re-reads this much history below the cursor on every pull.
	PullLookback time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Mode is either [ModeOnline] or [ModeLocal].
	Mode string
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the backend address and timeout.
	Adapter ClientAdapter
	// Storage contains local storage paths.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// IsLocal reports whether the client runs without a backend.
func (c *ClientConfig) IsLocal() bool {
	return c.Mode == ModeLocal
}

// GetClientConfig builds and validates the client configuration. overrides
// usually come from CLI flags and win over every other source, followed by
// environment variables, the JSON file and defaults.
func GetClientConfig(overrides *StructuredConfig) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withValues(overrides).
		withEnv().
		withJSON().
		withDefaults(clientDefaults()).
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Mode: cfg.Client.Mode,
		App: ClientApp{
			HashKey:  cfg.App.HashKey,
			LogLevel: cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			GRPCAddress:    cfg.Adapter.GRPCAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DSN:       cfg.Storage.Local.DSN,
			LogFile:   cfg.Storage.Local.LogFile,
			TokenFile: cfg.Storage.Local.TokenFile,
		},
		Workers: ClientWorkers{
			SyncInterval:  cfg.Workers.SyncInterval,
			ProbeInterval: cfg.Workers.ProbeInterval,
			PullLookback:  cfg.Workers.PullLookback,
		},
	}

	return clientCfg, clientCfg.validate()
}

func clientDefaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{LogLevel: "info"},
		Storage: Storage{
			Local: Local{
				DSN:       "game-keeper.db",
				LogFile:   "game-keeper.log",
				TokenFile: ".game-keeper-token",
			},
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			SyncInterval:  5 * time.Minute,
			ProbeInterval: 15 * time.Second,
			PullLookback:  2 * time.Minute,
		},
		Client: Client{Mode: ModeOnline},
	}
}
