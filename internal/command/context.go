package command

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-game-keeper/internal/client"
	"github.com/MKhiriev/go-game-keeper/internal/config"
	"github.com/MKhiriev/go-game-keeper/internal/logger"
	"github.com/MKhiriev/go-game-keeper/internal/service"
	"github.com/spf13/cobra"
)

const (
	flagMode    = "mode"
	flagServer  = "server"
	flagGRPC    = "grpc"
	flagDB      = "db"
	flagHashKey = "hash-key"
	flagConfig  = "config"
	flagJSON    = "json"
)

// CommandContext provides shared command resources.
type CommandContext struct {
	App      *client.App
	Services *service.ClientServices
	Logger   *logger.Logger
	JSONMode bool
}

// Close releases the app. Errors are logged, never returned.
func (c *CommandContext) Close() {
	if err := c.App.Close(); err != nil {
		c.Logger.Error().Err(err).Str("func", "*CommandContext.Close").Msg("error closing client app")
	}
}

// Owner returns the logged-in user id, or the local owner in local mode.
func (c *CommandContext) Owner(ctx context.Context) (string, error) {
	return c.App.Owner(ctx)
}

// GetContext resolves configuration and builds the client app for a command.
func GetContext(cmd *cobra.Command) (*CommandContext, error) {
	jsonMode, _ := cmd.Flags().GetBool(flagJSON)

	cfg, err := config.GetClientConfig(overridesFromFlags(cmd))
	if err != nil {
		return nil, err
	}

	log := logger.NewClientLogger(AppName, cfg.Storage.LogFile)
	if err := log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}

	app, err := client.NewApp(cmd.Context(), cfg, log)
	if err != nil {
		return nil, fmt.Errorf("init client app: %w", err)
	}

	return &CommandContext{
		App:      app,
		Services: app.Services(),
		Logger:   log,
		JSONMode: jsonMode,
	}, nil
}

func overridesFromFlags(cmd *cobra.Command) *config.StructuredConfig {
	mode, _ := cmd.Flags().GetString(flagMode)
	server, _ := cmd.Flags().GetString(flagServer)
	grpcAddr, _ := cmd.Flags().GetString(flagGRPC)
	dsn, _ := cmd.Flags().GetString(flagDB)
	hashKey, _ := cmd.Flags().GetString(flagHashKey)
	jsonPath, _ := cmd.Flags().GetString(flagConfig)

	return &config.StructuredConfig{
		App:     config.App{HashKey: hashKey},
		Adapter: config.Adapter{HTTPAddress: server, GRPCAddress: grpcAddr},
		Storage: config.Storage{Local: config.Local{DSN: dsn}},
		Client:  config.Client{Mode: mode},

		JSONFilePath: jsonPath,
	}
}
