package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-game-keeper/internal/adapter"
	"github.com/MKhiriev/go-game-keeper/internal/config"
	"github.com/MKhiriev/go-game-keeper/internal/logger"
	"github.com/MKhiriev/go-game-keeper/internal/service"
	"github.com/MKhiriev/go-game-keeper/internal/store"
	"github.com/MKhiriev/go-game-keeper/internal/workers"
	"github.com/MKhiriev/go-game-keeper/models"
	"google.golang.org/grpc"
)

// App is the composed client: local storages, the remote store chosen by
// mode and the client services on top of them.
type App struct {
	cfg      *config.ClientConfig
	storages *store.ClientStorages
	services *service.ClientServices
	conn     *grpc.ClientConn
	logger   *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp builds the client for cfg.Mode. In local mode no server adapter is
// created and every record is acknowledged by the no-op remote store. In
// online mode relationship calls go over gRPC when an address is configured.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	app := &App{cfg: cfg, storages: storages, logger: log}

	var server adapter.ServerAdapter
	if !cfg.IsLocal() {
		server, err = app.newServerAdapter()
		if err != nil {
			_ = app.Close()
			return nil, err
		}
	}

	app.services = service.NewClientServices(storages, server, cfg, log)

	log.Debug().Str("func", "NewApp").
		Str("mode", cfg.Mode).
		Bool("grpc", app.conn != nil).
		Msg("client app created")
	return app, nil
}

func (a *App) newServerAdapter() (adapter.ServerAdapter, error) {
	server, err := adapter.NewHTTPServerAdapter(a.cfg.Adapter, a.cfg.App, a.logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	if a.cfg.Adapter.GRPCAddress == "" {
		return server, nil
	}

	conn, err := adapter.DialRelationshipService(a.cfg.Adapter.GRPCAddress)
	if err != nil {
		return nil, err
	}
	a.conn = conn

	rel := adapter.NewGRPCRelationshipClient(conn, server, a.logger)
	return adapter.WithRelationshipClient(server, rel), nil
}

// Services exposes the client services to the CLI commands.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// Mode returns the configured run mode.
func (a *App) Mode() string {
	return a.cfg.Mode
}

// Owner restores the saved session and returns the owner id every record is
// partitioned by. Local mode always yields [service.LocalOwnerID].
func (a *App) Owner(ctx context.Context) (string, error) {
	session, err := a.services.AuthService.RestoreSession(ctx)
	if err != nil {
		return "", err
	}
	return session.UserID, nil
}

// Sync runs one full pass over every domain for the current owner.
func (a *App) Sync(ctx context.Context, domains ...models.Domain) (models.SyncReport, error) {
	owner, err := a.Owner(ctx)
	if err != nil {
		return models.SyncReport{}, err
	}

	if len(domains) == 0 {
		return a.services.SyncRunner.SyncAll(ctx, owner), nil
	}
	return a.services.SyncRunner.SyncDomains(ctx, owner, domains...), nil
}

// Run keeps the background sync job and the pending-count watcher running
// until ctx is cancelled. onPending receives every change of the number of
// unpushed records.
func (a *App) Run(ctx context.Context, onPending func(pending int)) error {
	owner, err := a.Owner(ctx)
	if err != nil {
		return err
	}

	if onPending == nil {
		onPending = func(int) {}
	}

	a.logger.Info().Str("func", "*App.Run").
		Str("owner_id", owner).
		Dur("interval", a.cfg.Workers.SyncInterval).
		Msg("starting background sync")

	if _, err := a.services.PendingWatcher.Refresh(ctx, owner); err != nil {
		a.logger.Warn().Err(err).Str("func", "*App.Run").Msg("initial pending count failed")
	}

	return workers.New(
		workers.NewSyncWorker(a.services.SyncJob, owner, a.cfg.Workers.SyncInterval),
		workers.NewPendingWorker(a.services.PendingWatcher, onPending),
	).Run(ctx)
}

// Close releases the gRPC connection and the local database.
func (a *App) Close() error {
	var errs []error
	if a.conn != nil {
		if err := a.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close grpc connection: %w", err))
		}
	}
	if err := a.storages.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close local storage: %w", err))
	}
	return errors.Join(errs...)
}
