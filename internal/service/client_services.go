package service

import (
	"time"

	"github.com/MKhiriev/go-game-keeper/internal/adapter"
	"github.com/MKhiriev/go-game-keeper/internal/config"
	"github.com/MKhiriev/go-game-keeper/internal/logger"
	"github.com/MKhiriev/go-game-keeper/internal/store"
	"github.com/MKhiriev/go-game-keeper/models"
)

type ClientServices struct {
	AuthService         ClientAuthService
	LibraryService      LibraryService
	RelationshipService ClientRelationshipService
	SyncRunner          SyncRunner
	SyncJob             ClientSyncJob
	PendingWatcher      PendingWatcher
}

// NewClientServices wires the client services. server is nil in local mode;
// the remote store is then a [adapter.NoopRemoteStore] and every
// server-backed operation is refused.
func NewClientServices(storages *store.ClientStorages, server adapter.ServerAdapter, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	var remote adapter.RemoteStore = adapter.NewNoopRemoteStore(time.Now)
	if server != nil {
		remote = server
	}

	coordinators := make([]SyncCoordinator, 0, len(models.AllDomains))
	for _, d := range models.AllDomains {
		coordinators = append(coordinators, NewSyncCoordinator(d, storages.Records, remote, logger, WithPullLookback(cfg.Workers.PullLookback)))
	}

	runner := NewSyncRunner(coordinators, storages.Records, logger)
	watcher := NewPendingWatcher(storages.Records, models.AllDomains)

	svcs := &ClientServices{
		LibraryService: NewLibraryService(storages.Records, watcher, logger),
		SyncRunner:     runner,
		PendingWatcher: watcher,
	}

	if server == nil {
		svcs.AuthService = NewLocalAuthService()
		svcs.RelationshipService = NewLocalRelationshipService()
		svcs.SyncJob = NewClientSyncJob(runner, watcher, nil, logger)
		return svcs
	}

	probe := NewReachabilityProbe(server, cfg.Workers.ProbeInterval, logger)
	svcs.AuthService = NewClientAuthService(server, storages.Session, logger)
	svcs.SyncJob = NewClientSyncJob(runner, watcher, probe, logger)
	svcs.RelationshipService = NewClientRelationshipService(server, runner, svcs.SyncJob, logger)
	return svcs
}
