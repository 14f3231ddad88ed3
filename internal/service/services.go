package service

import (
	"github.com/MKhiriev/go-game-keeper/internal/config"
	"github.com/MKhiriev/go-game-keeper/internal/logger"
	"github.com/MKhiriev/go-game-keeper/internal/store"
	"github.com/MKhiriev/go-game-keeper/models"
)

type Services struct {
	AuthService         AuthService
	RelationshipService RelationshipService
	GroupService        GroupService
	RemoteSyncService   RemoteSyncService
	AppInfoService      AppInfoService
}

func NewServices(repos *store.Repositories, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:         NewAuthService(repos.UserRepository, cfg.App, logger),
		RelationshipService: NewRelationshipService(repos.UserRepository, repos.Transactor, logger),
		GroupService:        NewGroupService(repos.Transactor, logger),
		RemoteSyncService:   NewRemoteSyncValidationService().Wrap(NewRemoteSyncService(repos.RemoteRecordRepository, logger)),
		AppInfoService:      appInfo,
	}, nil
}
