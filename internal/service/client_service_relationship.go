package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-game-keeper/internal/adapter"
	"github.com/MKhiriev/go-game-keeper/internal/logger"
	"github.com/MKhiriev/go-game-keeper/models"
)

var (
	friendDomains = []models.Domain{models.DomainFriends}
	groupDomains  = []models.Domain{models.DomainGroups, models.DomainInvites}
)

type clientRelationshipService struct {
	client adapter.RelationshipClient
	runner SyncRunner
	job    ClientSyncJob

	now    func() time.Time
	logger *logger.Logger
}

// NewClientRelationshipService returns the online ClientRelationshipService.
// After every successful call the affected projections are pulled through
// runner, or queued on job while it is running. job may be nil.
func NewClientRelationshipService(client adapter.RelationshipClient, runner SyncRunner, job ClientSyncJob, logger *logger.Logger) ClientRelationshipService {
	return &clientRelationshipService{
		client: client,
		runner: runner,
		job:    job,
		now:    time.Now,
		logger: logger,
	}
}

func (s *clientRelationshipService) SendInvite(ctx context.Context, ownerID, code string) (models.InviteResult, error) {
	res, err := s.client.SendInviteByCode(ctx, models.SendInviteRequest{Code: code, ClientCreatedAt: s.now().UTC()})
	if err != nil {
		return models.InviteResult{}, mapAdapterError(err)
	}
	s.pull(ctx, ownerID, friendDomains)
	return res, nil
}

func (s *clientRelationshipService) Accept(ctx context.Context, ownerID, friendUID string) error {
	return s.call(ctx, ownerID, friendDomains, func() error { return s.client.Accept(ctx, friendUID) })
}

func (s *clientRelationshipService) Reject(ctx context.Context, ownerID, friendUID string) error {
	return s.call(ctx, ownerID, friendDomains, func() error { return s.client.Reject(ctx, friendUID) })
}

func (s *clientRelationshipService) Remove(ctx context.Context, ownerID, friendUID string) error {
	return s.call(ctx, ownerID, friendDomains, func() error { return s.client.Remove(ctx, friendUID) })
}

func (s *clientRelationshipService) CreateGroup(ctx context.Context, ownerID, name string) (models.Group, error) {
	group, err := s.client.CreateGroup(ctx, models.CreateGroupRequest{Name: name, ClientCreatedAt: s.now().UTC()})
	if err != nil {
		return models.Group{}, mapAdapterError(err)
	}
	s.pull(ctx, ownerID, groupDomains)
	return group, nil
}

func (s *clientRelationshipService) InviteToGroup(ctx context.Context, ownerID, groupID, friendUID string) error {
	req := models.GroupInviteRequest{GroupID: groupID, FriendUID: friendUID, ClientCreatedAt: s.now().UTC()}
	return s.call(ctx, ownerID, groupDomains, func() error { return s.client.InviteToGroup(ctx, req) })
}

func (s *clientRelationshipService) AcceptGroupInvite(ctx context.Context, ownerID, groupID string) error {
	return s.call(ctx, ownerID, groupDomains, func() error { return s.client.AcceptGroupInvite(ctx, groupID) })
}

func (s *clientRelationshipService) RejectGroupInvite(ctx context.Context, ownerID, groupID string) error {
	return s.call(ctx, ownerID, groupDomains, func() error { return s.client.RejectGroupInvite(ctx, groupID) })
}

func (s *clientRelationshipService) LeaveGroup(ctx context.Context, ownerID, groupID string) error {
	return s.call(ctx, ownerID, groupDomains, func() error { return s.client.LeaveGroup(ctx, groupID) })
}

func (s *clientRelationshipService) call(ctx context.Context, ownerID string, domains []models.Domain, fn func() error) error {
	if err := fn(); err != nil {
		return mapAdapterError(err)
	}
	s.pull(ctx, ownerID, domains)
	return nil
}

// pull refreshes the projections. The server call already succeeded, so a
// failed pull is only logged; the next sync pass catches up. A running job
// owns the cursors, so the refresh is handed to it.
func (s *clientRelationshipService) pull(ctx context.Context, ownerID string, domains []models.Domain) {
	if s.job != nil && s.job.Running() {
		s.job.RunNow()
		return
	}

	report := s.runner.SyncDomains(ctx, ownerID, domains...)
	for _, d := range report.Failed() {
		s.logger.Warn().Err(d.Err).Str("domain", d.Domain.String()).Msg("projection refresh failed")
	}
}

// localRelationshipService refuses every call: relationships need the server.
type localRelationshipService struct{}

// NewLocalRelationshipService returns the ClientRelationshipService of local mode.
func NewLocalRelationshipService() ClientRelationshipService {
	return localRelationshipService{}
}

func (localRelationshipService) SendInvite(context.Context, string, string) (models.InviteResult, error) {
	return models.InviteResult{}, &UnsupportedOperationError{Op: "send invite"}
}

func (localRelationshipService) Accept(context.Context, string, string) error {
	return &UnsupportedOperationError{Op: "accept invite"}
}

func (localRelationshipService) Reject(context.Context, string, string) error {
	return &UnsupportedOperationError{Op: "reject invite"}
}

func (localRelationshipService) Remove(context.Context, string, string) error {
	return &UnsupportedOperationError{Op: "remove friend"}
}

func (localRelationshipService) CreateGroup(context.Context, string, string) (models.Group, error) {
	return models.Group{}, &UnsupportedOperationError{Op: "create group"}
}

func (localRelationshipService) InviteToGroup(context.Context, string, string, string) error {
	return &UnsupportedOperationError{Op: "invite to group"}
}

func (localRelationshipService) AcceptGroupInvite(context.Context, string, string) error {
	return &UnsupportedOperationError{Op: "accept group invite"}
}

func (localRelationshipService) RejectGroupInvite(context.Context, string, string) error {
	return &UnsupportedOperationError{Op: "reject group invite"}
}

func (localRelationshipService) LeaveGroup(context.Context, string, string) error {
	return &UnsupportedOperationError{Op: "leave group"}
}
