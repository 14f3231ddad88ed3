package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-game-keeper/internal/logger"
	"github.com/MKhiriev/go-game-keeper/internal/store"
	"github.com/MKhiriev/go-game-keeper/models"
)

type remoteSyncService struct {
	records store.RemoteRecordRepository

	now    func() time.Time
	logger *logger.Logger
}

// NewRemoteSyncService constructs the server end of the sync protocol. The
// server stamps every accepted write with its own clock; the stored
// timestamp never goes backwards for the same record.
func NewRemoteSyncService(records store.RemoteRecordRepository, logger *logger.Logger) RemoteSyncService {
	return &remoteSyncService{
		records: records,
		now:     serverClock(time.Now),
		logger:  logger,
	}
}

func (s *remoteSyncService) Push(ctx context.Context, ownerID string, domain models.Domain, req models.PushRequest) (models.PushResponse, error) {
	if err := checkWritable(domain); err != nil {
		return models.PushResponse{}, err
	}

	stored, err := s.records.Upsert(ctx, models.RemoteRecord{
		Domain:    domain,
		OwnerID:   ownerID,
		ID:        req.ID,
		Payload:   req.Payload,
		UpdatedAt: s.now(),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*remoteSyncService.Push").
			Str("domain", domain.String()).
			Str("id", req.ID).
			Msg("failed to store pushed record")
		return models.PushResponse{}, fmt.Errorf("store pushed record: %w", err)
	}

	return models.PushResponse{ID: stored.ID, UpdatedAtRemote: stored.UpdatedAt, Version: stored.Version}, nil
}

// Delete writes a tombstone. Deleting an unknown id still stores the
// tombstone so that other devices drop their copy.
func (s *remoteSyncService) Delete(ctx context.Context, ownerID string, domain models.Domain, id string) (models.PushResponse, error) {
	if err := checkWritable(domain); err != nil {
		return models.PushResponse{}, err
	}

	stored, err := s.records.Upsert(ctx, models.RemoteRecord{
		Domain:    domain,
		OwnerID:   ownerID,
		ID:        id,
		Deleted:   true,
		UpdatedAt: s.now(),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*remoteSyncService.Delete").
			Str("domain", domain.String()).
			Str("id", id).
			Msg("failed to store tombstone")
		return models.PushResponse{}, fmt.Errorf("store tombstone: %w", err)
	}

	return models.PushResponse{ID: stored.ID, UpdatedAtRemote: stored.UpdatedAt, Version: stored.Version}, nil
}

func (s *remoteSyncService) Changes(ctx context.Context, ownerID string, domain models.Domain, since *time.Time) (models.ChangesResponse, error) {
	if !domain.IsValid() {
		return models.ChangesResponse{}, ErrUnknownDomain
	}

	rows, err := s.records.ListChangedSince(ctx, domain, ownerID, since)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*remoteSyncService.Changes").
			Str("domain", domain.String()).
			Msg("failed to list changes")
		return models.ChangesResponse{}, fmt.Errorf("list changes: %w", err)
	}

	changes := make([]models.RemoteChange, 0, len(rows))
	for _, row := range rows {
		changes = append(changes, row.ToChange())
	}

	return models.ChangesResponse{Changes: changes, Length: len(changes)}, nil
}

func checkWritable(domain models.Domain) error {
	if !domain.IsValid() {
		return ErrUnknownDomain
	}
	if !domain.IsClientWritable() {
		return ErrDomainNotWritable
	}
	return nil
}
