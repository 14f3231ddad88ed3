package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-game-keeper/internal/validators"
	"github.com/MKhiriev/go-game-keeper/models"
)

// RemoteSyncValidationService rejects malformed records before they reach
// the wrapped RemoteSyncService.
type RemoteSyncValidationService struct {
	inner     RemoteSyncService
	validator validators.Validator
}

func NewRemoteSyncValidationService() RemoteSyncServiceWrapper {
	return &RemoteSyncValidationService{
		validator: validators.NewRecordValidator(),
	}
}

func (v *RemoteSyncValidationService) Push(ctx context.Context, ownerID string, domain models.Domain, req models.PushRequest) (models.PushResponse, error) {
	record := models.Record{
		ID:      req.ID,
		OwnerID: ownerID,
		Domain:  domain,
		Payload: req.Payload,
		Version: req.Version,
	}

	// the domain is checked by the inner service so that a forbidden domain
	// is reported as such and not as a payload error
	if domain.IsClientWritable() {
		if err := v.validator.Validate(ctx, record); err != nil {
			return models.PushResponse{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}
	}

	return v.inner.Push(ctx, ownerID, domain, req)
}

func (v *RemoteSyncValidationService) Delete(ctx context.Context, ownerID string, domain models.Domain, id string) (models.PushResponse, error) {
	record := models.Record{ID: id, OwnerID: ownerID}
	if err := v.validator.Validate(ctx, record, validators.FieldID, validators.FieldOwnerID); err != nil {
		return models.PushResponse{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return v.inner.Delete(ctx, ownerID, domain, id)
}

func (v *RemoteSyncValidationService) Changes(ctx context.Context, ownerID string, domain models.Domain, since *time.Time) (models.ChangesResponse, error) {
	if ownerID == "" {
		return models.ChangesResponse{}, fmt.Errorf("%w: %w", ErrInvalidArgument, validators.ErrInvalidOwnerID)
	}

	return v.inner.Changes(ctx, ownerID, domain, since)
}

func (v *RemoteSyncValidationService) Wrap(wrapped RemoteSyncService) RemoteSyncService {
	v.inner = wrapped
	return v
}
