package validators

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-game-keeper/models"
)

// Field name constants used to restrict record validation to a subset of rules.
const (
	// FieldID targets the stable record identifier.
	FieldID = "id"

	// FieldOwnerID targets the owner partition of a record.
	FieldOwnerID = "owner_id"

	// FieldDomain targets the record domain.
	FieldDomain = "domain"

	// FieldPayload targets the domain payload; the payload is decoded and
	// validated as a [models.Game] or [models.PlaySession].
	FieldPayload = "payload"

	// FieldVersion targets the remote version counter.
	FieldVersion = "version"
)

var allowedGameStatuses = []models.GameStatus{
	models.GameBacklog,
	models.GamePlaying,
	models.GameCompleted,
	models.GameDropped,
}

const maxRating = 10

// RecordValidator implements [Validator] for synchronized records and the
// payload types of the client-writable domains.
type RecordValidator struct{}

// NewRecordValidator constructs a [RecordValidator].
func NewRecordValidator() Validator {
	return &RecordValidator{}
}

// Validate dispatches on the type of obj. Supported: [models.Record],
// [models.Game] and [models.PlaySession], as values or pointers.
func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Record:
		return v.validateRecord(ctx, value, fields...)
	case *models.Record:
		return v.validateRecord(ctx, *value, fields...)

	case models.Game:
		return v.validateGame(value)
	case *models.Game:
		return v.validateGame(*value)

	case models.PlaySession:
		return v.validateSession(value)
	case *models.PlaySession:
		return v.validateSession(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateRecord(_ context.Context, record models.Record, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldOwnerID, FieldDomain, FieldPayload, FieldVersion}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if record.ID == "" {
				return ErrInvalidID
			}
		case FieldOwnerID:
			if record.OwnerID == "" {
				return ErrInvalidOwnerID
			}
		case FieldDomain:
			if !record.Domain.IsValid() {
				return ErrInvalidDomain
			}
		case FieldPayload:
			if err := v.validatePayload(record.Domain, record.Payload); err != nil {
				return fmt.Errorf("record %s: %w", record.ID, err)
			}
		case FieldVersion:
			if record.Version < 0 {
				return ErrInvalidVersion
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validatePayload(domain models.Domain, payload json.RawMessage) error {
	if len(payload) == 0 {
		return ErrEmptyPayload
	}

	switch domain {
	case models.DomainGames:
		var game models.Game
		if err := json.Unmarshal(payload, &game); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}
		return v.validateGame(game)
	case models.DomainSessions:
		var session models.PlaySession
		if err := json.Unmarshal(payload, &session); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}
		return v.validateSession(session)
	default:
		if !json.Valid(payload) {
			return ErrInvalidPayload
		}
		return nil
	}
}

func (v *RecordValidator) validateGame(game models.Game) error {
	if game.Title == "" {
		return ErrEmptyTitle
	}
	if !isAllowedGameStatus(game.Status) {
		return ErrInvalidGameStatus
	}
	if game.Rating < 0 || game.Rating > maxRating {
		return ErrInvalidRating
	}
	return nil
}

func (v *RecordValidator) validateSession(session models.PlaySession) error {
	if session.GameID == "" {
		return ErrEmptyGameID
	}
	if session.StartedAt.IsZero() {
		return ErrEmptyStartedAt
	}
	if session.Minutes < 0 {
		return ErrInvalidMinutes
	}
	return nil
}

func isAllowedGameStatus(status models.GameStatus) bool {
	for _, s := range allowedGameStatuses {
		if status == s {
			return true
		}
	}
	return false
}
