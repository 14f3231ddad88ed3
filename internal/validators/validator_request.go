package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-game-keeper/models"
)

// RequestValidator implements [Validator] for the auth and relationship
// request bodies accepted by the server.
type RequestValidator struct{}

// NewRequestValidator constructs a [RequestValidator].
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate checks the required fields of obj. Field scoping is not
// supported for requests; any field name returns [ErrUnknownField].
func (v *RequestValidator) Validate(_ context.Context, obj any, fields ...string) error {
	if len(fields) > 0 {
		return ErrUnknownField
	}

	switch value := obj.(type) {
	case models.User:
		return validateCredentials(value)
	case *models.User:
		return validateCredentials(*value)
	case models.SendInviteRequest:
		return required(value.Code, ErrEmptyCode)
	case models.CounterpartRequest:
		return required(value.FriendUID, ErrEmptyFriendUID)
	case models.CreateGroupRequest:
		return required(value.Name, ErrEmptyGroupName)
	case models.GroupInviteRequest:
		if err := required(value.GroupID, ErrEmptyGroupID); err != nil {
			return err
		}
		return required(value.FriendUID, ErrEmptyFriendUID)
	case models.GroupRequest:
		return required(value.GroupID, ErrEmptyGroupID)
	default:
		return ErrUnsupportedType
	}
}

func validateCredentials(user models.User) error {
	if err := required(user.Login, ErrEmptyLogin); err != nil {
		return err
	}
	if user.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}

func required(value string, err error) error {
	if strings.TrimSpace(value) == "" {
		return err
	}
	return nil
}
