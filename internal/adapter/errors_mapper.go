package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx response into the adapter sentinels.
// id names the record the request was about and may be empty.
func mapHTTPError(resp *resty.Response, id string) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch code := resp.StatusCode(); {
	case code == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case code == http.StatusTooManyRequests, code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrTransientNetwork, code, body)
	case code == http.StatusBadRequest:
		return NewRejectedError(id, body, ErrBadRequest)
	case code == http.StatusForbidden:
		return NewRejectedError(id, body, ErrForbidden)
	case code == http.StatusNotFound:
		return NewRejectedError(id, body, ErrNotFound)
	case code == http.StatusConflict:
		return NewRejectedError(id, body, ErrConflict)
	default:
		return NewRejectedError(id, fmt.Sprintf("http %d: %s", code, body), nil)
	}
}

// mapTransportError classifies an error returned by resty before any
// response was received. Cancellation is passed through untouched.
func mapTransportError(op string, err error) error {
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrTransientNetwork, op, err)
}
