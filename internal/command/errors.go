package command

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-game-keeper/internal/service"
	"github.com/spf13/cobra"
)

// reportedError marks an error already printed to the user.
type reportedError struct{ error }

func (e reportedError) Unwrap() error { return e.error }

func writeCommandError(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err.Error())

	switch {
	case errors.Is(err, service.ErrNotLoggedIn), errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		fmt.Fprintf(cmd.ErrOrStderr(), "Hint: log in first. Try: %s login\n", AppName)
	case errors.Is(err, service.ErrUnsupportedInOfflineMode):
		fmt.Fprintf(cmd.ErrOrStderr(), "Hint: this needs the backend. Try: %s --mode online ...\n", AppName)
	}

	return reportedError{err}
}
