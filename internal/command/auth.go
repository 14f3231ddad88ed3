package command

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-game-keeper/models"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewRegisterCmd creates the register command.
func NewRegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register <login>",
		Short: "Create an account and log in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			if name == "" {
				name = args[0]
			}
			return runCredentialCommand(cmd, models.User{Login: args[0], Name: name}, true)
		},
	}

	cmd.Flags().String("name", "", "display name shown to friends (defaults to login)")
	cmd.Flags().String("password", "", "password (read from stdin when empty)")
	return cmd
}

// NewLoginCmd creates the login command.
func NewLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login <login>",
		Short: "Log in and keep the session for later commands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCredentialCommand(cmd, models.User{Login: args[0]}, false)
		},
	}

	cmd.Flags().String("password", "", "password (read from stdin when empty)")
	return cmd
}

// NewLogoutCmd creates the logout command.
func NewLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := GetContext(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer ctx.Close()

			if err := ctx.Services.AuthService.Logout(cmd.Context()); err != nil {
				return writeCommandError(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func runCredentialCommand(cmd *cobra.Command, user models.User, register bool) error {
	password, err := readPassword(cmd)
	if err != nil {
		return writeCommandError(cmd, err)
	}
	user.Password = password

	ctx, err := GetContext(cmd)
	if err != nil {
		return writeCommandError(cmd, err)
	}
	defer ctx.Close()

	auth := ctx.Services.AuthService
	var session models.Session
	if register {
		session, err = auth.Register(cmd.Context(), user)
	} else {
		session, err = auth.Login(cmd.Context(), user)
	}
	if err != nil {
		return writeCommandError(cmd, err)
	}

	// pull what the server already has for this account
	report := ctx.Services.SyncRunner.SyncAll(cmd.Context(), session.UserID)

	out := cmd.OutOrStdout()
	if ctx.JSONMode {
		return json.NewEncoder(out).Encode(map[string]any{
			"user_id": session.UserID,
			"login":   session.Login,
			"synced":  len(report.Failed()) == 0,
		})
	}

	fmt.Fprintf(out, "Logged in as %s (%s)\n", session.Login, session.UserID)
	printSyncIndicator(cmd, report)
	return nil
}

func readPassword(cmd *cobra.Command) (string, error) {
	password, _ := cmd.Flags().GetString("password")
	if password != "" {
		return password, nil
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")

	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		raw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		if len(raw) == 0 {
			return "", errors.New("password is required")
		}
		return string(raw), nil
	}

	// piped input
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}

	password = strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("password is required")
	}
	return password, nil
}
