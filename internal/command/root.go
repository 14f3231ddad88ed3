// Package command implements the game-keeper CLI on top of cobra.
//
// Every subcommand builds a [client.App] from the merged configuration (flags
// override environment, environment overrides the JSON file) and closes it
// before returning.
package command

import (
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-game-keeper/models"
	"github.com/spf13/cobra"
)

// AppName is the binary name shown in help and hints.
const AppName = "game-keeper"

// NewRootCmd creates the root command with every subcommand attached.
func NewRootCmd(build models.AppBuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:           AppName,
		Short:         "Game library with offline-first sync",
		Long:          "game-keeper keeps a local game library and syncs it with friends and groups.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.Version = build.BuildVersion()
	cmd.SetVersionTemplate(AppName + " version {{.Version}}\n")
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	flags := cmd.PersistentFlags()
	flags.String(flagMode, "", "run mode: online or local")
	flags.String(flagServer, "", "backend base URL")
	flags.String(flagGRPC, "", "relationship gRPC address (host:port)")
	flags.String(flagDB, "", "local SQLite database path")
	flags.String(flagHashKey, "", "HMAC key used to sign pushed records")
	flags.String(flagConfig, "", "path to a JSON config file")
	flags.Bool(flagJSON, false, "output in JSON format")

	cmd.AddCommand(
		NewRegisterCmd(),
		NewLoginCmd(),
		NewLogoutCmd(),
		NewSyncCmd(),
		NewStatusCmd(),
		NewRunCmd(),
		NewGamesCmd(),
		NewSessionsCmd(),
		NewFriendsCmd(),
		NewGroupsCmd(),
		NewInvitesCmd(),
		NewVersionCmd(build),
	)

	return cmd
}

// Execute runs the CLI with os.Args. Usage errors cobra silenced are
// printed here; command errors were printed by the command itself.
func Execute(build models.AppBuildInfo) error {
	root := NewRootCmd(build)
	err := root.Execute()

	var reported reportedError
	if err != nil && !errors.As(err, &reported) {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %s\n", err)
	}
	return err
}
