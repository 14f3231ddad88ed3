package command

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// NewRunCmd creates the run command: a foreground sync daemon.
func NewRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Sync in the background until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := GetContext(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer ctx.Close()

			signalCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
			defer stop()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, metaStyle.Render("syncing, press Ctrl+C to stop"))

			err = ctx.App.Run(signalCtx, func(pending int) {
				if pending == 0 {
					fmt.Fprintln(out, okStyle.Render("✓ all records synced"))
					return
				}
				fmt.Fprintln(out, pendingStyle.Render(fmt.Sprintf("● %d pending", pending)))
			})
			if err != nil {
				return writeCommandError(cmd, err)
			}
			return nil
		},
	}
}
