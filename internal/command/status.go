package command

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-game-keeper/models"
	"github.com/spf13/cobra"
)

// NewStatusCmd creates the status command.
func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show pending records and cursor freshness per domain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := GetContext(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer ctx.Close()

			owner, err := ctx.Owner(cmd.Context())
			if err != nil {
				return writeCommandError(cmd, err)
			}

			statuses, err := ctx.Services.SyncRunner.Status(cmd.Context(), owner)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			out := cmd.OutOrStdout()
			if ctx.JSONMode {
				return json.NewEncoder(out).Encode(map[string]any{
					"mode":     ctx.App.Mode(),
					"owner_id": owner,
					"domains":  statuses,
				})
			}

			fmt.Fprintln(out, metaStyle.Render(fmt.Sprintf("mode: %s  owner: %s", ctx.App.Mode(), owner)))
			fmt.Fprintln(out, renderStatus(statuses, time.Now()))
			return nil
		},
	}
}

func renderStatus(statuses []models.DomainStatus, now time.Time) string {
	rows := [][]string{{"DOMAIN", "PENDING", "LAST SYNC"}}
	for _, s := range statuses {
		pending := okStyle.Render("0")
		if s.Pending > 0 {
			pending = pendingStyle.Render(fmt.Sprint(s.Pending))
		}

		rows = append(rows, []string{string(s.Domain), pending, cursorAge(s.Cursor, now)})
	}
	return renderTable(rows)
}

func cursorAge(cursor *time.Time, now time.Time) string {
	if cursor == nil {
		return metaStyle.Render("never")
	}
	age := now.Sub(*cursor).Truncate(time.Second)
	if age < time.Second {
		return "just now"
	}
	return fmt.Sprintf("%s ago", age)
}
