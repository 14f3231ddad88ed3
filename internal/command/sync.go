package command

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-game-keeper/models"
	"github.com/spf13/cobra"
)

// NewSyncCmd creates the sync command.
func NewSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync [domain...]",
		Short: "Run one sync pass (all domains when none given)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			domains, err := parseDomains(args)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			ctx, err := GetContext(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer ctx.Close()

			report, err := ctx.App.Sync(cmd.Context(), domains...)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			if ctx.JSONMode {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(syncReportJSON(report))
			}

			printSyncReport(cmd, report)
			return nil
		},
	}
}

func parseDomains(args []string) ([]models.Domain, error) {
	domains := make([]models.Domain, 0, len(args))
	for _, arg := range args {
		d := models.Domain(arg)
		if !d.IsValid() {
			return nil, fmt.Errorf("unknown domain %q (one of %v)", arg, models.AllDomains)
		}
		domains = append(domains, d)
	}
	return domains, nil
}

type domainReportJSON struct {
	models.DomainReport
	Error string `json:"error,omitempty"`
}

func syncReportJSON(report models.SyncReport) map[string]any {
	domains := make([]domainReportJSON, 0, len(report.Domains))
	for _, d := range report.Domains {
		item := domainReportJSON{DomainReport: d}
		if d.Err != nil {
			item.Error = d.Err.Error()
		}
		domains = append(domains, item)
	}
	return map[string]any{
		"owner_id":    report.OwnerID,
		"started_at":  report.StartedAt,
		"finished_at": report.FinishedAt,
		"synced":      len(report.Failed()) == 0,
		"pending":     report.TotalPending(),
		"domains":     domains,
	}
}

func printSyncReport(cmd *cobra.Command, report models.SyncReport) {
	out := cmd.OutOrStdout()

	rows := [][]string{{"DOMAIN", "PULLED", "SKIPPED", "PUSHED", "WARNINGS", "PENDING", "RESULT"}}
	for _, d := range report.Domains {
		pulled := d.Down.Applied
		if d.Initial != nil {
			pulled += d.Initial.Applied
		}

		result := okStyle.Render("ok")
		if d.Err != nil {
			result = failStyle.Render(d.Err.Error())
		}

		rows = append(rows, []string{
			string(d.Domain),
			fmt.Sprint(pulled),
			fmt.Sprint(d.Down.Skipped),
			fmt.Sprint(d.Flush.Flushed),
			fmt.Sprint(len(d.Flush.Warnings)),
			fmt.Sprint(d.Pending),
			result,
		})
	}
	fmt.Fprintln(out, renderTable(rows))

	for _, d := range report.Domains {
		for _, w := range d.Flush.Warnings {
			fmt.Fprintln(out, pendingStyle.Render(fmt.Sprintf("  %s/%s rejected: %s", d.Domain, w.ID, w.Reason)))
		}
	}

	printSyncIndicator(cmd, report)
}

// printSyncIndicator prints the one-line sync outcome. A failed pass never
// fails the command; the records stay pending until the next pass.
func printSyncIndicator(cmd *cobra.Command, report models.SyncReport) {
	out := cmd.OutOrStdout()
	if failed := report.Failed(); len(failed) > 0 {
		fmt.Fprintln(out, failStyle.Render(fmt.Sprintf("✗ not synced (%d of %d domains failed, %d pending)",
			len(failed), len(report.Domains), report.TotalPending())))
		return
	}
	if pending := report.TotalPending(); pending > 0 {
		fmt.Fprintln(out, pendingStyle.Render(fmt.Sprintf("● synced, %d pending", pending)))
		return
	}
	fmt.Fprintln(out, okStyle.Render("✓ synced"))
}
