package command

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-game-keeper/models"
	"github.com/spf13/cobra"
)

// NewSessionsCmd creates the sessions command group.
func NewSessionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Record play sessions",
	}

	cmd.AddCommand(
		newSessionsLogCmd(),
		newSessionsRmCmd(),
		newSessionsLsCmd(),
	)
	return cmd
}

func newSessionsLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log <game-id>",
		Short: "Log a play session for a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes, _ := cmd.Flags().GetInt("minutes")
			note, _ := cmd.Flags().GetString("note")
			started, _ := cmd.Flags().GetString("started")

			startedAt := time.Now().Add(-time.Duration(minutes) * time.Minute)
			if started != "" {
				var err error
				if startedAt, err = time.Parse(time.RFC3339, started); err != nil {
					return writeCommandError(cmd, fmt.Errorf("invalid --started, want RFC 3339: %w", err))
				}
			}

			return withOwner(cmd, func(ctx *CommandContext, owner string) error {
				game, err := findGame(cmd, ctx.Services.LibraryService, owner, args[0])
				if err != nil {
					return err
				}

				entry, err := ctx.Services.LibraryService.LogSession(cmd.Context(), owner, models.PlaySession{
					GameID:    game.ID,
					StartedAt: startedAt.UTC(),
					Minutes:   minutes,
					Note:      note,
				})
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if ctx.JSONMode {
					return json.NewEncoder(out).Encode(entry)
				}
				fmt.Fprintf(out, "Logged %d min of %q (%s) %s\n", minutes, game.Game.Title, entry.ID, syncBadge(entry.SyncStatus))
				return nil
			})
		},
	}

	cmd.Flags().Int("minutes", 0, "session length in minutes")
	cmd.Flags().String("note", "", "short note")
	cmd.Flags().String("started", "", "start time in RFC 3339 (defaults to now minus --minutes)")
	_ = cmd.MarkFlagRequired("minutes")
	return cmd
}

func newSessionsRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a play session",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withOwner(cmd, func(ctx *CommandContext, owner string) error {
				if err := ctx.Services.LibraryService.DeleteSession(cmd.Context(), owner, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted session %s\n", args[0])
				return nil
			})
		},
	}
}

func newSessionsLsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List play sessions",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID, _ := cmd.Flags().GetString("game")

			return withOwner(cmd, func(ctx *CommandContext, owner string) error {
				sessions, err := ctx.Services.LibraryService.ListSessions(cmd.Context(), owner, gameID)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if ctx.JSONMode {
					return json.NewEncoder(out).Encode(sessions)
				}
				if len(sessions) == 0 {
					fmt.Fprintln(out, metaStyle.Render("no sessions yet"))
					return nil
				}

				total := 0
				rows := [][]string{{"ID", "GAME", "STARTED", "MINUTES", "NOTE", "SYNC"}}
				for _, s := range sessions {
					total += s.Session.Minutes
					rows = append(rows, []string{
						s.ID,
						s.Session.GameID,
						s.Session.StartedAt.Local().Format("2006-01-02 15:04"),
						fmt.Sprint(s.Session.Minutes),
						s.Session.Note,
						syncBadge(s.SyncStatus),
					})
				}
				fmt.Fprintln(out, renderTable(rows))
				fmt.Fprintln(out, metaStyle.Render(fmt.Sprintf("%d sessions, %s played", len(sessions), time.Duration(total)*time.Minute)))
				return nil
			})
		},
	}

	cmd.Flags().String("game", "", "only sessions of this game id")
	return cmd
}
