package command

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-game-keeper/internal/service"
	"github.com/MKhiriev/go-game-keeper/models"
	"github.com/spf13/cobra"
)

// NewGamesCmd creates the games command group.
func NewGamesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "games",
		Short: "Manage the game library",
	}

	cmd.AddCommand(
		newGamesAddCmd(),
		newGamesEditCmd(),
		newGamesRmCmd(),
		newGamesLsCmd(),
	)
	return cmd
}

func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().String("platform", "", "platform, e.g. PC or Switch")
	cmd.Flags().String("status", "", "BACKLOG, PLAYING, COMPLETED or DROPPED")
	cmd.Flags().Int("rating", 0, "rating from 1 to 10")
	cmd.Flags().String("notes", "", "free-form notes")
}

// applyGameFlags copies only the flags the user actually set onto game.
func applyGameFlags(cmd *cobra.Command, game *models.Game) {
	flags := cmd.Flags()
	if flags.Changed("platform") {
		game.Platform, _ = flags.GetString("platform")
	}
	if flags.Changed("status") {
		status, _ := flags.GetString("status")
		game.Status = models.GameStatus(strings.ToUpper(status))
	}
	if flags.Changed("rating") {
		game.Rating, _ = flags.GetInt("rating")
	}
	if flags.Changed("notes") {
		game.Notes, _ = flags.GetString("notes")
	}
	if flags.Changed("title") {
		game.Title, _ = flags.GetString("title")
	}
}

func newGamesAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			game := models.Game{Title: args[0], Status: models.GameBacklog}
			applyGameFlags(cmd, &game)

			return withOwner(cmd, func(ctx *CommandContext, owner string) error {
				entry, err := ctx.Services.LibraryService.AddGame(cmd.Context(), owner, game)
				if err != nil {
					return err
				}
				return printGameWrite(cmd, ctx, "Added", entry)
			})
		},
	}
	addGameFlags(cmd)
	return cmd
}

func newGamesEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withOwner(cmd, func(ctx *CommandContext, owner string) error {
				library := ctx.Services.LibraryService
				current, err := findGame(cmd, library, owner, args[0])
				if err != nil {
					return err
				}

				game := current.Game
				applyGameFlags(cmd, &game)

				entry, err := library.EditGame(cmd.Context(), owner, current.ID, game)
				if err != nil {
					return err
				}
				return printGameWrite(cmd, ctx, "Updated", entry)
			})
		},
	}
	addGameFlags(cmd)
	cmd.Flags().String("title", "", "new title")
	return cmd
}

func newGamesRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a game",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withOwner(cmd, func(ctx *CommandContext, owner string) error {
				if err := ctx.Services.LibraryService.DeleteGame(cmd.Context(), owner, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted game %s\n", args[0])
				return nil
			})
		},
	}
}

func newGamesLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List games",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withOwner(cmd, func(ctx *CommandContext, owner string) error {
				games, err := ctx.Services.LibraryService.ListGames(cmd.Context(), owner)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if ctx.JSONMode {
					return json.NewEncoder(out).Encode(games)
				}
				if len(games) == 0 {
					fmt.Fprintln(out, metaStyle.Render("no games yet"))
					return nil
				}

				rows := [][]string{{"ID", "TITLE", "PLATFORM", "STATUS", "RATING", "SYNC"}}
				for _, g := range games {
					rating := ""
					if g.Game.Rating > 0 {
						rating = fmt.Sprint(g.Game.Rating)
					}
					rows = append(rows, []string{
						g.ID, g.Game.Title, g.Game.Platform, string(g.Game.Status), rating, syncBadge(g.SyncStatus),
					})
				}
				fmt.Fprintln(out, renderTable(rows))
				return nil
			})
		},
	}
}

// findGame resolves id, or a unique id prefix, to a live game.
func findGame(cmd *cobra.Command, library service.LibraryService, owner, id string) (models.GameEntry, error) {
	games, err := library.ListGames(cmd.Context(), owner)
	if err != nil {
		return models.GameEntry{}, err
	}

	var match []models.GameEntry
	for _, g := range games {
		if g.ID == id {
			return g, nil
		}
		if strings.HasPrefix(g.ID, id) {
			match = append(match, g)
		}
	}

	switch len(match) {
	case 1:
		return match[0], nil
	case 0:
		return models.GameEntry{}, fmt.Errorf("%w: game %s", service.ErrRecordNotFound, id)
	default:
		return models.GameEntry{}, fmt.Errorf("game id prefix %q is ambiguous (%d matches)", id, len(match))
	}
}

func printGameWrite(cmd *cobra.Command, ctx *CommandContext, verb string, entry models.GameEntry) error {
	out := cmd.OutOrStdout()
	if ctx.JSONMode {
		return json.NewEncoder(out).Encode(entry)
	}
	fmt.Fprintf(out, "%s %q (%s) %s\n", verb, entry.Game.Title, entry.ID, syncBadge(entry.SyncStatus))
	return nil
}

func syncBadge(status models.SyncStatus) string {
	if status == models.StatusPending {
		return pendingStyle.Render("pending")
	}
	return okStyle.Render("synced")
}

// withOwner builds the command context, resolves the owner and runs fn.
// Errors from fn are printed with hints.
func withOwner(cmd *cobra.Command, fn func(ctx *CommandContext, owner string) error) error {
	ctx, err := GetContext(cmd)
	if err != nil {
		return writeCommandError(cmd, err)
	}
	defer ctx.Close()

	owner, err := ctx.Owner(cmd.Context())
	if err != nil {
		return writeCommandError(cmd, err)
	}

	if err := fn(ctx, owner); err != nil {
		return writeCommandError(cmd, err)
	}
	return nil
}
