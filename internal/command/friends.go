package command

import (
	"encoding/json"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// NewFriendsCmd creates the friends command group.
func NewFriendsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "friends",
		Short: "Friend codes, invites and the friend list",
	}

	cmd.AddCommand(
		newFriendsCodeCmd(),
		newFriendsInviteCmd(),
		newCounterpartCmd("accept", "Accept an incoming friend invite"),
		newCounterpartCmd("reject", "Reject an incoming friend invite"),
		newCounterpartCmd("remove", "Remove a friend or cancel an invite"),
		newFriendsLsCmd(),
	)
	return cmd
}

func newFriendsCodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "code",
		Short: "Show your own friend code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			copyCode, _ := cmd.Flags().GetBool("copy")

			ctx, err := GetContext(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer ctx.Close()

			if _, err := ctx.Owner(cmd.Context()); err != nil {
				return writeCommandError(cmd, err)
			}

			code, err := ctx.Services.AuthService.FriendCode(cmd.Context())
			if err != nil {
				return writeCommandError(cmd, err)
			}

			out := cmd.OutOrStdout()
			if ctx.JSONMode {
				return json.NewEncoder(out).Encode(code)
			}

			fmt.Fprintf(out, "%s  %s\n", headerStyle.Render(code.FriendCode), metaStyle.Render(code.DisplayName))
			if copyCode {
				if err := clipboard.WriteAll(code.FriendCode); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), failStyle.Render("could not copy to clipboard: "+err.Error()))
					return nil
				}
				fmt.Fprintln(out, okStyle.Render("copied to clipboard"))
			}
			return nil
		},
	}

	cmd.Flags().Bool("copy", false, "copy the code to the clipboard")
	return cmd
}

func newFriendsInviteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "invite <friend-code>",
		Short: "Send a friend invite by code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withOwner(cmd, func(ctx *CommandContext, owner string) error {
				result, err := ctx.Services.RelationshipService.SendInvite(cmd.Context(), owner, args[0])
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if ctx.JSONMode {
					return json.NewEncoder(out).Encode(result)
				}
				fmt.Fprintf(out, "Invite sent to %s (%s)\n", result.DisplayName, result.FriendUID)
				return nil
			})
		},
	}
}

// newCounterpartCmd builds accept, reject and remove. They share the
// signature and only differ in the service call.
func newCounterpartCmd(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action + " <friend-uid>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withOwner(cmd, func(ctx *CommandContext, owner string) error {
				rel := ctx.Services.RelationshipService
				call := rel.Accept
				switch action {
				case "reject":
					call = rel.Reject
				case "remove":
					call = rel.Remove
				}

				if err := call(cmd.Context(), owner, args[0]); err != nil {
					return err
				}
				return printOK(cmd, ctx, fmt.Sprintf("%s: %s", action, args[0]))
			})
		},
	}
}

func newFriendsLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List friends and pending invites",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withOwner(cmd, func(ctx *CommandContext, owner string) error {
				friends, err := ctx.Services.LibraryService.ListFriends(cmd.Context(), owner)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if ctx.JSONMode {
					return json.NewEncoder(out).Encode(friends)
				}
				if len(friends) == 0 {
					fmt.Fprintln(out, metaStyle.Render("no friends yet"))
					return nil
				}

				rows := [][]string{{"UID", "NAME", "CODE", "STATUS"}}
				for _, f := range friends {
					rows = append(rows, []string{f.FriendUID, f.DisplayName, f.FriendCode, string(f.Status)})
				}
				fmt.Fprintln(out, renderTable(rows))
				return nil
			})
		},
	}
}

func printOK(cmd *cobra.Command, ctx *CommandContext, msg string) error {
	out := cmd.OutOrStdout()
	if ctx.JSONMode {
		return json.NewEncoder(out).Encode(map[string]bool{"ok": true})
	}
	fmt.Fprintln(out, okStyle.Render("✓ "+msg))
	return nil
}
