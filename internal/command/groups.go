package command

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewGroupsCmd creates the groups command group.
func NewGroupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Create and manage groups",
	}

	cmd.AddCommand(
		newGroupsCreateCmd(),
		newGroupsInviteCmd(),
		newGroupActionCmd("accept", "Accept a group invite"),
		newGroupActionCmd("reject", "Reject a group invite"),
		newGroupActionCmd("leave", "Leave a group"),
		newGroupsLsCmd(),
	)
	return cmd
}

func newGroupsCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a group you own",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")

			return withOwner(cmd, func(ctx *CommandContext, owner string) error {
				group, err := ctx.Services.RelationshipService.CreateGroup(cmd.Context(), owner, name)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if ctx.JSONMode {
					return json.NewEncoder(out).Encode(group)
				}
				fmt.Fprintf(out, "Created group %q (%s)\n", group.Name, group.GroupID)
				return nil
			})
		},
	}
}

func newGroupsInviteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "invite <group-id> <friend-uid>",
		Short: "Invite a friend to a group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withOwner(cmd, func(ctx *CommandContext, owner string) error {
				if err := ctx.Services.RelationshipService.InviteToGroup(cmd.Context(), owner, args[0], args[1]); err != nil {
					return err
				}
				return printOK(cmd, ctx, fmt.Sprintf("invited %s to %s", args[1], args[0]))
			})
		},
	}
}

func newGroupActionCmd(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action + " <group-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withOwner(cmd, func(ctx *CommandContext, owner string) error {
				rel := ctx.Services.RelationshipService
				call := rel.AcceptGroupInvite
				switch action {
				case "reject":
					call = rel.RejectGroupInvite
				case "leave":
					call = rel.LeaveGroup
				}

				if err := call(cmd.Context(), owner, args[0]); err != nil {
					return err
				}
				return printOK(cmd, ctx, fmt.Sprintf("%s: %s", action, args[0]))
			})
		},
	}
}

func newGroupsLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List your groups",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withOwner(cmd, func(ctx *CommandContext, owner string) error {
				groups, err := ctx.Services.LibraryService.ListGroups(cmd.Context(), owner)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if ctx.JSONMode {
					return json.NewEncoder(out).Encode(groups)
				}
				if len(groups) == 0 {
					fmt.Fprintln(out, metaStyle.Render("no groups yet"))
					return nil
				}

				rows := [][]string{{"ID", "NAME", "OWNER", "MEMBERS"}}
				for _, g := range groups {
					ownerName := g.OwnerID
					if g.OwnerID == owner {
						ownerName = "you"
					}
					rows = append(rows, []string{g.GroupID, g.Name, ownerName, fmt.Sprint(len(g.Members))})
				}
				fmt.Fprintln(out, renderTable(rows))
				return nil
			})
		},
	}
}

// NewInvitesCmd creates the invites command group.
func NewInvitesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invites",
		Short: "Group invites addressed to you",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List pending group invites",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withOwner(cmd, func(ctx *CommandContext, owner string) error {
				invites, err := ctx.Services.LibraryService.ListInvites(cmd.Context(), owner)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if ctx.JSONMode {
					return json.NewEncoder(out).Encode(invites)
				}
				if len(invites) == 0 {
					fmt.Fprintln(out, metaStyle.Render("no invites"))
					return nil
				}

				rows := [][]string{{"GROUP", "NAME", "FROM", "STATUS"}}
				for _, inv := range invites {
					rows = append(rows, []string{inv.GroupID, inv.GroupName, inv.InviterID, string(inv.Status)})
				}
				fmt.Fprintln(out, renderTable(rows))
				return nil
			})
		},
	})
	return cmd
}
