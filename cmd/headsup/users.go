package main

import (
	"github.com/spf13/cobra"

	"github.com/sker65/headsup/client"
)

func newUsersCmd(r *root) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage users",
	}
	cmd.AddCommand(newListUsersCmd(r))
	cmd.AddCommand(newCreateUserCmd(r))
	cmd.AddCommand(newDeleteUserCmd(r))
	cmd.AddCommand(newRenameUserCmd(r))
	return cmd
}

func newListUsersCmd(r *root) *cobra.Command {
	var params client.ListUsersParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return r.app.ListUsers(ctx, params)
		},
	}

	cmd.Flags().StringVar(&params.ID, "id", "", "Filter by user ID")
	cmd.Flags().StringVar(&params.Name, "name", "", "Filter by name")
	cmd.Flags().StringVar(&params.Email, "email", "", "Filter by email")
	return cmd
}

func newCreateUserCmd(r *root) *cobra.Command {
	var req client.CreateUserRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return r.app.CreateUser(ctx, req)
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "User name (required)")
	cmd.Flags().StringVar(&req.DisplayName, "display-name", "", "Display name (optional)")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email (optional)")
	cmd.Flags().StringVar(&req.PictureURL, "picture-url", "", "Profile picture URL (optional)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newDeleteUserCmd(r *root) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return r.app.DeleteUser(ctx, args[0], yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}

func newRenameUserCmd(r *root) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <new-name>",
		Short: "Rename a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return r.app.RenameUser(ctx, args[0], args[1])
		},
	}
}
