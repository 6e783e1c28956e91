package main

import (
	"github.com/spf13/cobra"

	"github.com/sker65/headsup/client"
)

func newPreAuthKeysCmd(r *root) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "preauthkeys",
		Aliases: []string{"preauthkey"},
		Short:   "Manage pre-auth keys",
	}
	cmd.AddCommand(newListPreAuthKeysCmd(r))
	cmd.AddCommand(newCreatePreAuthKeyCmd(r))
	cmd.AddCommand(newDeletePreAuthKeyCmd(r))
	cmd.AddCommand(newExpirePreAuthKeyCmd(r))
	cmd.AddCommand(newCleanupPreAuthKeysCmd(r))
	return cmd
}

func newListPreAuthKeysCmd(r *root) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pre-auth keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return r.app.ListPreAuthKeys(ctx)
		},
	}
}

func newCreatePreAuthKeyCmd(r *root) *cobra.Command {
	var (
		user, expiration    string
		reusable, ephemeral bool
		tags                []string
		copyIt              bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a pre-auth key and show its secret once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exp, err := parseTimestamp("expiration", expiration)
			if err != nil {
				return err
			}
			req := client.CreatePreAuthKeyRequest{
				User:      user,
				Reusable:  &reusable,
				Ephemeral: &ephemeral,
				ACLTags:   tags,
			}
			if !exp.IsZero() {
				req.Expiration = client.FormatTime(exp)
			}

			ctx := cmd.Context()
			return r.app.CreatePreAuthKey(ctx, req, copyIt)
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Owning user ID (required)")
	cmd.Flags().BoolVar(&reusable, "reusable", false, "Key can enroll more than one node")
	cmd.Flags().BoolVar(&ephemeral, "ephemeral", false, "Nodes enrolled with the key are ephemeral")
	cmd.Flags().StringVar(&expiration, "expiration", "", "Expiration time in RFC 3339 (optional)")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "ACL tag, e.g. tag:ci (repeatable)")
	cmd.Flags().BoolVar(&copyIt, "copy", false, "Copy the secret to the clipboard")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func newDeletePreAuthKeyCmd(r *root) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a pre-auth key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return r.app.DeletePreAuthKey(ctx, args[0], yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}

func newExpirePreAuthKeyCmd(r *root) *cobra.Command {
	return &cobra.Command{
		Use:   "expire <id>",
		Short: "Expire a pre-auth key now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return r.app.ExpirePreAuthKey(ctx, args[0])
		},
	}
}

func newCleanupPreAuthKeysCmd(r *root) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete used single-use keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return r.app.CleanupPreAuthKeys(ctx, yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}
