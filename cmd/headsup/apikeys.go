package main

import (
	"github.com/spf13/cobra"
)

func newAPIKeysCmd(r *root) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "apikeys",
		Aliases: []string{"apikey"},
		Short:   "Manage API keys",
	}
	cmd.AddCommand(newListAPIKeysCmd(r))
	cmd.AddCommand(newCreateAPIKeyCmd(r))
	cmd.AddCommand(newDeleteAPIKeyCmd(r))
	cmd.AddCommand(newExpireAPIKeyCmd(r))
	return cmd
}

func newListAPIKeysCmd(r *root) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List API keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return r.app.ListAPIKeys(ctx)
		},
	}
}

func newCreateAPIKeyCmd(r *root) *cobra.Command {
	var (
		expiration string
		copyIt     bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an API key and show it once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exp, err := parseTimestamp("expiration", expiration)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			return r.app.CreateAPIKey(ctx, exp, copyIt)
		},
	}

	cmd.Flags().StringVar(&expiration, "expiration", "", "Expiration time in RFC 3339 (optional)")
	cmd.Flags().BoolVar(&copyIt, "copy", false, "Copy the key to the clipboard")
	return cmd
}

func newDeleteAPIKeyCmd(r *root) *cobra.Command {
	var (
		id  string
		yes bool
	)

	cmd := &cobra.Command{
		Use:   "delete <prefix>",
		Short: "Delete an API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return r.app.DeleteAPIKey(ctx, args[0], id, yes)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Key ID (optional)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}

func newExpireAPIKeyCmd(r *root) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "expire <prefix>",
		Short: "Expire an API key now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return r.app.ExpireAPIKey(ctx, args[0], id)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Key ID (optional)")
	return cmd
}
