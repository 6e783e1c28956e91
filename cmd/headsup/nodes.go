package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sker65/headsup/client"
)

func newNodesCmd(r *root) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "nodes",
		Aliases: []string{"node"},
		Short:   "Manage nodes",
	}
	cmd.AddCommand(newListNodesCmd(r))
	cmd.AddCommand(newDeleteNodeCmd(r))
	cmd.AddCommand(newExpireNodeCmd(r))
	cmd.AddCommand(newRenameNodeCmd(r))
	cmd.AddCommand(newCleanupNodesCmd(r))
	return cmd
}

func newListNodesCmd(r *root) *cobra.Command {
	var params client.ListNodesParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List nodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return r.app.ListNodes(ctx, params)
		},
	}

	cmd.Flags().StringVar(&params.User, "user", "", "Filter by owning user")
	return cmd
}

func newDeleteNodeCmd(r *root) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return r.app.DeleteNode(ctx, args[0], yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}

func newExpireNodeCmd(r *root) *cobra.Command {
	var expiry string

	cmd := &cobra.Command{
		Use:   "expire <id>",
		Short: "Expire a node's key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := parseTimestamp("expiry", expiry)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			return r.app.ExpireNode(ctx, args[0], at)
		},
	}

	cmd.Flags().StringVar(&expiry, "expiry", "", "Expiry time in RFC 3339 (default: now)")
	return cmd
}

func newRenameNodeCmd(r *root) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <new-name>",
		Short: "Rename a node",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return r.app.RenameNode(ctx, args[0], args[1])
		},
	}
}

func newCleanupNodesCmd(r *root) *cobra.Command {
	var (
		olderThan time.Duration
		yes       bool
	)

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete offline nodes not seen recently",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if olderThan <= 0 {
				return fmt.Errorf("--older-than must be positive")
			}
			ctx := cmd.Context()
			return r.app.CleanupNodes(ctx, olderThan, yes)
		},
	}

	cmd.Flags().DurationVar(&olderThan, "older-than", client.DefaultStaleAfter, "Minimum time since last seen")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}

// parseTimestamp parses an optional RFC 3339 flag value. Empty yields the
// zero time.
func parseTimestamp(flag, v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s: %w", flag, err)
	}
	return t, nil
}
