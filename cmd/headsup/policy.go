package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newPolicyCmd(r *root) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Read or replace the access-control policy",
	}
	cmd.AddCommand(newGetPolicyCmd(r))
	cmd.AddCommand(newSetPolicyCmd(r))
	return cmd
}

func newGetPolicyCmd(r *root) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the policy document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return r.app.GetPolicy(ctx)
		},
	}
}

func newSetPolicyCmd(r *root) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Replace the policy document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readPolicy(cmd, file)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			return r.app.SetPolicy(ctx, text)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Policy file, or - for stdin (required)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func readPolicy(cmd *cobra.Command, file string) (string, error) {
	var (
		b   []byte
		err error
	)
	if file == "-" {
		b, err = io.ReadAll(cmd.InOrStdin())
	} else {
		b, err = os.ReadFile(file)
	}
	if err != nil {
		return "", fmt.Errorf("read policy: %w", err)
	}
	return string(b), nil
}
