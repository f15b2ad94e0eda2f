package main

import (
	"fmt"

	"github.com/halo-agent/halo/internal"
	"github.com/spf13/cobra"
)

func NewResetCmd(resetUC *internal.ResetUseCase) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear the session memory",
		Long:  `Delete the persisted session so the next run starts from empty collections. Archived snapshots are kept.`,
		RunE:  makeResetRunner(resetUC),
	}
}

func makeResetRunner(resetUC *internal.ResetUseCase) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		scopeHint, _ := cmd.Flags().GetString("scope")

		if err := resetUC.Execute(cmd.Context(), scopeHint); err != nil {
			return fmt.Errorf("reset: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Session memory cleared.")
		return nil
	}
}
