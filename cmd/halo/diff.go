package main

import (
	"fmt"

	"github.com/halo-agent/halo/internal"
	"github.com/spf13/cobra"
)

func NewDiffCmd(diffUC *internal.DiffUseCase) *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Diff the session against the last snapshot",
		Long:  `Compare the current export document with the most recently archived snapshot.`,
		RunE:  makeDiffRunner(diffUC),
	}
}

func makeDiffRunner(diffUC *internal.DiffUseCase) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		scopeHint, _ := cmd.Flags().GetString("scope")

		diff, err := diffUC.Execute(cmd.Context(), internal.ExportInput{Scope: scopeHint})
		if err != nil {
			return fmt.Errorf("diff: %w", err)
		}

		if diff == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "No changes since last snapshot.")
			return nil
		}

		fmt.Fprint(cmd.OutOrStdout(), diff)
		return nil
	}
}
