package main

import (
	"fmt"

	"github.com/halo-agent/halo/internal"
	"github.com/spf13/cobra"
)

func NewSnapshotCmd(snapshotUC *internal.SnapshotUseCase) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Archive the current export document",
		Long:  `Write the current export document into the scope archive and commit it.`,
		RunE:  makeSnapshotRunner(snapshotUC),
	}
}

func makeSnapshotRunner(snapshotUC *internal.SnapshotUseCase) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		scopeHint, _ := cmd.Flags().GetString("scope")

		out, err := snapshotUC.Execute(cmd.Context(), internal.ExportInput{Scope: scopeHint})
		if err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", out.Hash[:7], out.Message)
		return nil
	}
}
