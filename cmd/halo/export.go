package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/halo-agent/halo/internal"
	"github.com/spf13/cobra"
)

func NewExportCmd(exportUC *internal.ExportUseCase) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the session memory",
		Long:  `Assemble the export document: ledger, vibe history, tier-2 summaries, and tier-3 embeddings. Tier-1 raw events are excluded.`,
		RunE:  makeExportRunner(exportUC),
	}

	cmd.Flags().StringP("out", "o", "", "Write to file instead of stdout")
	return cmd
}

func makeExportRunner(exportUC *internal.ExportUseCase) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		scopeHint, _ := cmd.Flags().GetString("scope")
		outPath, _ := cmd.Flags().GetString("out")

		doc, err := exportUC.Execute(cmd.Context(), internal.ExportInput{Scope: scopeHint})
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}

		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal export: %w", err)
		}

		if outPath != "" {
			if err := os.WriteFile(outPath, data, 0644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", outPath)
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
}
