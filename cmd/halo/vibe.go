package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/halo-agent/halo/internal"
	"github.com/spf13/cobra"
)

func NewVibeCmd(vibeUC *internal.VibeUseCase) *cobra.Command {
	return &cobra.Command{
		Use:   "vibe",
		Short: "Show the tension history",
		Long:  `Show the tension time series, oldest first.`,
		RunE:  makeVibeRunner(vibeUC),
	}
}

func makeVibeRunner(vibeUC *internal.VibeUseCase) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		scopeHint, _ := cmd.Flags().GetString("scope")
		asJSON, _ := cmd.Flags().GetBool("json")

		out, err := vibeUC.Execute(cmd.Context(), scopeHint)
		if err != nil {
			return fmt.Errorf("get vibe history: %w", err)
		}

		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out.Points)
		}

		if len(out.Points) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded yet.")
			return nil
		}

		for _, p := range out.Points {
			marker := ""
			if p.Notify {
				marker = "  !"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %-8s %s%s\n", p.TsUTC, p.Level, vibeBar(p.Level), marker)
		}
		return nil
	}
}

func vibeBar(level internal.TensionLevel) string {
	switch level {
	case internal.TensionLow:
		return strings.Repeat("#", 1)
	case internal.TensionRising:
		return strings.Repeat("#", 3)
	case internal.TensionHigh:
		return strings.Repeat("#", 5)
	default:
		return "-"
	}
}
