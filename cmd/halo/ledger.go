package main

import (
	"encoding/json"
	"fmt"

	"github.com/halo-agent/halo/internal"
	"github.com/spf13/cobra"
)

func NewLedgerCmd(ledgerUC *internal.LedgerUseCase) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Show the fact-receipt ledger",
		Long:  `Show recorded mediation verdicts, newest first.`,
		RunE:  makeLedgerRunner(ledgerUC),
	}

	cmd.Flags().IntP("number", "n", 10, "Limit number of entries")
	return cmd
}

func makeLedgerRunner(ledgerUC *internal.LedgerUseCase) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		scopeHint, _ := cmd.Flags().GetString("scope")
		asJSON, _ := cmd.Flags().GetBool("json")
		limit, _ := cmd.Flags().GetInt("number")

		out, err := ledgerUC.Execute(cmd.Context(), scopeHint)
		if err != nil {
			return fmt.Errorf("get ledger: %w", err)
		}

		entries := out.Entries
		if limit > 0 && len(entries) > limit {
			entries = entries[:limit]
		}

		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		}

		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Ledger is empty.")
			return nil
		}

		for _, e := range entries {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s", e.TsUTC, e.Conclusion.Type)
			if e.InterventionPlan.ShouldNotify {
				fmt.Fprintf(cmd.OutOrStdout(), "  [notify via %s]", e.InterventionPlan.Channel)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			if s := e.Conclusion.OneSentenceSummary; s != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "    %s\n", s)
			}
		}
		return nil
	}
}
