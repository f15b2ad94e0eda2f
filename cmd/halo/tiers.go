package main

import (
	"encoding/json"
	"fmt"

	"github.com/halo-agent/halo/internal"
	"github.com/spf13/cobra"
)

func NewTiersCmd(tiersUC *internal.TiersUseCase) *cobra.Command {
	return &cobra.Command{
		Use:   "tiers",
		Short: "Show memory tier contents",
		Long:  `Show per-tier record counts, tier-2 summaries, and tier-3 embedding ids.`,
		RunE:  makeTiersRunner(tiersUC),
	}
}

func makeTiersRunner(tiersUC *internal.TiersUseCase) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		scopeHint, _ := cmd.Flags().GetString("scope")
		asJSON, _ := cmd.Flags().GetBool("json")

		out, err := tiersUC.Execute(cmd.Context(), scopeHint)
		if err != nil {
			return fmt.Errorf("get tiers: %w", err)
		}

		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "ledger (48h):  %d\n", out.Counts["ledger_48h"])
		fmt.Fprintf(w, "vibe (30d):    %d\n", out.Counts["vibe_history_30d"])
		fmt.Fprintf(w, "tier1 (48h):   %d\n", out.Counts["tier1_events_48h"])
		fmt.Fprintf(w, "tier2 (30d):   %d\n", out.Counts["tier2_summaries_30d"])
		fmt.Fprintf(w, "tier3 (capped): %d\n", out.Counts["tier3_embeddings"])

		if len(out.Tier2) > 0 {
			fmt.Fprintln(w, "\nTier 2 summaries:")
			for _, s := range out.Tier2 {
				fmt.Fprintf(w, "  %s  %s\n", s.TsUTC, s.Summary)
			}
		}
		if len(out.Tier3) > 0 {
			fmt.Fprintln(w, "\nTier 3 embeddings:")
			for _, e := range out.Tier3 {
				fmt.Fprintf(w, "  %s  %s  theme=%s\n", e.TsUTC, e.EmbeddingID, e.Theme)
			}
		}
		return nil
	}
}
