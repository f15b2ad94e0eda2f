package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/halo-agent/halo/internal"
	"github.com/spf13/cobra"
)

func NewRunCmd(runUC *internal.RunUseCase) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [transcript-file]",
		Short: "Run the mediation pipeline on a transcript",
		Long:  `Read a chat transcript (file argument or stdin), run perception and mediation, and record the derived artifacts.`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  makeRunRunner(runUC),
	}

	cmd.Flags().String("constitution", "", "Constitution file (default: scope constitution)")
	return cmd
}

func makeRunRunner(runUC *internal.RunUseCase) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		scopeHint, _ := cmd.Flags().GetString("scope")
		asJSON, _ := cmd.Flags().GetBool("json")
		constitutionPath, _ := cmd.Flags().GetString("constitution")

		chat, err := readTranscript(cmd, args)
		if err != nil {
			return err
		}

		constitution := ""
		if constitutionPath != "" {
			data, err := os.ReadFile(constitutionPath)
			if err != nil {
				return fmt.Errorf("read constitution: %w", err)
			}
			constitution = string(data)
		}

		out, err := runUC.Execute(cmd.Context(), internal.RunInput{
			Chat: chat, Constitution: constitution, Scope: scopeHint,
		})
		if err != nil {
			return fmt.Errorf("run pipeline: %w", err)
		}

		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		printRunReceipt(cmd, out)
		return nil
	}
}

func readTranscript(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read transcript: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func printRunReceipt(cmd *cobra.Command, out *internal.RunOutput) {
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "Run recorded at %s\n\n", out.Timestamp)
	fmt.Fprintf(w, "Conclusion: %s (%.2f)\n", out.Result.ConclusionType(), out.Result.Conclusion.Confidence)
	if s := out.Result.Conclusion.OneSentenceSummary; s != "" {
		fmt.Fprintf(w, "  %s\n", s)
	}
	fmt.Fprintf(w, "Tension:    %s (notify hint: %t)\n", out.TensionLevel, out.NotifyHint)
	fmt.Fprintf(w, "Rules:      %d constitution rules in scope\n", len(out.Rules))
	fmt.Fprintf(w, "Notify:     %t via %s\n", out.Result.InterventionPlan.ShouldNotify, out.Result.Channel())
	if msg := out.Result.InterventionPlan.Message; msg != "" {
		fmt.Fprintf(w, "  %s\n", msg)
	}

	fmt.Fprintf(w, "\nEvidence from chat:\n")
	for _, ev := range out.Result.FactReceipt.EvidenceFromChat {
		fmt.Fprintf(w, "  %s: %q\n", ev.Speaker, ev.Quote)
	}
	fmt.Fprintf(w, "\nCollections: ledger=%d vibe=%d tier1=%d tier2=%d tier3=%d\n",
		out.Counts["ledger_48h"],
		out.Counts["vibe_history_30d"],
		out.Counts["tier1_events_48h"],
		out.Counts["tier2_summaries_30d"],
		out.Counts["tier3_embeddings"],
	)
}
