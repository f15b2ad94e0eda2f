package main

import (
	"github.com/spf13/cobra"
)

func NewRootCmd(version string, a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "halo",
		Short:         "Ambient mediator command center",
		Long:          `Pipe chat transcripts through perception and mediation model calls and keep the derived artifacts in a tiered, time-decaying session memory.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	addPersistentFlags(rootCmd)

	if a != nil {
		addSubcommands(rootCmd, a)
	}

	return rootCmd
}

func addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("scope", "", "Target scope (global|project)")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
}

func addSubcommands(root *cobra.Command, a *app) {
	root.AddCommand(
		NewInitCmd(),
		NewRunCmd(a.runUC),
		NewWatchCmd(a.runUC),
		NewLedgerCmd(a.ledgerUC),
		NewVibeCmd(a.vibeUC),
		NewTiersCmd(a.tiersUC),
		NewExportCmd(a.exportUC),
		NewSnapshotCmd(a.snapshotUC),
		NewLogCmd(a.logUC),
		NewDiffCmd(a.diffUC),
		NewResetCmd(a.resetUC),
		NewProviderCmd(a.providerListUC, a.providerAddUC, a.providerRemoveUC, a.providerSetDefUC, a.providerTestUC),
	)
}
