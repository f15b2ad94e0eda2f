package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/halo-agent/halo/internal"
	"github.com/spf13/cobra"
)

func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new session scope",
		Long:  `Initialize a .halo directory with a default config, constitution, and snapshot archive.`,
		RunE:  runInit,
	}

	cmd.Flags().Bool("global", false, "Initialize global scope (~/.halo)")
	return cmd
}

func runInit(cmd *cobra.Command, _ []string) error {
	isGlobal, _ := cmd.Flags().GetBool("global")

	resolver := internal.NewScopeResolver()

	var scope internal.Scope
	if isGlobal {
		scope = resolver.Global()
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		scope = internal.Scope{
			Type:     internal.ScopeProject,
			Path:     cwd,
			HaloPath: filepath.Join(cwd, ".halo"),
		}
	}

	if _, err := os.Stat(scope.HaloPath); err == nil {
		return fmt.Errorf("already initialized at %s", scope.HaloPath)
	}

	if err := os.MkdirAll(scope.HaloPath, 0755); err != nil {
		return fmt.Errorf("create .halo directory: %w", err)
	}

	if err := internal.InitArchive(scope); err != nil {
		return fmt.Errorf("init archive: %w", err)
	}

	cfg := internal.DefaultConfig()
	if err := internal.SaveConfig(scope, cfg); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	if err := os.WriteFile(scope.ConstitutionPath(), []byte(internal.DefaultConstitution), 0644); err != nil {
		return fmt.Errorf("write constitution: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized session scope at %s\n", scope.HaloPath)
	return nil
}
