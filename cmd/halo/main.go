package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/halo-agent/halo/internal"
)

// version is set via ldflags at build time
var version = "dev"

func main() {
	ctx := context.Background()

	app := newApp()
	rootCmd := NewRootCmd(version, app)
	if err := fang.Execute(ctx, rootCmd); err != nil {
		os.Exit(1)
	}
}

type app struct {
	runUC      *internal.RunUseCase
	exportUC   *internal.ExportUseCase
	snapshotUC *internal.SnapshotUseCase
	logUC      *internal.LogUseCase
	diffUC     *internal.DiffUseCase
	vibeUC     *internal.VibeUseCase
	ledgerUC   *internal.LedgerUseCase
	tiersUC    *internal.TiersUseCase
	resetUC    *internal.ResetUseCase

	providerListUC   *internal.ProviderListUseCase
	providerAddUC    *internal.ProviderAddUseCase
	providerRemoveUC *internal.ProviderRemoveUseCase
	providerSetDefUC *internal.ProviderSetDefaultUseCase
	providerTestUC   *internal.ProviderTestUseCase
}

func newApp() *app {
	resolver := internal.NewScopeResolver()

	storeFor := func(scope internal.Scope) *internal.SessionStore {
		return internal.NewSessionStore(scope)
	}
	archiveFor := func(scope internal.Scope) (*internal.SnapshotArchive, error) {
		return internal.NewSnapshotArchive(scope)
	}
	providerFor := func(ctx context.Context, scope internal.Scope) (internal.Provider, error) {
		cfg, err := internal.LoadConfig(scope)
		if err != nil {
			return nil, err
		}
		fc, err := cfg.DefaultProviderConfig()
		if err != nil {
			return nil, err
		}
		return internal.NewFantasyProvider(ctx, fc)
	}

	return &app{
		runUC:      internal.NewRunUseCase(resolver, providerFor, storeFor),
		exportUC:   internal.NewExportUseCase(resolver, storeFor),
		snapshotUC: internal.NewSnapshotUseCase(resolver, storeFor, archiveFor),
		logUC:      internal.NewLogUseCase(resolver, archiveFor),
		diffUC:     internal.NewDiffUseCase(resolver, storeFor, archiveFor),
		vibeUC:     internal.NewVibeUseCase(resolver, storeFor),
		ledgerUC:   internal.NewLedgerUseCase(resolver, storeFor),
		tiersUC:    internal.NewTiersUseCase(resolver, storeFor),
		resetUC:    internal.NewResetUseCase(resolver, storeFor),

		providerListUC:   internal.NewProviderListUseCase(resolver),
		providerAddUC:    internal.NewProviderAddUseCase(resolver),
		providerRemoveUC: internal.NewProviderRemoveUseCase(resolver),
		providerSetDefUC: internal.NewProviderSetDefaultUseCase(resolver),
		providerTestUC:   internal.NewProviderTestUseCase(resolver),
	}
}
