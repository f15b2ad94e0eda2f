package v1

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/halo-agent/halo/internal"
)

// Client provides programmatic access to the mediation pipeline and its
// session memory.
type Client struct {
	runUC      *internal.RunUseCase
	exportUC   *internal.ExportUseCase
	snapshotUC *internal.SnapshotUseCase
	logUC      *internal.LogUseCase
	vibeUC     *internal.VibeUseCase
	resetUC    *internal.ResetUseCase

	scope        string
	constitution string
}

// New creates a new Client with the given options.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	resolver := internal.NewScopeResolver()

	storeFor := func(scope internal.Scope) *internal.SessionStore {
		return internal.NewSessionStore(scope)
	}
	archiveFor := func(scope internal.Scope) (*internal.SnapshotArchive, error) {
		return internal.NewSnapshotArchive(scope)
	}
	providerFor := func(ctx context.Context, scope internal.Scope) (internal.Provider, error) {
		c, err := internal.LoadConfig(scope)
		if err != nil {
			return nil, err
		}
		fc, err := c.DefaultProviderConfig()
		if err != nil {
			return nil, err
		}
		return internal.NewFantasyProvider(ctx, fc)
	}

	return &Client{
		runUC:        internal.NewRunUseCase(resolver, providerFor, storeFor),
		exportUC:     internal.NewExportUseCase(resolver, storeFor),
		snapshotUC:   internal.NewSnapshotUseCase(resolver, storeFor, archiveFor),
		logUC:        internal.NewLogUseCase(resolver, archiveFor),
		vibeUC:       internal.NewVibeUseCase(resolver, storeFor),
		resetUC:      internal.NewResetUseCase(resolver, storeFor),
		scope:        cfg.scope,
		constitution: cfg.constitution,
	}, nil
}

// Run pipes a chat transcript through the pipeline and records the results.
func (c *Client) Run(ctx context.Context, chat string) (*Receipt, error) {
	out, err := c.runUC.Execute(ctx, internal.RunInput{
		Chat: chat, Constitution: c.constitution, Scope: c.scope,
	})
	if err != nil {
		return nil, fmt.Errorf("run: %w", err)
	}

	return &Receipt{
		Timestamp:  out.Timestamp,
		Conclusion: out.Result.ConclusionType(),
		Tension:    string(out.TensionLevel),
		Notify:     out.NotifyHint,
		Channel:    out.Result.Channel(),
		Counts:     out.Counts,
	}, nil
}

// Export returns the export document as indented JSON.
func (c *Client) Export(ctx context.Context) ([]byte, error) {
	doc, err := c.exportUC.Execute(ctx, internal.ExportInput{Scope: c.scope})
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Snapshot archives the current export document.
func (c *Client) Snapshot(ctx context.Context) (*Snapshot, error) {
	out, err := c.snapshotUC.Execute(ctx, internal.ExportInput{Scope: c.scope})
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	return &Snapshot{Hash: out.Hash, Message: out.Message, Timestamp: out.Timestamp}, nil
}

// Log lists archived snapshots, newest first.
func (c *Client) Log(ctx context.Context, limit int) ([]Snapshot, error) {
	out, err := c.logUC.Execute(ctx, internal.LogInput{Limit: limit, Scope: c.scope})
	if err != nil {
		return nil, fmt.Errorf("log: %w", err)
	}

	snapshots := make([]Snapshot, 0, len(out.Commits))
	for _, s := range out.Commits {
		snapshots = append(snapshots, Snapshot{
			Hash: s.Hash, Message: s.Message, Timestamp: s.Timestamp,
		})
	}
	return snapshots, nil
}

// Vibe returns the tension time series in chronological order.
func (c *Client) Vibe(ctx context.Context) ([]VibePoint, error) {
	out, err := c.vibeUC.Execute(ctx, c.scope)
	if err != nil {
		return nil, fmt.Errorf("vibe: %w", err)
	}

	points := make([]VibePoint, 0, len(out.Points))
	for _, p := range out.Points {
		points = append(points, VibePoint{
			Timestamp: p.TsUTC, Level: string(p.Level), Notify: p.Notify,
		})
	}
	return points, nil
}

// Reset clears the session memory.
func (c *Client) Reset(ctx context.Context) error {
	return c.resetUC.Execute(ctx, c.scope)
}

// Close releases any resources held by the client.
func (c *Client) Close() error {
	return nil
}
