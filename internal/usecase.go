package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// DefaultConstitution is used when the scope has no constitution file.
const DefaultConstitution = `# Household Constitution (Draft)
- "Trash Day" means checking ALL bins: kitchen, bathroom, bedroom, office.
- If someone says "take out the trash", it includes the bathroom bin unless specified otherwise.
- No serious talks while physiologically stressed (pause 5 minutes, then resume).
- When requesting help, use clear task specs: which room(s), by what time.
- Assume good intent; ask one clarifying question before blaming.
`

// Use case input/output DTOs

type RunInput struct {
	Chat         string
	Constitution string // empty: scope constitution file, then the default
	Scope        string
}

type RunOutput struct {
	Timestamp    string
	Events       EventSet
	Result       MediationResult
	TensionLevel TensionLevel
	NotifyHint   bool
	Rules        []string
	Counts       map[string]int
}

type ExportInput struct {
	Scope string
}

type SnapshotOutput struct {
	Hash      string
	Message   string
	Timestamp time.Time
}

type LogInput struct {
	Limit int
	Scope string
}

type LogOutput struct {
	Commits []SnapshotOutput
}

type VibeOutput struct {
	Points []VibePoint
}

type LedgerOutput struct {
	Entries []LedgerEntry
}

type TiersOutput struct {
	Counts map[string]int
	Tier2  []Tier2Summary
	Tier3  []Tier3Embedding
}

// RunUseCase executes one full pipeline pass: perception, mediation, tension
// extraction, artifact recording, retention.
type RunUseCase struct {
	resolver    *ScopeResolver
	providerFor func(ctx context.Context, scope Scope) (Provider, error)
	storeFor    func(Scope) *SessionStore
}

func NewRunUseCase(
	resolver *ScopeResolver,
	providerFor func(ctx context.Context, scope Scope) (Provider, error),
	storeFor func(Scope) *SessionStore,
) *RunUseCase {
	return &RunUseCase{
		resolver:    resolver,
		providerFor: providerFor,
		storeFor:    storeFor,
	}
}

func (uc *RunUseCase) Execute(ctx context.Context, input RunInput) (*RunOutput, error) {
	scope := uc.resolver.Resolve(input.Scope)

	cfg, err := LoadConfig(scope)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	constitution := input.Constitution
	if constitution == "" {
		constitution = loadConstitution(scope)
	}

	provider, err := uc.providerFor(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("get provider: %w", err)
	}

	events, err := NewPerceptionService(provider).Perceive(ctx, input.Chat, constitution, cfg.Pipeline.ContextNotes, cfg.Pipeline.Mode)
	if err != nil {
		return nil, err
	}

	result, err := NewMediatorService(provider).Mediate(ctx, events, constitution)
	if err != nil {
		return nil, err
	}

	level, notifyHint := ExtractTension(events)

	store := uc.storeFor(scope)
	mem, err := store.Load()
	if err != nil {
		return nil, err
	}

	ts := UTCNowISO()
	if err := mem.Record(ts, events, result, level); err != nil {
		return nil, err
	}
	mem.ApplyRetention()

	if err := store.Save(mem); err != nil {
		return nil, err
	}

	return &RunOutput{
		Timestamp:    ts,
		Events:       events,
		Result:       result,
		TensionLevel: level,
		NotifyHint:   notifyHint,
		Rules:        ParseConstitutionRules(constitution),
		Counts:       mem.Counts(),
	}, nil
}

func loadConstitution(scope Scope) string {
	data, err := os.ReadFile(scope.ConstitutionPath())
	if err != nil || len(data) == 0 {
		return DefaultConstitution
	}
	return string(data)
}

// ExportUseCase assembles the export document from the persisted session.
type ExportUseCase struct {
	resolver *ScopeResolver
	storeFor func(Scope) *SessionStore
}

func NewExportUseCase(resolver *ScopeResolver, storeFor func(Scope) *SessionStore) *ExportUseCase {
	return &ExportUseCase{resolver: resolver, storeFor: storeFor}
}

func (uc *ExportUseCase) Execute(ctx context.Context, input ExportInput) (ExportDocument, error) {
	mem, err := uc.storeFor(uc.resolver.Resolve(input.Scope)).Load()
	if err != nil {
		return ExportDocument{}, err
	}
	return mem.Export(), nil
}

// SnapshotUseCase commits the current export document into the archive.
type SnapshotUseCase struct {
	resolver   *ScopeResolver
	storeFor   func(Scope) *SessionStore
	archiveFor func(Scope) (*SnapshotArchive, error)
}

func NewSnapshotUseCase(
	resolver *ScopeResolver,
	storeFor func(Scope) *SessionStore,
	archiveFor func(Scope) (*SnapshotArchive, error),
) *SnapshotUseCase {
	return &SnapshotUseCase{resolver: resolver, storeFor: storeFor, archiveFor: archiveFor}
}

func (uc *SnapshotUseCase) Execute(ctx context.Context, input ExportInput) (*SnapshotOutput, error) {
	scope := uc.resolver.Resolve(input.Scope)

	mem, err := uc.storeFor(scope).Load()
	if err != nil {
		return nil, err
	}

	doc, err := json.MarshalIndent(mem.Export(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}

	archive, err := uc.archiveFor(scope)
	if err != nil {
		return nil, err
	}

	commit, err := archive.CommitSnapshot(ctx, doc, UTCNowISO())
	if err != nil {
		return nil, err
	}

	return &SnapshotOutput{
		Hash:      commit.Hash,
		Message:   commit.Message,
		Timestamp: commit.Timestamp,
	}, nil
}

// LogUseCase lists archived snapshots.
type LogUseCase struct {
	resolver   *ScopeResolver
	archiveFor func(Scope) (*SnapshotArchive, error)
}

func NewLogUseCase(resolver *ScopeResolver, archiveFor func(Scope) (*SnapshotArchive, error)) *LogUseCase {
	return &LogUseCase{resolver: resolver, archiveFor: archiveFor}
}

func (uc *LogUseCase) Execute(ctx context.Context, input LogInput) (*LogOutput, error) {
	archive, err := uc.archiveFor(uc.resolver.Resolve(input.Scope))
	if err != nil {
		return nil, err
	}

	commits, err := archive.Log(ctx, input.Limit)
	if err != nil {
		return nil, err
	}

	out := &LogOutput{}
	for _, c := range commits {
		out.Commits = append(out.Commits, SnapshotOutput{
			Hash:      c.Hash,
			Message:   c.Message,
			Timestamp: c.Timestamp,
		})
	}
	return out, nil
}

// DiffUseCase diffs the current export against the last archived snapshot.
type DiffUseCase struct {
	resolver   *ScopeResolver
	storeFor   func(Scope) *SessionStore
	archiveFor func(Scope) (*SnapshotArchive, error)
}

func NewDiffUseCase(
	resolver *ScopeResolver,
	storeFor func(Scope) *SessionStore,
	archiveFor func(Scope) (*SnapshotArchive, error),
) *DiffUseCase {
	return &DiffUseCase{resolver: resolver, storeFor: storeFor, archiveFor: archiveFor}
}

func (uc *DiffUseCase) Execute(ctx context.Context, input ExportInput) (string, error) {
	scope := uc.resolver.Resolve(input.Scope)

	mem, err := uc.storeFor(scope).Load()
	if err != nil {
		return "", err
	}

	doc, err := json.MarshalIndent(mem.Export(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal export: %w", err)
	}

	archive, err := uc.archiveFor(scope)
	if err != nil {
		return "", err
	}

	return archive.DiffSnapshot(ctx, string(doc))
}

// VibeUseCase returns the tension time series.
type VibeUseCase struct {
	resolver *ScopeResolver
	storeFor func(Scope) *SessionStore
}

func NewVibeUseCase(resolver *ScopeResolver, storeFor func(Scope) *SessionStore) *VibeUseCase {
	return &VibeUseCase{resolver: resolver, storeFor: storeFor}
}

func (uc *VibeUseCase) Execute(ctx context.Context, scopeHint string) (*VibeOutput, error) {
	mem, err := uc.storeFor(uc.resolver.Resolve(scopeHint)).Load()
	if err != nil {
		return nil, err
	}
	return &VibeOutput{Points: append([]VibePoint(nil), mem.VibeHistory...)}, nil
}

// LedgerUseCase returns the fact-receipt ledger, newest first.
type LedgerUseCase struct {
	resolver *ScopeResolver
	storeFor func(Scope) *SessionStore
}

func NewLedgerUseCase(resolver *ScopeResolver, storeFor func(Scope) *SessionStore) *LedgerUseCase {
	return &LedgerUseCase{resolver: resolver, storeFor: storeFor}
}

func (uc *LedgerUseCase) Execute(ctx context.Context, scopeHint string) (*LedgerOutput, error) {
	mem, err := uc.storeFor(uc.resolver.Resolve(scopeHint)).Load()
	if err != nil {
		return nil, err
	}
	return &LedgerOutput{Entries: append([]LedgerEntry(nil), mem.Ledger...)}, nil
}

// TiersUseCase reports tier sizes and the longer-lived tier contents.
type TiersUseCase struct {
	resolver *ScopeResolver
	storeFor func(Scope) *SessionStore
}

func NewTiersUseCase(resolver *ScopeResolver, storeFor func(Scope) *SessionStore) *TiersUseCase {
	return &TiersUseCase{resolver: resolver, storeFor: storeFor}
}

func (uc *TiersUseCase) Execute(ctx context.Context, scopeHint string) (*TiersOutput, error) {
	mem, err := uc.storeFor(uc.resolver.Resolve(scopeHint)).Load()
	if err != nil {
		return nil, err
	}
	return &TiersOutput{
		Counts: mem.Counts(),
		Tier2:  append([]Tier2Summary(nil), mem.Tier2...),
		Tier3:  append([]Tier3Embedding(nil), mem.Tier3...),
	}, nil
}

// ResetUseCase clears the persisted session.
type ResetUseCase struct {
	resolver *ScopeResolver
	storeFor func(Scope) *SessionStore
}

func NewResetUseCase(resolver *ScopeResolver, storeFor func(Scope) *SessionStore) *ResetUseCase {
	return &ResetUseCase{resolver: resolver, storeFor: storeFor}
}

func (uc *ResetUseCase) Execute(ctx context.Context, scopeHint string) error {
	return uc.storeFor(uc.resolver.Resolve(scopeHint)).Reset()
}

// Provider management use cases

type ProviderInput struct {
	Name   string
	Scope  string
	Config ProviderConfig
}

type ProviderListUseCase struct {
	resolver *ScopeResolver
}

func NewProviderListUseCase(resolver *ScopeResolver) *ProviderListUseCase {
	return &ProviderListUseCase{resolver: resolver}
}

func (uc *ProviderListUseCase) Execute(input ProviderInput) ([]string, error) {
	cfg, err := LoadConfig(uc.resolver.Resolve(input.Scope))
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(cfg.Providers))
	for name := range cfg.Providers {
		names = append(names, name)
	}
	return names, nil
}

type ProviderAddUseCase struct {
	resolver *ScopeResolver
}

func NewProviderAddUseCase(resolver *ScopeResolver) *ProviderAddUseCase {
	return &ProviderAddUseCase{resolver: resolver}
}

func (uc *ProviderAddUseCase) Execute(input ProviderInput) error {
	scope := uc.resolver.Resolve(input.Scope)
	cfg, err := LoadConfig(scope)
	if err != nil {
		return err
	}

	cfg.Providers[input.Name] = input.Config
	return SaveConfig(scope, cfg)
}

type ProviderRemoveUseCase struct {
	resolver *ScopeResolver
}

func NewProviderRemoveUseCase(resolver *ScopeResolver) *ProviderRemoveUseCase {
	return &ProviderRemoveUseCase{resolver: resolver}
}

func (uc *ProviderRemoveUseCase) Execute(input ProviderInput) error {
	scope := uc.resolver.Resolve(input.Scope)
	cfg, err := LoadConfig(scope)
	if err != nil {
		return err
	}

	delete(cfg.Providers, input.Name)
	return SaveConfig(scope, cfg)
}

type ProviderSetDefaultUseCase struct {
	resolver *ScopeResolver
}

func NewProviderSetDefaultUseCase(resolver *ScopeResolver) *ProviderSetDefaultUseCase {
	return &ProviderSetDefaultUseCase{resolver: resolver}
}

func (uc *ProviderSetDefaultUseCase) Execute(input ProviderInput) error {
	scope := uc.resolver.Resolve(input.Scope)
	cfg, err := LoadConfig(scope)
	if err != nil {
		return err
	}

	if _, exists := cfg.Providers[input.Name]; !exists {
		return fmt.Errorf("provider %q not found", input.Name)
	}

	cfg.DefaultProvider = input.Name
	return SaveConfig(scope, cfg)
}

type ProviderTestUseCase struct {
	resolver *ScopeResolver
}

func NewProviderTestUseCase(resolver *ScopeResolver) *ProviderTestUseCase {
	return &ProviderTestUseCase{resolver: resolver}
}

func (uc *ProviderTestUseCase) Execute(ctx context.Context, input ProviderInput) error {
	cfg, err := LoadConfig(uc.resolver.Resolve(input.Scope))
	if err != nil {
		return err
	}

	providerCfg, exists := cfg.Providers[input.Name]
	if !exists {
		return fmt.Errorf("provider %q not found", input.Name)
	}

	provider, err := NewFantasyProvider(ctx, FantasyConfig{
		Provider: input.Name,
		APIKey:   providerCfg.APIKey,
		BaseURL:  providerCfg.BaseURL,
		Model:    providerCfg.Model,
	})
	if err != nil {
		return fmt.Errorf("create provider: %w", err)
	}

	_, err = provider.Complete(ctx, "Say hello")
	return err
}
