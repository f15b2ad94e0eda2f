package v1

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/halo-agent/halo/internal"
)

func setupClientTest(t *testing.T) *Client {
	t.Helper()
	tmpDir := t.TempDir()

	origWd, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir: %v", err)
	}

	scope := internal.Scope{
		Type:     internal.ScopeProject,
		Path:     tmpDir,
		HaloPath: filepath.Join(tmpDir, ".halo"),
	}

	if err := os.MkdirAll(scope.HaloPath, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := internal.InitArchive(scope); err != nil {
		t.Fatalf("init archive: %v", err)
	}

	client, err := New()
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func seedSession(t *testing.T) {
	t.Helper()

	resolver := internal.NewScopeResolver()
	scope := resolver.Resolve("")
	store := internal.NewSessionStore(scope)

	mem := internal.NewSessionMemory()
	events := internal.EventSet{Events: []internal.Event{
		{Type: internal.EventTensionSignal, Level: "high", Signals: []string{"blame"}},
	}}
	result := internal.MediationResult{
		Conclusion:       internal.Conclusion{Type: "memory_mismatch", OneSentenceSummary: "recollections differ"},
		InterventionPlan: internal.InterventionPlan{ShouldNotify: true, Channel: "phone_notification"},
	}
	if err := mem.Record("2026-08-28T19:00:00Z", events, result, internal.TensionHigh); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := store.Save(mem); err != nil {
		t.Fatalf("save: %v", err)
	}
}

func TestClientExport(t *testing.T) {
	client := setupClientTest(t)
	defer client.Close()
	seedSession(t)

	data, err := client.Export(context.Background())
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("export is not JSON: %v", err)
	}
	if _, ok := doc["tier1_events_48h"]; ok {
		t.Error("export includes tier1")
	}
	if !strings.Contains(string(data), "memory_mismatch") {
		t.Error("export missing the recorded conclusion")
	}
}

func TestClientVibe(t *testing.T) {
	client := setupClientTest(t)
	defer client.Close()
	seedSession(t)

	points, err := client.Vibe(context.Background())
	if err != nil {
		t.Fatalf("vibe: %v", err)
	}
	if len(points) != 1 {
		t.Fatalf("points = %d, want 1", len(points))
	}
	if points[0].Level != "high" || !points[0].Notify {
		t.Errorf("point = %+v, want high/notify", points[0])
	}
}

func TestClientSnapshotAndLog(t *testing.T) {
	client := setupClientTest(t)
	defer client.Close()
	seedSession(t)

	ctx := context.Background()

	snap, err := client.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.Hash == "" {
		t.Error("snapshot hash is empty")
	}

	snapshots, err := client.Log(ctx, 10)
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	// Snapshot plus the init commit.
	if len(snapshots) != 2 {
		t.Errorf("snapshots = %d, want 2", len(snapshots))
	}
}

func TestClientReset(t *testing.T) {
	client := setupClientTest(t)
	defer client.Close()
	seedSession(t)

	ctx := context.Background()

	if err := client.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	points, err := client.Vibe(ctx)
	if err != nil {
		t.Fatalf("vibe: %v", err)
	}
	if len(points) != 0 {
		t.Errorf("points = %d after reset, want 0", len(points))
	}
}
