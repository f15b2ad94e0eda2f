package internal

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

const (
	// PrivacyNote is attached to every ledger entry.
	PrivacyNote = "Stored derived evidence only (quotes + constitution excerpts). No raw audio/video."

	// PrivacyStatement is attached to every export document.
	PrivacyStatement = "This demo stores derived events and receipts. It does not store raw audio/video or face identity."
)

// Retention policy. Age windows are checked against record timestamps, caps
// against collection length after age filtering.
const (
	LedgerMaxAge = 48 * time.Hour
	Tier1MaxAge  = 48 * time.Hour
	VibeMaxAge   = 30 * 24 * time.Hour
	Tier2MaxAge  = 30 * 24 * time.Hour

	LedgerCap = 200
	Tier1Cap  = 200
	VibeCap   = 2000
	Tier2Cap  = 500
	Tier3Cap  = 2000
)

// LedgerEntry is one mediation verdict with its evidence, newest first.
type LedgerEntry struct {
	TsUTC            string           `json:"ts_utc"`
	FactReceipt      FactReceipt      `json:"fact_receipt"`
	Conclusion       Conclusion       `json:"conclusion"`
	InterventionPlan InterventionPlan `json:"intervention_plan"`
	PrivacyNote      string           `json:"privacy_note"`
}

// VibePoint is one sample of the tension time series, chronological order.
type VibePoint struct {
	TsUTC  string       `json:"ts_utc"`
	Level  TensionLevel `json:"level"`
	Notify bool         `json:"notify"`
}

// Tier1Record holds the raw perception events of one run. Most ephemeral tier.
type Tier1Record struct {
	TsUTC  string   `json:"ts_utc"`
	Events EventSet `json:"events"`
}

// Tier2Summary is the one-line digest of one run.
type Tier2Summary struct {
	TsUTC          string `json:"ts_utc"`
	Summary        string `json:"summary"`
	ConclusionType string `json:"conclusion_type"`
}

// Tier3Embedding references a tier-2 summary by content fingerprint.
// Theme equals the summary's conclusion type at creation.
type Tier3Embedding struct {
	TsUTC       string `json:"ts_utc"`
	EmbeddingID string `json:"embedding_id"`
	Theme       string `json:"theme"`
}

// SessionMemory holds the five session collections. The pipeline has a single
// writer; the mutex covers readers overlapping with the watch command
// re-running the pipeline.
type SessionMemory struct {
	mu sync.Mutex

	Ledger      []LedgerEntry    `json:"ledger_48h"`
	VibeHistory []VibePoint      `json:"vibe_history_30d"`
	Tier1       []Tier1Record    `json:"tier1_events_48h"`
	Tier2       []Tier2Summary   `json:"tier2_summaries_30d"`
	Tier3       []Tier3Embedding `json:"tier3_embeddings"`
}

func NewSessionMemory() *SessionMemory {
	return &SessionMemory{}
}

// UTCNowISO returns the current instant as UTC RFC3339 with whole seconds.
func UTCNowISO() string {
	return FormatTimestamp(time.Now())
}

// FormatTimestamp renders a timestamp the way every collection stores it.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(time.RFC3339)
}

// ParseTimestamp parses a collection timestamp. Callers treat an error as
// "keep the record" (fail open).
func ParseTimestamp(ts string) (time.Time, error) {
	return time.Parse(time.RFC3339, ts)
}

// Record appends exactly one record to each of the five collections for one
// completed run. Missing sub-payloads of the mediation result stay zero-valued
// rather than failing the run; the only error path is tier-2 serialization,
// which indicates a broken summary model upstream.
func (m *SessionMemory) Record(ts string, events EventSet, result MediationResult, level TensionLevel) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := LedgerEntry{
		TsUTC:            ts,
		FactReceipt:      result.FactReceipt,
		Conclusion:       result.Conclusion,
		InterventionPlan: result.InterventionPlan,
		PrivacyNote:      PrivacyNote,
	}
	m.Ledger = append([]LedgerEntry{entry}, m.Ledger...)

	// Chronological tail-append: the vibe history is consumed as a time
	// series, unlike the newest-first tiers.
	m.VibeHistory = append(m.VibeHistory, VibePoint{
		TsUTC:  ts,
		Level:  level,
		Notify: result.InterventionPlan.ShouldNotify,
	})

	m.Tier1 = append([]Tier1Record{{TsUTC: ts, Events: events}}, m.Tier1...)

	t2 := Tier2Summary{
		TsUTC:          ts,
		Summary:        result.SummaryLine(),
		ConclusionType: result.ConclusionType(),
	}
	m.Tier2 = append([]Tier2Summary{t2}, m.Tier2...)

	payload, err := json.Marshal(t2)
	if err != nil {
		return fmt.Errorf("serialize tier2 summary: %w", err)
	}
	m.Tier3 = append([]Tier3Embedding{{
		TsUTC:       ts,
		EmbeddingID: DeriveID(payload),
		Theme:       t2.ConclusionType,
	}}, m.Tier3...)

	return nil
}

// ApplyRetention prunes all five collections in place, preserving the
// relative order of survivors. Records with unparsable timestamps are kept.
// Caps always keep the most recent entries: head truncation for the
// newest-first collections, tail truncation for the chronological vibe
// history.
func (m *SessionMemory) ApplyRetention() {
	m.applyRetentionAt(time.Now())
}

func (m *SessionMemory) applyRetentionAt(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Ledger = capHead(pruneByAge(m.Ledger, now, LedgerMaxAge, func(e LedgerEntry) string { return e.TsUTC }), LedgerCap)
	m.Tier1 = capHead(pruneByAge(m.Tier1, now, Tier1MaxAge, func(r Tier1Record) string { return r.TsUTC }), Tier1Cap)
	m.VibeHistory = capTail(pruneByAge(m.VibeHistory, now, VibeMaxAge, func(v VibePoint) string { return v.TsUTC }), VibeCap)
	m.Tier2 = capHead(pruneByAge(m.Tier2, now, Tier2MaxAge, func(s Tier2Summary) string { return s.TsUTC }), Tier2Cap)

	// Tier 3 never ages out, it is only capped.
	m.Tier3 = capHead(m.Tier3, Tier3Cap)
}

func pruneByAge[T any](items []T, now time.Time, window time.Duration, ts func(T) string) []T {
	cutoff := now.UTC().Add(-window)
	kept := items[:0:len(items)]
	for _, it := range items {
		t, err := ParseTimestamp(ts(it))
		if err != nil || !t.Before(cutoff) {
			kept = append(kept, it)
		}
	}
	return kept
}

func capHead[T any](items []T, max int) []T {
	if len(items) > max {
		return items[:max]
	}
	return items
}

func capTail[T any](items []T, max int) []T {
	if len(items) > max {
		return items[len(items)-max:]
	}
	return items
}

// ExportDocument is the serializable view of the longer-lived collections.
// Tier-1 raw events are deliberately absent: their retention is shortest and
// their content is the most sensitive.
type ExportDocument struct {
	Ledger           []LedgerEntry    `json:"ledger_48h"`
	VibeHistory      []VibePoint      `json:"vibe_history_30d"`
	Tier2            []Tier2Summary   `json:"tier2_summaries_30d"`
	Tier3            []Tier3Embedding `json:"tier3_embeddings"`
	PrivacyStatement string           `json:"privacy_statement"`
}

// Export assembles the exportable view of the session. Pure read.
func (m *SessionMemory) Export() ExportDocument {
	m.mu.Lock()
	defer m.mu.Unlock()

	return ExportDocument{
		Ledger:           append([]LedgerEntry(nil), m.Ledger...),
		VibeHistory:      append([]VibePoint(nil), m.VibeHistory...),
		Tier2:            append([]Tier2Summary(nil), m.Tier2...),
		Tier3:            append([]Tier3Embedding(nil), m.Tier3...),
		PrivacyStatement: PrivacyStatement,
	}
}

// Reset clears all five collections.
func (m *SessionMemory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Ledger = nil
	m.VibeHistory = nil
	m.Tier1 = nil
	m.Tier2 = nil
	m.Tier3 = nil
}

// Counts reports per-collection sizes for status output.
func (m *SessionMemory) Counts() map[string]int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return map[string]int{
		"ledger_48h":          len(m.Ledger),
		"vibe_history_30d":    len(m.VibeHistory),
		"tier1_events_48h":    len(m.Tier1),
		"tier2_summaries_30d": len(m.Tier2),
		"tier3_embeddings":    len(m.Tier3),
	}
}
