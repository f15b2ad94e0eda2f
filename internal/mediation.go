package internal

import "fmt"

// ChatEvidence is a verbatim quote from the transcript with its relevance.
type ChatEvidence struct {
	Speaker      string `json:"speaker"`
	Quote        string `json:"quote"`
	WhyItMatters string `json:"why_it_matters,omitempty"`
}

// RuleEvidence is a constitution excerpt with its relevance.
type RuleEvidence struct {
	Excerpt      string `json:"excerpt"`
	WhyItMatters string `json:"why_it_matters,omitempty"`
}

// FactReceipt collects the evidence behind a verdict.
type FactReceipt struct {
	EvidenceFromChat         []ChatEvidence `json:"evidence_from_chat,omitempty"`
	EvidenceFromConstitution []RuleEvidence `json:"evidence_from_constitution,omitempty"`
	TimeWindow               string         `json:"time_window,omitempty"`
}

// Conclusion is the verdict itself. Type is one of memory_mismatch,
// rule_mismatch, or ambiguous.
type Conclusion struct {
	Type               string  `json:"type,omitempty"`
	OneSentenceSummary string  `json:"one_sentence_summary,omitempty"`
	Confidence         float64 `json:"confidence,omitempty"`
}

// CircuitBreaker recommends cooling off before continuing the conversation.
type CircuitBreaker struct {
	RecommendPauseMinutes int    `json:"recommend_pause_minutes,omitempty"`
	WhyPause              string `json:"why_pause,omitempty"`
}

// InterventionPlan says whether and how to interrupt.
type InterventionPlan struct {
	ShouldNotify   bool            `json:"should_notify"`
	NotifyTarget   string          `json:"notify_target,omitempty"`
	Channel        string          `json:"channel,omitempty"`
	Message        string          `json:"message,omitempty"`
	CircuitBreaker *CircuitBreaker `json:"circuit_breaker,omitempty"`
}

// MediationResult is the full output of one mediation call.
type MediationResult struct {
	FactReceipt      FactReceipt      `json:"fact_receipt"`
	Conclusion       Conclusion       `json:"conclusion"`
	InterventionPlan InterventionPlan `json:"intervention_plan"`
}

// ConclusionType returns the verdict type, "unknown" when the model omitted
// it.
func (r MediationResult) ConclusionType() string {
	if r.Conclusion.Type == "" {
		return "unknown"
	}
	return r.Conclusion.Type
}

// Channel returns the notification channel, "none" when the model omitted it.
func (r MediationResult) Channel() string {
	if r.InterventionPlan.Channel == "" {
		return "none"
	}
	return r.InterventionPlan.Channel
}

// SummaryLine renders the one-line digest stored as the tier-2 summary.
func (r MediationResult) SummaryLine() string {
	return fmt.Sprintf("%s: %s | notify=%t via %s",
		r.ConclusionType(),
		r.Conclusion.OneSentenceSummary,
		r.InterventionPlan.ShouldNotify,
		r.Channel(),
	)
}
