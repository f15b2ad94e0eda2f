package internal

// Event types produced by the perception stage.
const (
	EventSpeech        = "SpeechEvent"
	EventSensor        = "SensorEvent"
	EventTensionSignal = "TensionSignalEvent"
	EventRuleContext   = "RuleContextEvent"
)

// RapidEscalation in a tension event's signal list forces the notify hint
// regardless of level.
const RapidEscalation = "rapid_escalation"

// TensionLevel is the perceived escalation level of a conversation.
type TensionLevel string

const (
	TensionLow     TensionLevel = "low"
	TensionRising  TensionLevel = "rising"
	TensionHigh    TensionLevel = "high"
	TensionUnknown TensionLevel = "unknown"
)

// ThoughtSignature annotates a speech event with the speaker's inferred
// intent.
type ThoughtSignature struct {
	Intent       string   `json:"intent,omitempty"`
	TopicTags    []string `json:"topic_tags,omitempty"`
	ImplicitNeed string   `json:"implicit_need,omitempty"`
}

// Event is one perceived event. Type selects which field group is populated;
// the rest stay empty and are omitted on the wire.
type Event struct {
	Type string `json:"type"`

	// SpeechEvent
	TsHint           string            `json:"ts_hint,omitempty"`
	Speaker          string            `json:"speaker,omitempty"`
	Quote            string            `json:"quote,omitempty"`
	ThoughtSignature *ThoughtSignature `json:"thought_signature,omitempty"`

	// SensorEvent
	Source      string  `json:"source,omitempty"`
	Signal      string  `json:"signal,omitempty"`
	Severity    int     `json:"severity,omitempty"`
	Explanation string  `json:"explanation,omitempty"`
	Confidence  float64 `json:"confidence,omitempty"`

	// TensionSignalEvent
	Level   string   `json:"level,omitempty"`
	Signals []string `json:"signals,omitempty"`

	// RuleContextEvent
	MatchedRules  []string `json:"matched_rules,omitempty"`
	WhyTheseRules string   `json:"why_these_rules,omitempty"`
}

// EventNotes carries the perception stage's self-description of the run.
type EventNotes struct {
	WhatIsSimulated  string `json:"what_is_simulated,omitempty"`
	PrivacyStatement string `json:"privacy_statement,omitempty"`
}

// EventSet is the full output of one perception call.
type EventSet struct {
	Events []Event    `json:"events"`
	Notes  EventNotes `json:"notes,omitempty"`
}

// ExtractTension reads the first tension signal event out of the set. The
// notify hint fires on a rising or high level, or on a rapid-escalation
// signal at any level. An absent or malformed tension event yields
// (unknown, false).
func ExtractTension(events EventSet) (TensionLevel, bool) {
	for _, ev := range events.Events {
		if ev.Type != EventTensionSignal {
			continue
		}

		level := normalizeTension(ev.Level)
		notify := level == TensionRising || level == TensionHigh
		for _, sig := range ev.Signals {
			if sig == RapidEscalation {
				notify = true
				break
			}
		}
		return level, notify
	}
	return TensionUnknown, false
}

func normalizeTension(level string) TensionLevel {
	switch TensionLevel(level) {
	case TensionLow, TensionRising, TensionHigh:
		return TensionLevel(level)
	default:
		return TensionUnknown
	}
}
