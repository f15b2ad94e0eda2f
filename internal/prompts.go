package internal

import (
	"encoding/json"
	"fmt"
)

// Perception modes. Conservative keeps sensor events minimal, demo mode may
// enrich the scene with plausible ones.
const (
	ModeConservative = "conservative"
	ModeDemoMock     = "demo_mock"
)

const perceptionPromptTemplate = `You are the Perception Layer of an ambient home AI ("HALO").
Your job: convert chat + constitution + context into structured events a real system could produce.

This is a DEMO. Do NOT invent sensitive personal data (no names, addresses, health diagnoses).
Do not produce therapy. Be neutral.

Constitution (shared rules/values):
"""%s"""

Optional context (home setup / devices / scenario):
"""%s"""

Chat history:
"""%s"""

Output STRICT JSON only, schema:
{
  "events": [
    {
      "type": "SpeechEvent",
      "ts_hint": "e.g., 7:00pm or unknown",
      "speaker": "A|B|unknown",
      "quote": "verbatim quote from chat",
      "thought_signature": {
        "intent": "request|complaint|defense|clarify|boundary|repair_attempt|other",
        "topic_tags": ["chores","time","tone","fairness","respect","money","family","other"],
        "implicit_need": "short neutral phrase"
      }
    },
    {
      "type": "SensorEvent",
      "source": "watch|camera|microphone|environment",
      "signal": "hrv_spike|volume_spike|door_slam|cabinet_slam|silence_withdrawal|other",
      "severity": 0,
      "explanation": "1 neutral sentence",
      "confidence": 0.0
    },
    {
      "type": "TensionSignalEvent",
      "level": "low|rising|high",
      "signals": ["absolute_language","blame","sarcasm","rapid_escalation","exclamation","questioning","interruptions"],
      "explanation": "1 neutral sentence"
    },
    {
      "type": "RuleContextEvent",
      "matched_rules": ["short excerpt rule 1", "short excerpt rule 2"],
      "why_these_rules": "1 sentence"
    }
  ],
  "notes": {
    "what_is_simulated": "1 sentence",
    "privacy_statement": "1 sentence: store only derived events, not raw media"
  }
}

Rules:
- Include 3-10 SpeechEvent items. Quotes MUST appear in chat.
- Include 0-5 SensorEvent items.
- Include exactly 1 TensionSignalEvent.
- Include 1 RuleContextEvent that references the constitution text (short excerpts).
- If mode is "conservative": keep SensorEvent minimal and use 'confidence' lower.
- If mode is "demo_mock": you may add plausible SensorEvent to enrich the scene, but never claim certainty.
- Output JSON only. No markdown. No extra text.

Mode: %s
`

const mediatorPromptTemplate = `You are the Mediator / Reasoning Engine of HALO (ambient home AI).
Goal: reduce "he said / she said" by producing an objective, evidence-based receipt.
This is NOT therapy. No diagnosis. No moral judgment.

Constitution (shared rules/values):
"""%s"""

Perception events (structured, simulated):
"""%s"""

Produce a verdict with:
- fact_receipt: evidence_from_chat (verbatim SpeechEvent quotes with speaker and why_it_matters),
  evidence_from_constitution (short rule excerpts with why_it_matters), and a time_window.
- conclusion: type one of memory_mismatch|rule_mismatch|ambiguous, a neutral one_sentence_summary,
  and a confidence between 0 and 1.
- intervention_plan: should_notify, notify_target (A|B|both), channel
  (watch_haptic|speaker_voice|phone_notification|none), a 1-2 sentence message,
  and an optional circuit_breaker (recommend_pause_minutes, why_pause).

Quotes must come verbatim from the events. Keep every text field short and neutral.
`

// PerceptionPrompt builds the stage-1 prompt from the transcript and shared
// context.
func PerceptionPrompt(chat, constitution, contextNotes, mode string) string {
	if mode == "" {
		mode = ModeConservative
	}
	return fmt.Sprintf(perceptionPromptTemplate, constitution, contextNotes, chat, mode)
}

// MediatorPrompt builds the stage-2 prompt from the perception output.
func MediatorPrompt(events EventSet, constitution string) string {
	eventsJSON, err := json.Marshal(events)
	if err != nil {
		// EventSet is plain data; this cannot happen in practice.
		eventsJSON = []byte("{}")
	}
	return fmt.Sprintf(mediatorPromptTemplate, constitution, string(eventsJSON))
}
