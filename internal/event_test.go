package internal

import "testing"

func TestExtractTension(t *testing.T) {
	tests := []struct {
		name       string
		events     EventSet
		wantLevel  TensionLevel
		wantNotify bool
	}{
		{
			name:       "no events",
			events:     EventSet{},
			wantLevel:  TensionUnknown,
			wantNotify: false,
		},
		{
			name: "no tension event",
			events: EventSet{Events: []Event{
				{Type: EventSpeech, Quote: "hello"},
			}},
			wantLevel:  TensionUnknown,
			wantNotify: false,
		},
		{
			name: "low level",
			events: EventSet{Events: []Event{
				{Type: EventTensionSignal, Level: "low"},
			}},
			wantLevel:  TensionLow,
			wantNotify: false,
		},
		{
			name: "rising level notifies",
			events: EventSet{Events: []Event{
				{Type: EventTensionSignal, Level: "rising"},
			}},
			wantLevel:  TensionRising,
			wantNotify: true,
		},
		{
			name: "high level notifies",
			events: EventSet{Events: []Event{
				{Type: EventTensionSignal, Level: "high"},
			}},
			wantLevel:  TensionHigh,
			wantNotify: true,
		},
		{
			name: "rapid escalation overrides low level",
			events: EventSet{Events: []Event{
				{Type: EventTensionSignal, Level: "low", Signals: []string{"sarcasm", RapidEscalation}},
			}},
			wantLevel:  TensionLow,
			wantNotify: true,
		},
		{
			name: "malformed level normalizes to unknown",
			events: EventSet{Events: []Event{
				{Type: EventTensionSignal, Level: "EXTREME"},
			}},
			wantLevel:  TensionUnknown,
			wantNotify: false,
		},
		{
			name: "first tension event wins",
			events: EventSet{Events: []Event{
				{Type: EventSpeech, Quote: "hello"},
				{Type: EventTensionSignal, Level: "low"},
				{Type: EventTensionSignal, Level: "high"},
			}},
			wantLevel:  TensionLow,
			wantNotify: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, notify := ExtractTension(tt.events)
			if level != tt.wantLevel {
				t.Errorf("level = %q, want %q", level, tt.wantLevel)
			}
			if notify != tt.wantNotify {
				t.Errorf("notify = %t, want %t", notify, tt.wantNotify)
			}
		})
	}
}
