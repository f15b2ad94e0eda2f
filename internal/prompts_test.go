package internal

import (
	"strings"
	"testing"
)

func TestPerceptionPrompt(t *testing.T) {
	prompt := PerceptionPrompt("A: hello\nB: hi", "- be kind", "two-bedroom flat", ModeDemoMock)

	for _, want := range []string{"A: hello", "- be kind", "two-bedroom flat", "Mode: demo_mock"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestPerceptionPromptDefaultsMode(t *testing.T) {
	prompt := PerceptionPrompt("chat", "rules", "", "")
	if !strings.Contains(prompt, "Mode: conservative") {
		t.Error("empty mode should default to conservative")
	}
}

func TestMediatorPromptEmbedsEvents(t *testing.T) {
	events := EventSet{Events: []Event{
		{Type: EventSpeech, Speaker: "A", Quote: "you never listen"},
	}}

	prompt := MediatorPrompt(events, "- assume good intent")

	if !strings.Contains(prompt, `"you never listen"`) {
		t.Error("prompt missing event quote")
	}
	if !strings.Contains(prompt, "- assume good intent") {
		t.Error("prompt missing constitution")
	}
}
