package internal

import (
	"context"
	"fmt"
)

// PerceptionService runs the stage-1 model call: transcript in, structured
// events out.
type PerceptionService struct {
	provider Provider
}

func NewPerceptionService(provider Provider) *PerceptionService {
	return &PerceptionService{provider: provider}
}

// Perceive converts a chat transcript into an event set. The model is asked
// for strict JSON but its output is decoded leniently: undecodable output
// yields an empty event set, not an error, so the run can still be recorded
// with defaults.
func (s *PerceptionService) Perceive(ctx context.Context, chat, constitution, contextNotes, mode string) (EventSet, error) {
	if s.provider == nil {
		return EventSet{}, fmt.Errorf("provider not available")
	}

	prompt := PerceptionPrompt(chat, constitution, contextNotes, mode)

	text, err := s.provider.Complete(ctx, prompt)
	if err != nil {
		return EventSet{}, fmt.Errorf("perception call: %w", err)
	}

	var events EventSet
	DecodeLooseJSON(text, &events)
	return events, nil
}
