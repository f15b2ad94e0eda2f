package internal

import (
	"context"
	"fmt"
)

// MediatorService runs the stage-2 model call: events in, verdict out.
type MediatorService struct {
	provider Provider
}

func NewMediatorService(provider Provider) *MediatorService {
	return &MediatorService{provider: provider}
}

// Mediate produces a mediation verdict for the given events. Structured
// generation keeps the result shaped; fields the model omits stay zero-valued
// and the recorder fills defaults downstream.
func (s *MediatorService) Mediate(ctx context.Context, events EventSet, constitution string) (MediationResult, error) {
	if s.provider == nil {
		return MediationResult{}, fmt.Errorf("provider not available")
	}

	prompt := MediatorPrompt(events, constitution)

	var result MediationResult
	if err := s.provider.GenerateObject(ctx, prompt, &result); err != nil {
		return MediationResult{}, fmt.Errorf("mediation call: %w", err)
	}

	return result, nil
}
