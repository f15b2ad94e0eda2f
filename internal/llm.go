package internal

import "context"

// Provider is the boundary to the generative model. Complete returns raw
// text, GenerateObject fills a struct via the provider's structured output
// support.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
	GenerateObject(ctx context.Context, prompt string, target any) error
}
