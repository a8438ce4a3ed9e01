package analyzer

import (
	"context"

	"predictplay-be/internal/entity"
)

// Input is everything the invocation service hands a provider.
type Input struct {
	ModelSlug string
	ImageUrl  string
	InputText string
	Metadata  map[string]interface{}
}

// ResultProvider produces a structured analysis for a model + input pair.
// Implementations must respect ctx cancellation and deadline.
type ResultProvider interface {
	Analyze(ctx context.Context, input Input) (*entity.AnalysisResult, error)
}
