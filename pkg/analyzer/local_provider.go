package analyzer

import (
	"context"
	"fmt"
	"hash/fnv"

	"predictplay-be/internal/entity"
)

// LocalProvider is a deterministic heuristic analyzer for development and
// tests: the same input always yields the same result, no network involved.
type LocalProvider struct{}

func NewLocalProvider() ResultProvider {
	return &LocalProvider{}
}

func (p *LocalProvider) Analyze(ctx context.Context, input Input) (*entity.AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	h := fnv.New32a()
	h.Write([]byte(input.ModelSlug))
	h.Write([]byte(input.InputText))
	h.Write([]byte(input.ImageUrl))
	seed := h.Sum32()

	confidence := 0.40 + float64(seed%56)/100.0 // 0.40 .. 0.95
	valueRating := 1 + int(seed%5)

	tier := entity.RiskTierModerate
	switch {
	case confidence >= 0.75:
		tier = entity.RiskTierLow
	case confidence < 0.55:
		tier = entity.RiskTierHigh
	}

	return &entity.AnalysisResult{
		Confidence: confidence,
		Analysis: fmt.Sprintf(
			"Heuristic read for model %s: projected confidence %.2f with %s risk exposure.",
			input.ModelSlug, confidence, tier),
		Recommendations: []string{
			"Compare with the consensus line before committing tokens.",
			"Size the entry against your remaining balance.",
		},
		RiskTier:    tier,
		ValueRating: valueRating,
	}, nil
}
