package analyzer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"predictplay-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalProviderIsDeterministic(t *testing.T) {
	p := NewLocalProvider()
	input := Input{ModelSlug: "match-outcome", InputText: "derby preview"}

	first, err := p.Analyze(context.Background(), input)
	require.NoError(t, err)
	second, err := p.Analyze(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NoError(t, validateResult(first))
}

func TestLocalProviderRespectsCancellation(t *testing.T) {
	p := NewLocalProvider()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Analyze(ctx, Input{ModelSlug: "match-outcome"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHTTPProviderParsesResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/analyze", r.URL.Path)

		var req analyzeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "match-outcome", req.Model)

		json.NewEncoder(w).Encode(entity.AnalysisResult{
			Confidence:      0.7,
			Analysis:        "even matchup",
			Recommendations: []string{"wait for lineups"},
			RiskTier:        entity.RiskTierModerate,
			ValueRating:     3,
		})
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, 0)
	result, err := p.Analyze(context.Background(), Input{ModelSlug: "match-outcome"})
	require.NoError(t, err)
	assert.InDelta(t, 0.7, result.Confidence, 0.001)
	assert.Equal(t, entity.RiskTierModerate, result.RiskTier)
}

func TestHTTPProviderRejectsContractViolations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(entity.AnalysisResult{
			Confidence:  1.4,
			RiskTier:    entity.RiskTierLow,
			ValueRating: 3,
		})
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, 0)
	_, err := p.Analyze(context.Background(), Input{ModelSlug: "match-outcome"})
	assert.Error(t, err)
}

func TestValidateResult(t *testing.T) {
	valid := &entity.AnalysisResult{Confidence: 0.5, RiskTier: entity.RiskTierHigh, ValueRating: 1}
	assert.NoError(t, validateResult(valid))

	badRating := &entity.AnalysisResult{Confidence: 0.5, RiskTier: entity.RiskTierHigh, ValueRating: 6}
	assert.Error(t, validateResult(badRating))

	badTier := &entity.AnalysisResult{Confidence: 0.5, RiskTier: "severe", ValueRating: 2}
	assert.Error(t, validateResult(badTier))
}
