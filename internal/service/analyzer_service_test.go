package service

import (
	"context"
	"errors"
	"testing"

	"predictplay-be/internal/dto"
	"predictplay-be/internal/entity"
	"predictplay-be/internal/pkg/logger"
	"predictplay-be/internal/pkg/serverutils"
	"predictplay-be/internal/repository/memory"
	"predictplay-be/internal/repository/specification"
	"predictplay-be/pkg/analyzer"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	result *entity.AnalysisResult
	err    error
}

func (p *stubProvider) Analyze(ctx context.Context, input analyzer.Input) (*entity.AnalysisResult, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.result, nil
}

func newAnalyzerFixture(provider analyzer.ResultProvider) (*fixture, IAnalyzerService) {
	f := newFixture()
	uowFactory := memory.NewRepositoryFactory(f.store)
	svc := NewAnalyzerService(uowFactory, f.token, provider, f.publisher, nil, f.topics, 1, f.clock, logger.NewNopLogger())
	return f, svc
}

func seedModel(f *fixture, cost int, active bool) *entity.AnalyzerModel {
	m := &entity.AnalyzerModel{
		Id:        uuid.New(),
		Name:      "Match Outcome Analyzer",
		Slug:      "match-outcome",
		TokenCost: cost,
		IsActive:  active,
	}
	uow := newFixtureUow(f)
	_ = uow.AnalyzerRepository().CreateModel(context.Background(), m)
	return m
}

func TestRunAnalysisHappyPath(t *testing.T) {
	provider := &stubProvider{result: &entity.AnalysisResult{
		Confidence:      0.82,
		Analysis:        "home side dominant in recent meetings",
		Recommendations: []string{"back the home win"},
		RiskTier:        entity.RiskTierModerate,
		ValueRating:     4,
	}}
	f, svc := newAnalyzerFixture(provider)

	userId := uuid.New()
	f.seedBalance(userId, 20)
	model := seedModel(f, 5, true)

	res, err := svc.RunAnalysis(context.Background(), &dto.RunAnalysisRequest{
		UserId:  userId,
		ModelId: model.Id,
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.AnalyzerRequestStatusCompleted), res.Status)
	assert.Equal(t, 5, res.TokensUsed)
	assert.Equal(t, 15, res.RemainingBalance)
	require.NotNil(t, res.Result)
	assert.InDelta(t, 0.82, res.Result.Confidence, 0.001)

	stored, err := svc.GetRequest(context.Background(), res.RequestId)
	require.NoError(t, err)
	assert.Equal(t, entity.AnalyzerRequestStatusCompleted, stored.Status)
}

func TestRunAnalysisInactiveModel(t *testing.T) {
	f, svc := newAnalyzerFixture(&stubProvider{})
	userId := uuid.New()
	f.seedBalance(userId, 20)
	model := seedModel(f, 5, false)

	_, err := svc.RunAnalysis(context.Background(), &dto.RunAnalysisRequest{
		UserId:  userId,
		ModelId: model.Id,
	})
	var bizErr *serverutils.BusinessError
	require.True(t, errors.As(err, &bizErr))
	assert.Equal(t, serverutils.CodeModelInactive, bizErr.Code)
	assert.Equal(t, fiber.StatusBadRequest, bizErr.Status)
}

func TestRunAnalysisInsufficientFundsBeforeSideEffects(t *testing.T) {
	f, svc := newAnalyzerFixture(&stubProvider{})
	userId := uuid.New()
	f.seedBalance(userId, 2)
	model := seedModel(f, 5, true)

	_, err := svc.RunAnalysis(context.Background(), &dto.RunAnalysisRequest{
		UserId:  userId,
		ModelId: model.Id,
	})
	var bizErr *serverutils.BusinessError
	require.True(t, errors.As(err, &bizErr))
	assert.Equal(t, serverutils.CodeInsufficientFunds, bizErr.Code)

	// No request row was created.
	uow := newFixtureUow(f)
	req, err := uow.AnalyzerRepository().FindRequest(context.Background(), specification.ByUserID{UserID: userId})
	require.NoError(t, err)
	assert.Nil(t, req)
}

func TestRunAnalysisProviderFailureKeepsCharge(t *testing.T) {
	f, svc := newAnalyzerFixture(&stubProvider{err: errors.New("model endpoint down")})
	userId := uuid.New()
	f.seedBalance(userId, 20)
	model := seedModel(f, 5, true)

	_, err := svc.RunAnalysis(context.Background(), &dto.RunAnalysisRequest{
		UserId:  userId,
		ModelId: model.Id,
	})
	var bizErr *serverutils.BusinessError
	require.True(t, errors.As(err, &bizErr))
	assert.Equal(t, serverutils.CodeUpstream, bizErr.Code)

	balance, err := f.token.GetBalance(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, 15, balance.Balance, "the charge stands; reconciliation is out of band")
}
