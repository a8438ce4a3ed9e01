package service

import (
	"context"

	"predictplay-be/internal/config"
	"predictplay-be/internal/dto"
	"predictplay-be/internal/entity"
	"predictplay-be/internal/pkg/clock"
	"predictplay-be/internal/pkg/logger"
	"predictplay-be/internal/pkg/serverutils"
	"predictplay-be/internal/repository/specification"
	"predictplay-be/internal/repository/unitofwork"
	"predictplay-be/pkg/analyzer"
	"predictplay-be/pkg/events"
	natspkg "predictplay-be/pkg/nats"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAnalyzerService interface {
	// RunAnalysis charges the model's token cost and produces a structured
	// result. A provider failure after the debit leaves the request row in
	// processing/failed state for later reconciliation; the charge stands.
	RunAnalysis(ctx context.Context, req *dto.RunAnalysisRequest) (*dto.RunAnalysisResponse, error)

	GetRequest(ctx context.Context, requestId uuid.UUID) (*entity.AnalyzerRequest, error)
}

type analyzerService struct {
	uowFactory       unitofwork.RepositoryFactory
	tokenService     ITokenService
	provider         analyzer.ResultProvider
	publisher        IPublisherService
	natsPublisher    *natspkg.Publisher
	topics           config.TopicConfig
	defaultTokenCost int
	clk              clock.Clock
	log              logger.ILogger
}

func NewAnalyzerService(
	uowFactory unitofwork.RepositoryFactory,
	tokenService ITokenService,
	provider analyzer.ResultProvider,
	publisher IPublisherService,
	natsPublisher *natspkg.Publisher,
	topics config.TopicConfig,
	defaultTokenCost int,
	clk clock.Clock,
	log logger.ILogger,
) IAnalyzerService {
	return &analyzerService{
		uowFactory:       uowFactory,
		tokenService:     tokenService,
		provider:         provider,
		publisher:        publisher,
		natsPublisher:    natsPublisher,
		topics:           topics,
		defaultTokenCost: defaultTokenCost,
		clk:              clk,
		log:              log,
	}
}

func (s *analyzerService) GetRequest(ctx context.Context, requestId uuid.UUID) (*entity.AnalyzerRequest, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	request, err := uow.AnalyzerRepository().FindRequest(ctx, specification.ByID{ID: requestId})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, serverutils.ErrNotFound("analyzer request not found")
	}
	return request, nil
}

func (s *analyzerService) RunAnalysis(ctx context.Context, req *dto.RunAnalysisRequest) (*dto.RunAnalysisResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.AnalyzerRepository()

	model, err := repo.FindModel(ctx, specification.ByID{ID: req.ModelId})
	if err != nil {
		return nil, err
	}
	if model == nil {
		return nil, serverutils.ErrNotFound("analyzer model not found")
	}
	if !model.IsActive {
		return nil, serverutils.NewBusinessError(fiber.StatusBadRequest, serverutils.CodeModelInactive,
			"analyzer model is not active")
	}

	cost := model.TokenCost
	if cost <= 0 {
		cost = s.defaultTokenCost
	}

	// Funds check before any side effect. The later debit re-checks
	// atomically; this one just keeps a broke user from leaving a stray
	// processing row behind.
	balance, err := uow.TokenRepository().GetBalance(ctx, req.UserId)
	if err != nil {
		return nil, err
	}
	if balance == nil {
		return nil, serverutils.ErrNotFound("no token balance for user")
	}
	if balance.Balance < cost {
		return nil, serverutils.ErrInsufficientFunds("insufficient token balance for analysis")
	}

	request := &entity.AnalyzerRequest{
		Id:         uuid.New(),
		UserId:     req.UserId,
		ModelId:    model.Id,
		Status:     entity.AnalyzerRequestStatusProcessing,
		TokensUsed: cost,
		ImageUrl:   req.ImageUrl,
		InputText:  req.InputText,
		Metadata:   req.Metadata,
		CreatedAt:  s.clk.Now(),
	}
	if err := repo.CreateRequest(ctx, request); err != nil {
		return nil, err
	}

	debit, err := s.tokenService.Debit(ctx, req.UserId, cost, TransactionContext{
		Action:         "analyzer_run",
		RelatedModelId: &model.Id,
		RelatedId:      &request.Id,
		Metadata: map[string]interface{}{
			"model_slug": model.Slug,
		},
	})
	if err != nil {
		// The processing row stays behind; a reconciliation sweep picks
		// up debit-less requests.
		return nil, err
	}

	input := analyzer.Input{
		ModelSlug: model.Slug,
		Metadata:  req.Metadata,
	}
	if req.ImageUrl != nil {
		input.ImageUrl = *req.ImageUrl
	}
	if req.InputText != nil {
		input.InputText = *req.InputText
	}

	result, err := s.provider.Analyze(ctx, input)
	if err != nil {
		s.log.Error("analyzer", "provider invocation failed", map[string]interface{}{
			"request_id": request.Id.String(),
			"model_slug": model.Slug,
			"error":      err.Error(),
		})
		if markErr := repo.MarkRequestFailed(ctx, request.Id); markErr != nil {
			s.log.Error("analyzer", "failed to mark request failed", map[string]interface{}{
				"request_id": request.Id.String(),
				"error":      markErr.Error(),
			})
		}
		return nil, serverutils.ErrUpstream("analysis provider is unavailable")
	}

	if err := repo.CompleteRequest(ctx, request.Id, result); err != nil {
		return nil, err
	}

	s.queueFollowUps(ctx, request, model)

	return &dto.RunAnalysisResponse{
		RequestId:        request.Id,
		ModelId:          model.Id,
		Status:           string(entity.AnalyzerRequestStatusCompleted),
		TokensUsed:       cost,
		RemainingBalance: debit.NewBalance,
		Result:           result,
	}, nil
}

func (s *analyzerService) queueFollowUps(ctx context.Context, request *entity.AnalyzerRequest, model *entity.AnalyzerModel) {
	if err := s.publisher.Publish(ctx, s.topics.AchievementsEvaluate, dto.EvaluateAchievementsMessage{
		UserId: request.UserId,
		Reason: "analyzer_run",
	}); err != nil {
		s.log.Warn("analyzer", "failed to queue achievement evaluation", map[string]interface{}{
			"user_id": request.UserId.String(),
			"error":   err.Error(),
		})
	}

	if s.natsPublisher != nil {
		event := events.NewAnalysisCompleted(request.UserId, model.Id, request.Id, request.TokensUsed)
		if err := s.natsPublisher.Publish(ctx, event); err != nil {
			s.log.Warn("analyzer", "failed to publish analysis completed event", map[string]interface{}{
				"request_id": request.Id.String(),
				"error":      err.Error(),
			})
		}
	}
}
