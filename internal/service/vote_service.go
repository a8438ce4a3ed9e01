package service

import (
	"context"

	"predictplay-be/internal/config"
	"predictplay-be/internal/dto"
	"predictplay-be/internal/entity"
	"predictplay-be/internal/pkg/clock"
	"predictplay-be/internal/pkg/logger"
	"predictplay-be/internal/pkg/serverutils"
	"predictplay-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IVoteService interface {
	// Vote records or flips a user's vote on a single target. Voting the
	// same way twice is a no-op, voting the other way updates in place.
	Vote(ctx context.Context, req *dto.VoteRequest) (*dto.VoteResponse, error)
}

type voteService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
	topics     config.TopicConfig
	clk        clock.Clock
	log        logger.ILogger
}

func NewVoteService(
	uowFactory unitofwork.RepositoryFactory,
	publisher IPublisherService,
	topics config.TopicConfig,
	clk clock.Clock,
	log logger.ILogger,
) IVoteService {
	return &voteService{
		uowFactory: uowFactory,
		publisher:  publisher,
		topics:     topics,
		clk:        clk,
		log:        log,
	}
}

func (s *voteService) Vote(ctx context.Context, req *dto.VoteRequest) (*dto.VoteResponse, error) {
	if (req.AnalyzerRequestId == nil) == (req.PredictionCardId == nil) {
		return nil, serverutils.NewBusinessError(fiber.StatusBadRequest, serverutils.CodeInvalidTarget,
			"exactly one of analyzer_request_id or prediction_card_id must be set")
	}

	voteType := entity.VoteType(req.VoteType)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.VoteRepository()

	existing, err := repo.FindByTarget(ctx, req.UserId, req.AnalyzerRequestId, req.PredictionCardId)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if existing.VoteType == voteType {
			return &dto.VoteResponse{
				VoteId:   existing.Id,
				VoteType: string(existing.VoteType),
				Action:   "no_change",
			}, nil
		}
		if err := repo.UpdateVoteType(ctx, existing.Id, voteType); err != nil {
			return nil, err
		}
		return &dto.VoteResponse{
			VoteId:   existing.Id,
			VoteType: req.VoteType,
			Action:   "updated",
		}, nil
	}

	vote := &entity.SocialVote{
		Id:                uuid.New(),
		UserId:            req.UserId,
		AnalyzerRequestId: req.AnalyzerRequestId,
		PredictionCardId:  req.PredictionCardId,
		VoteType:          voteType,
		CreatedAt:         s.clk.Now(),
		UpdatedAt:         s.clk.Now(),
	}
	if err := repo.Create(ctx, vote); err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, s.topics.AchievementsEvaluate, dto.EvaluateAchievementsMessage{
		UserId: req.UserId,
		Reason: "social_vote",
	}); err != nil {
		s.log.Warn("vote", "failed to queue achievement evaluation", map[string]interface{}{
			"user_id": req.UserId.String(),
			"error":   err.Error(),
		})
	}

	return &dto.VoteResponse{
		VoteId:   vote.Id,
		VoteType: req.VoteType,
		Action:   "created",
	}, nil
}
