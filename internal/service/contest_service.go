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
	"predictplay-be/pkg/events"
	natspkg "predictplay-be/pkg/nats"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IContestService interface {
	// EnterContest charges the contest's token cost and records the entry.
	// The debit is authoritative; if the entry cannot be recorded afterwards,
	// the tokens are credited back before the error surfaces.
	EnterContest(ctx context.Context, req *dto.EnterContestRequest) (*dto.EnterContestResponse, error)

	GetContest(ctx context.Context, contestId uuid.UUID) (*entity.Contest, error)
	ListContests(ctx context.Context, status string) ([]*entity.Contest, error)
}

type contestService struct {
	uowFactory    unitofwork.RepositoryFactory
	tokenService  ITokenService
	streakService IStreakService
	publisher     IPublisherService
	natsPublisher *natspkg.Publisher
	topics        config.TopicConfig
	clk           clock.Clock
	log           logger.ILogger
}

func NewContestService(
	uowFactory unitofwork.RepositoryFactory,
	tokenService ITokenService,
	streakService IStreakService,
	publisher IPublisherService,
	natsPublisher *natspkg.Publisher,
	topics config.TopicConfig,
	clk clock.Clock,
	log logger.ILogger,
) IContestService {
	return &contestService{
		uowFactory:    uowFactory,
		tokenService:  tokenService,
		streakService: streakService,
		publisher:     publisher,
		natsPublisher: natsPublisher,
		topics:        topics,
		clk:           clk,
		log:           log,
	}
}

func (s *contestService) GetContest(ctx context.Context, contestId uuid.UUID) (*entity.Contest, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	contest, err := uow.ContestRepository().FindOne(ctx, specification.ByID{ID: contestId})
	if err != nil {
		return nil, err
	}
	if contest == nil {
		return nil, serverutils.ErrNotFound("contest not found")
	}
	return contest, nil
}

func (s *contestService) ListContests(ctx context.Context, status string) ([]*entity.Contest, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	specs := []specification.Specification{specification.OrderBy{Field: "created_at", Desc: true}}
	if status != "" {
		specs = append(specs, specification.Filter("status", status))
	}
	return uow.ContestRepository().FindAll(ctx, specs...)
}

func (s *contestService) EnterContest(ctx context.Context, req *dto.EnterContestRequest) (*dto.EnterContestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	contestRepo := uow.ContestRepository()

	contest, err := contestRepo.FindOne(ctx, specification.ByID{ID: req.ContestId})
	if err != nil {
		return nil, err
	}
	if contest == nil {
		return nil, serverutils.ErrNotFound("contest not found")
	}

	if err := s.checkEligibility(ctx, contest); err != nil {
		return nil, err
	}

	existing, err := contestRepo.FindEntry(ctx, req.ContestId, req.UserId, req.PredictionCardId)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.NewBusinessError(fiber.StatusBadRequest, serverutils.CodeDuplicateEntry,
			"user already entered this contest with this prediction")
	}

	confidence := req.ConfidenceLevel
	if confidence == 0 {
		confidence = 3
	}

	txCtx := TransactionContext{
		Action:         "contest_entry",
		RelatedModelId: nil,
		RelatedId:      &contest.Id,
		Metadata: map[string]interface{}{
			"contest_title": contest.Title,
		},
	}

	debit, err := s.tokenService.Debit(ctx, req.UserId, contest.TokenCost, txCtx)
	if err != nil {
		return nil, err
	}

	entry := &entity.ContestEntry{
		Id:               uuid.New(),
		ContestId:        contest.Id,
		UserId:           req.UserId,
		PredictionCardId: req.PredictionCardId,
		PredictionValue:  req.PredictionValue,
		ConfidenceLevel:  confidence,
		TokensSpent:      contest.TokenCost,
		CreatedAt:        s.clk.Now(),
	}
	if err := contestRepo.CreateEntry(ctx, entry); err != nil {
		s.log.Error("contest", "entry insert failed after debit, crediting back", map[string]interface{}{
			"user_id":    req.UserId.String(),
			"contest_id": contest.Id.String(),
			"error":      err.Error(),
		})
		if creditErr := s.tokenService.Credit(ctx, req.UserId, contest.TokenCost, TransactionContext{
			Action:    "contest_entry_rollback",
			RelatedId: &contest.Id,
		}); creditErr != nil {
			s.log.Error("contest", "rollback credit failed, ledger needs manual reconciliation", map[string]interface{}{
				"user_id": req.UserId.String(),
				"amount":  contest.TokenCost,
				"error":   creditErr.Error(),
			})
		}
		return nil, serverutils.NewBusinessError(fiber.StatusInternalServerError, serverutils.CodeEntryFailed,
			"contest entry could not be recorded; tokens were refunded")
	}

	s.queueFollowUps(ctx, contest, entry)

	return &dto.EnterContestResponse{
		EntryId:          entry.Id,
		ContestTitle:     contest.Title,
		TokensSpent:      contest.TokenCost,
		RemainingBalance: debit.NewBalance,
	}, nil
}

func (s *contestService) checkEligibility(ctx context.Context, contest *entity.Contest) error {
	if contest.Status != entity.ContestStatusActive {
		return serverutils.NewBusinessError(fiber.StatusBadRequest, serverutils.CodeContestClosed,
			"contest is not open for entries")
	}

	now := s.clk.Now()
	if contest.StartsAt != nil && now.Before(*contest.StartsAt) {
		return serverutils.NewBusinessError(fiber.StatusBadRequest, serverutils.CodeContestClosed,
			"contest has not started yet")
	}
	if contest.EndsAt != nil && now.After(*contest.EndsAt) {
		return serverutils.NewBusinessError(fiber.StatusBadRequest, serverutils.CodeContestClosed,
			"contest entry window has closed")
	}

	if contest.MaxEntries != nil {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		count, err := uow.ContestRepository().CountEntries(ctx, specification.Filter("contest_id", contest.Id))
		if err != nil {
			return err
		}
		if count >= int64(*contest.MaxEntries) {
			return serverutils.NewBusinessError(fiber.StatusBadRequest, serverutils.CodeContestFull,
				"contest has reached its entry limit")
		}
	}
	return nil
}

// queueFollowUps schedules the secondary bookkeeping that must not block or
// fail the entry: the contest counter, streak touch, achievement sweep, and
// the outward event. Each failure is logged and swallowed.
func (s *contestService) queueFollowUps(ctx context.Context, contest *entity.Contest, entry *entity.ContestEntry) {
	if err := s.publisher.Publish(ctx, s.topics.EntryCounted, dto.EntryCountedMessage{
		ContestId: contest.Id,
		UserId:    entry.UserId,
	}); err != nil {
		s.log.Warn("contest", "failed to queue entry count update", map[string]interface{}{
			"contest_id": contest.Id.String(),
			"error":      err.Error(),
		})
	}

	if _, err := s.streakService.Touch(ctx, entry.UserId); err != nil {
		s.log.Warn("contest", "streak touch failed", map[string]interface{}{
			"user_id": entry.UserId.String(),
			"error":   err.Error(),
		})
	}

	if err := s.publisher.Publish(ctx, s.topics.AchievementsEvaluate, dto.EvaluateAchievementsMessage{
		UserId: entry.UserId,
		Reason: "contest_entry",
	}); err != nil {
		s.log.Warn("contest", "failed to queue achievement evaluation", map[string]interface{}{
			"user_id": entry.UserId.String(),
			"error":   err.Error(),
		})
	}

	if s.natsPublisher != nil {
		event := events.NewContestEntered(entry.UserId, contest.Id, entry.Id, entry.TokensSpent)
		if err := s.natsPublisher.Publish(ctx, event); err != nil {
			s.log.Warn("contest", "failed to publish contest entered event", map[string]interface{}{
				"entry_id": entry.Id.String(),
				"error":    err.Error(),
			})
		}
	}
}
