package service

import (
	"context"

	"predictplay-be/internal/config"
	"predictplay-be/internal/dto"
	"predictplay-be/internal/entity"
	"predictplay-be/internal/pkg/clock"
	"predictplay-be/internal/pkg/logger"
	"predictplay-be/internal/repository/unitofwork"
	"predictplay-be/pkg/events"
	natspkg "predictplay-be/pkg/nats"

	"github.com/google/uuid"
)

type IStreakService interface {
	// Touch records activity for today. The first call of a calendar day
	// extends or resets the streak; later calls the same day change nothing.
	Touch(ctx context.Context, userId uuid.UUID) (*dto.StreakResponse, error)
	GetStreak(ctx context.Context, userId uuid.UUID) (*dto.StreakResponse, error)
}

type streakService struct {
	uowFactory    unitofwork.RepositoryFactory
	publisher     IPublisherService
	natsPublisher *natspkg.Publisher
	topics        config.TopicConfig
	clk           clock.Clock
	log           logger.ILogger
}

func NewStreakService(
	uowFactory unitofwork.RepositoryFactory,
	publisher IPublisherService,
	natsPublisher *natspkg.Publisher,
	topics config.TopicConfig,
	clk clock.Clock,
	log logger.ILogger,
) IStreakService {
	return &streakService{
		uowFactory:    uowFactory,
		publisher:     publisher,
		natsPublisher: natsPublisher,
		topics:        topics,
		clk:           clk,
		log:           log,
	}
}

func (s *streakService) GetStreak(ctx context.Context, userId uuid.UUID) (*dto.StreakResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	streak, err := uow.StreakRepository().FindByUser(ctx, userId)
	if err != nil {
		return nil, err
	}
	if streak == nil {
		return &dto.StreakResponse{UserId: userId}, nil
	}
	return &dto.StreakResponse{
		UserId:        userId,
		CurrentStreak: streak.CurrentStreak,
		LongestStreak: streak.LongestStreak,
	}, nil
}

func (s *streakService) Touch(ctx context.Context, userId uuid.UUID) (*dto.StreakResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.StreakRepository()

	today := s.clk.Today()

	streak, err := repo.FindByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	if streak == nil {
		streak = &entity.UserStreak{
			UserId:           userId,
			CurrentStreak:    1,
			LongestStreak:    1,
			LastActivityDate: today,
			UpdatedAt:        s.clk.Now(),
		}
		if err := repo.Upsert(ctx, streak); err != nil {
			return nil, err
		}
		s.afterExtend(ctx, streak, true)
		return &dto.StreakResponse{
			UserId:        userId,
			CurrentStreak: 1,
			LongestStreak: 1,
			IsNewRecord:   true,
		}, nil
	}

	lastDate := clock.DateOf(streak.LastActivityDate)
	if lastDate.Equal(today) {
		return &dto.StreakResponse{
			UserId:        userId,
			CurrentStreak: streak.CurrentStreak,
			LongestStreak: streak.LongestStreak,
		}, nil
	}

	if lastDate.AddDate(0, 0, 1).Equal(today) {
		streak.CurrentStreak++
	} else {
		streak.CurrentStreak = 1
	}

	isNewRecord := streak.CurrentStreak > streak.LongestStreak
	if isNewRecord {
		streak.LongestStreak = streak.CurrentStreak
	}
	streak.LastActivityDate = today
	streak.UpdatedAt = s.clk.Now()

	if err := repo.Upsert(ctx, streak); err != nil {
		return nil, err
	}

	s.afterExtend(ctx, streak, isNewRecord)

	return &dto.StreakResponse{
		UserId:        userId,
		CurrentStreak: streak.CurrentStreak,
		LongestStreak: streak.LongestStreak,
		IsNewRecord:   isNewRecord,
	}, nil
}

func (s *streakService) afterExtend(ctx context.Context, streak *entity.UserStreak, isNewRecord bool) {
	// Once the streak crosses the badge threshold, let the engine look.
	if streak.CurrentStreak >= 7 {
		if err := s.publisher.Publish(ctx, s.topics.AchievementsEvaluate, dto.EvaluateAchievementsMessage{
			UserId: streak.UserId,
			Reason: "streak_extended",
		}); err != nil {
			s.log.Warn("streak", "failed to queue achievement evaluation", map[string]interface{}{
				"user_id": streak.UserId.String(),
				"error":   err.Error(),
			})
		}
	}

	if s.natsPublisher != nil {
		event := events.NewStreakExtended(streak.UserId, streak.CurrentStreak, streak.LongestStreak, isNewRecord)
		if err := s.natsPublisher.Publish(ctx, event); err != nil {
			s.log.Warn("streak", "failed to publish streak extended event", map[string]interface{}{
				"user_id": streak.UserId.String(),
				"error":   err.Error(),
			})
		}
	}
}
