package service

import (
	"context"
	"encoding/json"

	"predictplay-be/internal/config"
	"predictplay-be/internal/dto"
	"predictplay-be/internal/pkg/logger"
	"predictplay-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the in-process follow-up queue: contest entry
// counters, achievement sweeps, and leaderboard syncs all run here, off the
// request path.
type consumerService struct {
	pubSub             *gochannel.GoChannel
	topics             config.TopicConfig
	uowFactory         unitofwork.RepositoryFactory
	achievementService IAchievementService
	leaderboardService ILeaderboardService
	log                logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topics config.TopicConfig,
	uowFactory unitofwork.RepositoryFactory,
	achievementService IAchievementService,
	leaderboardService ILeaderboardService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:             pubSub,
		topics:             topics,
		uowFactory:         uowFactory,
		achievementService: achievementService,
		leaderboardService: leaderboardService,
		log:                log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	entryCounted, err := cs.pubSub.Subscribe(ctx, cs.topics.EntryCounted)
	if err != nil {
		return err
	}
	evaluate, err := cs.pubSub.Subscribe(ctx, cs.topics.AchievementsEvaluate)
	if err != nil {
		return err
	}
	xpAwarded, err := cs.pubSub.Subscribe(ctx, cs.topics.XpAwarded)
	if err != nil {
		return err
	}

	go func() {
		for msg := range entryCounted {
			cs.processEntryCounted(ctx, msg)
		}
	}()
	go func() {
		for msg := range evaluate {
			cs.processEvaluate(ctx, msg)
		}
	}()
	go func() {
		for msg := range xpAwarded {
			cs.processXpAwarded(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processEntryCounted(ctx context.Context, msg *message.Message) {
	var payload dto.EntryCountedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("consumer", "failed to unmarshal entry count message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ContestRepository().IncrementEntryCount(ctx, payload.ContestId); err != nil {
		cs.log.Error("consumer", "failed to increment contest entry count", map[string]interface{}{
			"contest_id": payload.ContestId.String(),
			"error":      err.Error(),
		})
		msg.Nack()
		return
	}

	msg.Ack()
}

func (cs *consumerService) processEvaluate(ctx context.Context, msg *message.Message) {
	var payload dto.EvaluateAchievementsMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("consumer", "failed to unmarshal achievement message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack()
		return
	}

	result, err := cs.achievementService.Evaluate(ctx, payload.UserId)
	if err != nil {
		cs.log.Error("consumer", "achievement evaluation failed", map[string]interface{}{
			"user_id": payload.UserId.String(),
			"reason":  payload.Reason,
			"error":   err.Error(),
		})
		msg.Nack()
		return
	}

	if len(result.NewBadges) > 0 {
		cs.log.Info("consumer", "badges awarded", map[string]interface{}{
			"user_id": payload.UserId.String(),
			"count":   len(result.NewBadges),
			"reason":  payload.Reason,
		})
	}

	msg.Ack()
}

func (cs *consumerService) processXpAwarded(ctx context.Context, msg *message.Message) {
	var payload dto.XpAwardedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("consumer", "failed to unmarshal xp message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack()
		return
	}

	if err := cs.leaderboardService.RecordXP(ctx, payload.UserId, payload.XpPoints); err != nil {
		msg.Nack()
		return
	}

	msg.Ack()
}
