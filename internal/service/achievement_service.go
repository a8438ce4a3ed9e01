package service

import (
	"context"
	"time"

	"predictplay-be/internal/config"
	"predictplay-be/internal/dto"
	"predictplay-be/internal/entity"
	"predictplay-be/internal/pkg/clock"
	"predictplay-be/internal/pkg/logger"
	"predictplay-be/internal/repository/unitofwork"
	"predictplay-be/pkg/events"
	natspkg "predictplay-be/pkg/nats"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const badgeDefinitionsCacheKey = "badge_definitions"

type IAchievementService interface {
	// Evaluate sweeps all badge predicates for the user and awards every
	// newly satisfied badge. One badge failing to persist does not stop the
	// remaining badges from being evaluated.
	Evaluate(ctx context.Context, userId uuid.UUID) (*dto.CheckAchievementsResponse, error)

	// AwardXP adds points and recomputes the level. Levels only move up;
	// a smaller recomputed level never overwrites a larger stored one.
	AwardXP(ctx context.Context, userId uuid.UUID, points int) (*entity.UserXP, error)

	GetXP(ctx context.Context, userId uuid.UUID) (*entity.UserXP, error)
	ListUserBadges(ctx context.Context, userId uuid.UUID) ([]*entity.UserBadge, error)
}

type achievementService struct {
	uowFactory    unitofwork.RepositoryFactory
	publisher     IPublisherService
	natsPublisher *natspkg.Publisher
	topics        config.TopicConfig
	cache         *gocache.Cache
	clk           clock.Clock
	log           logger.ILogger
}

func NewAchievementService(
	uowFactory unitofwork.RepositoryFactory,
	publisher IPublisherService,
	natsPublisher *natspkg.Publisher,
	topics config.TopicConfig,
	cache *gocache.Cache,
	clk clock.Clock,
	log logger.ILogger,
) IAchievementService {
	return &achievementService{
		uowFactory:    uowFactory,
		publisher:     publisher,
		natsPublisher: natsPublisher,
		topics:        topics,
		cache:         cache,
		clk:           clk,
		log:           log,
	}
}

func (s *achievementService) GetXP(ctx context.Context, userId uuid.UUID) (*entity.UserXP, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	xp, err := uow.AchievementRepository().GetXP(ctx, userId)
	if err != nil {
		return nil, err
	}
	if xp == nil {
		return &entity.UserXP{UserId: userId, XpPoints: 0, Level: 1}, nil
	}
	return xp, nil
}

func (s *achievementService) ListUserBadges(ctx context.Context, userId uuid.UUID) ([]*entity.UserBadge, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.AchievementRepository().FindUserBadges(ctx, userId)
}

func (s *achievementService) AwardXP(ctx context.Context, userId uuid.UUID, points int) (*entity.UserXP, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// The repository adds points in place, so concurrent awards both land.
	xp, err := uow.AchievementRepository().AddXP(ctx, userId, points)
	if err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, s.topics.XpAwarded, dto.XpAwardedMessage{
		UserId:   userId,
		XpPoints: xp.XpPoints,
	}); err != nil {
		s.log.Warn("achievement", "failed to queue leaderboard sync", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
	}

	return xp, nil
}

func (s *achievementService) Evaluate(ctx context.Context, userId uuid.UUID) (*dto.CheckAchievementsResponse, error) {
	defs, err := s.definitions(ctx)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	resp := &dto.CheckAchievementsResponse{
		UserId:    userId,
		NewBadges: []dto.AwardedBadge{},
	}

	for _, def := range defs {
		has, err := uow.AchievementRepository().HasBadge(ctx, userId, def.Id)
		if err != nil {
			s.log.Warn("achievement", "badge ownership check failed", map[string]interface{}{
				"user_id": userId.String(),
				"badge":   def.Slug,
				"error":   err.Error(),
			})
			continue
		}
		if has {
			continue
		}

		satisfied, err := s.predicateSatisfied(ctx, uow, userId, def.Slug)
		if err != nil {
			s.log.Warn("achievement", "predicate evaluation failed", map[string]interface{}{
				"user_id": userId.String(),
				"badge":   def.Slug,
				"error":   err.Error(),
			})
			continue
		}
		if !satisfied {
			continue
		}

		if err := s.award(ctx, uow, userId, def); err != nil {
			s.log.Warn("achievement", "badge award failed", map[string]interface{}{
				"user_id": userId.String(),
				"badge":   def.Slug,
				"error":   err.Error(),
			})
			continue
		}

		resp.NewBadges = append(resp.NewBadges, dto.AwardedBadge{
			BadgeId:     def.Id,
			Slug:        def.Slug,
			Name:        def.Name,
			Description: def.Description,
			XpReward:    def.XpReward,
		})
	}

	return resp, nil
}

func (s *achievementService) award(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, def *entity.BadgeDefinition) error {
	badge := &entity.UserBadge{
		Id:       uuid.New(),
		UserId:   userId,
		BadgeId:  def.Id,
		EarnedAt: s.clk.Now(),
	}
	if err := uow.AchievementRepository().CreateUserBadge(ctx, badge); err != nil {
		return err
	}

	if def.XpReward > 0 {
		if _, err := s.AwardXP(ctx, userId, def.XpReward); err != nil {
			s.log.Warn("achievement", "xp award failed after badge grant", map[string]interface{}{
				"user_id": userId.String(),
				"badge":   def.Slug,
				"error":   err.Error(),
			})
		}
	}

	if s.natsPublisher != nil {
		event := events.NewBadgeAwarded(userId, def.Id, def.Slug, def.XpReward)
		if err := s.natsPublisher.Publish(ctx, event); err != nil {
			s.log.Warn("achievement", "failed to publish badge awarded event", map[string]interface{}{
				"user_id": userId.String(),
				"badge":   def.Slug,
				"error":   err.Error(),
			})
		}
	}

	return nil
}

// predicateSatisfied evaluates a single badge condition. contest_champion
// intentionally shares first_win's condition; product has not yet decided
// what should distinguish them.
func (s *achievementService) predicateSatisfied(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, slug string) (bool, error) {
	switch slug {
	case entity.BadgeFirstWin, entity.BadgeContestChampion:
		return uow.ContestRepository().HasCorrectEntry(ctx, userId)

	case entity.BadgeStreakMaster:
		streak, err := uow.StreakRepository().FindByUser(ctx, userId)
		if err != nil || streak == nil {
			return false, err
		}
		return streak.CurrentStreak >= 7, nil

	case entity.BadgeSocialButterfly:
		count, err := uow.VoteRepository().CountByUser(ctx, userId)
		if err != nil {
			return false, err
		}
		return count >= 50, nil

	case entity.BadgeHighRoller:
		total, err := uow.TokenRepository().SumDeductions(ctx, userId)
		if err != nil {
			return false, err
		}
		return total >= 1000, nil

	case entity.BadgeAccuracyAce:
		judged, correct, err := uow.ContestRepository().CountJudged(ctx, userId)
		if err != nil {
			return false, err
		}
		if judged < 20 {
			return false, nil
		}
		return float64(correct)/float64(judged) >= 0.80, nil

	default:
		// Unknown slugs come from seed data ahead of engine support.
		return false, nil
	}
}

func (s *achievementService) definitions(ctx context.Context) ([]*entity.BadgeDefinition, error) {
	if cached, found := s.cache.Get(badgeDefinitionsCacheKey); found {
		if defs, ok := cached.([]*entity.BadgeDefinition); ok {
			return defs, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	defs, err := uow.AchievementRepository().FindAllDefinitions(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(badgeDefinitionsCacheKey, defs, 5*time.Minute)
	return defs, nil
}
