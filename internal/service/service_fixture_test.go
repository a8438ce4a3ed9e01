package service

import (
	"context"
	"sync"
	"time"

	"predictplay-be/internal/config"
	"predictplay-be/internal/entity"
	"predictplay-be/internal/pkg/clock"
	"predictplay-be/internal/pkg/logger"
	"predictplay-be/internal/repository/memory"
	"predictplay-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// recordingPublisher captures queued follow-ups so tests can assert on them
// without a running bus.
type recordingPublisher struct {
	mu       sync.Mutex
	messages []recordedMessage
}

type recordedMessage struct {
	Topic   string
	Payload interface{}
}

func (p *recordingPublisher) Publish(ctx context.Context, topic string, payload interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, recordedMessage{Topic: topic, Payload: payload})
	return nil
}

func (p *recordingPublisher) topicCount(topic string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, m := range p.messages {
		if m.Topic == topic {
			n++
		}
	}
	return n
}

type fixture struct {
	store     *memory.Store
	clock     *clock.FixedClock
	publisher *recordingPublisher
	topics    config.TopicConfig

	token       ITokenService
	streak      IStreakService
	achievement IAchievementService
	contest     IContestService
	vote        IVoteService
}

func newFixture() *fixture {
	store := memory.NewStore()
	uowFactory := memory.NewRepositoryFactory(store)
	log := logger.NewNopLogger()
	clk := clock.NewFixedClock(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))
	pub := &recordingPublisher{}
	topics := config.TopicConfig{
		EntryCounted:         "CONTEST_ENTRY_COUNTED",
		AchievementsEvaluate: "ACHIEVEMENTS_EVALUATE",
		XpAwarded:            "XP_AWARDED",
	}
	defCache := gocache.New(time.Minute, time.Minute)

	token := NewTokenService(uowFactory, log)
	streak := NewStreakService(uowFactory, pub, nil, topics, clk, log)
	achievement := NewAchievementService(uowFactory, pub, nil, topics, defCache, clk, log)
	contest := NewContestService(uowFactory, token, streak, pub, nil, topics, clk, log)
	vote := NewVoteService(uowFactory, pub, topics, clk, log)

	return &fixture{
		store:       store,
		clock:       clk,
		publisher:   pub,
		topics:      topics,
		token:       token,
		streak:      streak,
		achievement: achievement,
		contest:     contest,
		vote:        vote,
	}
}

func (f *fixture) seedBalance(userId uuid.UUID, balance int) {
	uow := memory.NewRepositoryFactory(f.store).NewUnitOfWork(context.Background())
	_ = uow.TokenRepository().CreateBalance(context.Background(), &entity.UserTokenBalance{
		UserId:  userId,
		Balance: balance,
	})
}

func (f *fixture) seedContest(cost int, maxEntries *int) *entity.Contest {
	contest := &entity.Contest{
		Id:         uuid.New(),
		Title:      "Test Contest",
		Status:     entity.ContestStatusActive,
		TokenCost:  cost,
		MaxEntries: maxEntries,
	}
	uow := memory.NewRepositoryFactory(f.store).NewUnitOfWork(context.Background())
	_ = uow.ContestRepository().Create(context.Background(), contest)
	return contest
}

func (f *fixture) seedBadges(slugs map[string]int) map[string]uuid.UUID {
	out := make(map[string]uuid.UUID, len(slugs))
	uow := memory.NewRepositoryFactory(f.store).NewUnitOfWork(context.Background())
	for slug, reward := range slugs {
		def := &entity.BadgeDefinition{
			Id:       uuid.New(),
			Slug:     slug,
			Name:     slug,
			XpReward: reward,
		}
		_ = uow.AchievementRepository().CreateDefinition(context.Background(), def)
		out[slug] = def.Id
	}
	return out
}

func newFixtureUow(f *fixture) unitofwork.UnitOfWork {
	return memory.NewRepositoryFactory(f.store).NewUnitOfWork(context.Background())
}
