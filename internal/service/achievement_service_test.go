package service

import (
	"context"
	"sync"
	"testing"

	"predictplay-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateAwardsFirstWinAndChampionTogether(t *testing.T) {
	f := newFixture()
	userId := uuid.New()
	f.seedBadges(map[string]int{
		entity.BadgeFirstWin:        100,
		entity.BadgeContestChampion: 500,
	})

	correct := true
	uow := newFixtureUow(f)
	require.NoError(t, uow.ContestRepository().CreateEntry(context.Background(), &entity.ContestEntry{
		Id:              uuid.New(),
		ContestId:       uuid.New(),
		UserId:          userId,
		PredictionValue: "2-1",
		IsCorrect:       &correct,
	}))

	res, err := f.achievement.Evaluate(context.Background(), userId)
	require.NoError(t, err)
	// contest_champion shares first_win's condition, so one correct entry
	// earns both.
	assert.Len(t, res.NewBadges, 2)

	xp, err := f.achievement.GetXP(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, 600, xp.XpPoints)

	// A second sweep awards nothing new.
	res, err = f.achievement.Evaluate(context.Background(), userId)
	require.NoError(t, err)
	assert.Empty(t, res.NewBadges)
}

func TestEvaluateStreakMaster(t *testing.T) {
	f := newFixture()
	userId := uuid.New()
	f.seedBadges(map[string]int{entity.BadgeStreakMaster: 250})

	for day := 1; day <= 7; day++ {
		_, err := f.streak.Touch(context.Background(), userId)
		require.NoError(t, err)
		f.clock.AdvanceDays(1)
	}

	res, err := f.achievement.Evaluate(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, res.NewBadges, 1)
	assert.Equal(t, entity.BadgeStreakMaster, res.NewBadges[0].Slug)
}

func TestEvaluateHighRoller(t *testing.T) {
	f := newFixture()
	userId := uuid.New()
	f.seedBadges(map[string]int{entity.BadgeHighRoller: 300})
	f.seedBalance(userId, 2000)

	_, err := f.token.Debit(context.Background(), userId, 999, TransactionContext{Action: "contest_entry"})
	require.NoError(t, err)

	res, err := f.achievement.Evaluate(context.Background(), userId)
	require.NoError(t, err)
	assert.Empty(t, res.NewBadges, "999 spent is below the threshold")

	_, err = f.token.Debit(context.Background(), userId, 1, TransactionContext{Action: "contest_entry"})
	require.NoError(t, err)

	res, err = f.achievement.Evaluate(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, res.NewBadges, 1)
	assert.Equal(t, entity.BadgeHighRoller, res.NewBadges[0].Slug)
}

func TestEvaluateAccuracyAce(t *testing.T) {
	f := newFixture()
	userId := uuid.New()
	f.seedBadges(map[string]int{entity.BadgeAccuracyAce: 400})

	uow := newFixtureUow(f)
	seedJudged := func(n int, isCorrect bool) {
		v := isCorrect
		for i := 0; i < n; i++ {
			_ = uow.ContestRepository().CreateEntry(context.Background(), &entity.ContestEntry{
				Id:              uuid.New(),
				ContestId:       uuid.New(),
				UserId:          userId,
				PredictionValue: "x",
				IsCorrect:       &v,
			})
		}
	}

	// 19 judged entries, all correct: volume threshold not met.
	seedJudged(19, true)
	res, err := f.achievement.Evaluate(context.Background(), userId)
	require.NoError(t, err)
	assert.Empty(t, res.NewBadges)

	// 20th judged entry wrong: 19/20 = 0.95, both thresholds met.
	seedJudged(1, false)
	res, err = f.achievement.Evaluate(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, res.NewBadges, 1)
	assert.Equal(t, entity.BadgeAccuracyAce, res.NewBadges[0].Slug)
}

func TestEvaluateContinuesPastFailedAward(t *testing.T) {
	f := newFixture()
	userId := uuid.New()
	f.seedBadges(map[string]int{
		entity.BadgeFirstWin:   100,
		entity.BadgeHighRoller: 300,
	})
	f.seedBalance(userId, 2000)

	correct := true
	uow := newFixtureUow(f)
	require.NoError(t, uow.ContestRepository().CreateEntry(context.Background(), &entity.ContestEntry{
		Id:              uuid.New(),
		ContestId:       uuid.New(),
		UserId:          userId,
		PredictionValue: "2-1",
		IsCorrect:       &correct,
	}))
	_, err := f.token.Debit(context.Background(), userId, 1500, TransactionContext{Action: "contest_entry"})
	require.NoError(t, err)

	f.store.FailCreateUserBadge = true
	res, err := f.achievement.Evaluate(context.Background(), userId)
	require.NoError(t, err, "a failing award must not fail the sweep")
	assert.Empty(t, res.NewBadges)

	f.store.FailCreateUserBadge = false
	res, err = f.achievement.Evaluate(context.Background(), userId)
	require.NoError(t, err)
	assert.Len(t, res.NewBadges, 2)
}

func TestAwardXPLevelNeverDecreases(t *testing.T) {
	f := newFixture()
	userId := uuid.New()

	xp, err := f.achievement.AwardXP(context.Background(), userId, 2500)
	require.NoError(t, err)
	assert.Equal(t, 2500, xp.XpPoints)
	assert.Equal(t, 3, xp.Level)

	xp, err = f.achievement.AwardXP(context.Background(), userId, 100)
	require.NoError(t, err)
	assert.Equal(t, 2600, xp.XpPoints)
	assert.Equal(t, 3, xp.Level)

	assert.Equal(t, 2, f.publisher.topicCount(f.topics.XpAwarded))
}

func TestAwardXPConcurrentAwardsAllLand(t *testing.T) {
	f := newFixture()
	userId := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.achievement.AwardXP(context.Background(), userId, 100)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	xp, err := f.achievement.GetXP(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, 2000, xp.XpPoints, "no award may be lost to a concurrent one")
	assert.Equal(t, 3, xp.Level)
}

func TestLevelForXP(t *testing.T) {
	assert.Equal(t, 1, entity.LevelForXP(0))
	assert.Equal(t, 1, entity.LevelForXP(999))
	assert.Equal(t, 2, entity.LevelForXP(1000))
	assert.Equal(t, 11, entity.LevelForXP(10500))
}
