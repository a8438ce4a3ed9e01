package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTouchFirstActivityStartsStreak(t *testing.T) {
	f := newFixture()
	userId := uuid.New()

	res, err := f.streak.Touch(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, 1, res.CurrentStreak)
	assert.Equal(t, 1, res.LongestStreak)
	assert.True(t, res.IsNewRecord)
}

func TestTouchSameDayIsNoOp(t *testing.T) {
	f := newFixture()
	userId := uuid.New()

	_, err := f.streak.Touch(context.Background(), userId)
	require.NoError(t, err)

	f.clock.Advance(6 * time.Hour)

	res, err := f.streak.Touch(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, 1, res.CurrentStreak)
	assert.False(t, res.IsNewRecord)
}

func TestTouchConsecutiveDaysExtend(t *testing.T) {
	f := newFixture()
	userId := uuid.New()

	for day := 1; day <= 5; day++ {
		res, err := f.streak.Touch(context.Background(), userId)
		require.NoError(t, err)
		assert.Equal(t, day, res.CurrentStreak)
		f.clock.AdvanceDays(1)
	}
}

func TestTouchGapResetsStreak(t *testing.T) {
	f := newFixture()
	userId := uuid.New()

	_, err := f.streak.Touch(context.Background(), userId)
	require.NoError(t, err)
	f.clock.AdvanceDays(1)
	_, err = f.streak.Touch(context.Background(), userId)
	require.NoError(t, err)

	f.clock.AdvanceDays(3)

	res, err := f.streak.Touch(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, 1, res.CurrentStreak)
	assert.Equal(t, 2, res.LongestStreak, "longest streak never decreases")
	assert.False(t, res.IsNewRecord)
}

func TestTouchDaySevenQueuesAchievementSweep(t *testing.T) {
	f := newFixture()
	userId := uuid.New()

	for day := 1; day <= 6; day++ {
		_, err := f.streak.Touch(context.Background(), userId)
		require.NoError(t, err)
		f.clock.AdvanceDays(1)
	}
	assert.Equal(t, 0, f.publisher.topicCount(f.topics.AchievementsEvaluate))

	res, err := f.streak.Touch(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, 7, res.CurrentStreak)
	assert.Equal(t, 1, f.publisher.topicCount(f.topics.AchievementsEvaluate))

	// A repeated day-7 touch changes nothing and queues nothing new.
	res, err = f.streak.Touch(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, 7, res.CurrentStreak)
	assert.Equal(t, 1, f.publisher.topicCount(f.topics.AchievementsEvaluate))
}
