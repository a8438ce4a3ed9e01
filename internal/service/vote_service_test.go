package service

import (
	"context"
	"errors"
	"testing"

	"predictplay-be/internal/dto"
	"predictplay-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoteFlipKeepsOneRow(t *testing.T) {
	f := newFixture()
	userId := uuid.New()
	target := uuid.New()

	res, err := f.vote.Vote(context.Background(), &dto.VoteRequest{
		UserId:            userId,
		AnalyzerRequestId: &target,
		VoteType:          "up",
	})
	require.NoError(t, err)
	assert.Equal(t, "created", res.Action)

	res, err = f.vote.Vote(context.Background(), &dto.VoteRequest{
		UserId:            userId,
		AnalyzerRequestId: &target,
		VoteType:          "down",
	})
	require.NoError(t, err)
	assert.Equal(t, "updated", res.Action)
	assert.Equal(t, "down", res.VoteType)

	res, err = f.vote.Vote(context.Background(), &dto.VoteRequest{
		UserId:            userId,
		AnalyzerRequestId: &target,
		VoteType:          "down",
	})
	require.NoError(t, err)
	assert.Equal(t, "no_change", res.Action)

	uow := newFixtureUow(f)
	count, err := uow.VoteRepository().CountByUser(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "flipping a vote must not create a second row")
}

func TestVoteRequiresExactlyOneTarget(t *testing.T) {
	f := newFixture()
	userId := uuid.New()
	a := uuid.New()
	b := uuid.New()

	_, err := f.vote.Vote(context.Background(), &dto.VoteRequest{
		UserId:   userId,
		VoteType: "up",
	})
	var bizErr *serverutils.BusinessError
	require.True(t, errors.As(err, &bizErr))
	assert.Equal(t, serverutils.CodeInvalidTarget, bizErr.Code)

	_, err = f.vote.Vote(context.Background(), &dto.VoteRequest{
		UserId:            userId,
		AnalyzerRequestId: &a,
		PredictionCardId:  &b,
		VoteType:          "up",
	})
	require.True(t, errors.As(err, &bizErr))
	assert.Equal(t, serverutils.CodeInvalidTarget, bizErr.Code)
}

func TestVoteSeparateTargetsAreSeparateRows(t *testing.T) {
	f := newFixture()
	userId := uuid.New()
	request := uuid.New()
	card := uuid.New()

	_, err := f.vote.Vote(context.Background(), &dto.VoteRequest{
		UserId:            userId,
		AnalyzerRequestId: &request,
		VoteType:          "up",
	})
	require.NoError(t, err)

	res, err := f.vote.Vote(context.Background(), &dto.VoteRequest{
		UserId:           userId,
		PredictionCardId: &card,
		VoteType:         "up",
	})
	require.NoError(t, err)
	assert.Equal(t, "created", res.Action)

	uow := newFixtureUow(f)
	count, err := uow.VoteRepository().CountByUser(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestVoteQueuesAchievementSweepOnCreateOnly(t *testing.T) {
	f := newFixture()
	userId := uuid.New()
	target := uuid.New()

	_, err := f.vote.Vote(context.Background(), &dto.VoteRequest{
		UserId:            userId,
		AnalyzerRequestId: &target,
		VoteType:          "up",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, f.publisher.topicCount(f.topics.AchievementsEvaluate))

	_, err = f.vote.Vote(context.Background(), &dto.VoteRequest{
		UserId:            userId,
		AnalyzerRequestId: &target,
		VoteType:          "down",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, f.publisher.topicCount(f.topics.AchievementsEvaluate))
}
