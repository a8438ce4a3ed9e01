package service

import (
	"context"
	"errors"
	"testing"

	"predictplay-be/internal/dto"
	"predictplay-be/internal/entity"
	"predictplay-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnterContestHappyPath(t *testing.T) {
	f := newFixture()
	userId := uuid.New()
	f.seedBalance(userId, 500)
	contest := f.seedContest(500, nil)

	res, err := f.contest.EnterContest(context.Background(), &dto.EnterContestRequest{
		UserId:          userId,
		ContestId:       contest.Id,
		PredictionValue: "2-1",
	})
	require.NoError(t, err)
	assert.Equal(t, 500, res.TokensSpent)
	assert.Equal(t, 0, res.RemainingBalance, "entry at exact balance drains it to zero")

	assert.Equal(t, 1, f.publisher.topicCount(f.topics.EntryCounted))

	// A second identical prediction is rejected, balance untouched.
	_, err = f.contest.EnterContest(context.Background(), &dto.EnterContestRequest{
		UserId:          userId,
		ContestId:       contest.Id,
		PredictionValue: "2-1",
	})
	var bizErr *serverutils.BusinessError
	require.True(t, errors.As(err, &bizErr))
	assert.Equal(t, serverutils.CodeDuplicateEntry, bizErr.Code)
	assert.Equal(t, fiber.StatusBadRequest, bizErr.Status)

	balance, err := f.token.GetBalance(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, 0, balance.Balance)
}

func TestEnterContestInsufficientFunds(t *testing.T) {
	f := newFixture()
	userId := uuid.New()
	f.seedBalance(userId, 10)
	contest := f.seedContest(50, nil)

	_, err := f.contest.EnterContest(context.Background(), &dto.EnterContestRequest{
		UserId:          userId,
		ContestId:       contest.Id,
		PredictionValue: "1-0",
	})
	var bizErr *serverutils.BusinessError
	require.True(t, errors.As(err, &bizErr))
	assert.Equal(t, serverutils.CodeInsufficientFunds, bizErr.Code)

	// No entry row, no transaction, balance untouched.
	uow := newFixtureUow(f)
	entry, err := uow.ContestRepository().FindEntry(context.Background(), contest.Id, userId, nil)
	require.NoError(t, err)
	assert.Nil(t, entry)

	balance, err := f.token.GetBalance(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, 10, balance.Balance)
}

func TestEnterContestClosedRejected(t *testing.T) {
	f := newFixture()
	userId := uuid.New()
	f.seedBalance(userId, 100)
	contest := f.seedContest(10, nil)

	closed := *contest
	closed.Id = uuid.New()
	closed.Status = entity.ContestStatusClosed
	require.NoError(t, newFixtureUow(f).ContestRepository().Create(context.Background(), &closed))

	_, err := f.contest.EnterContest(context.Background(), &dto.EnterContestRequest{
		UserId:          userId,
		ContestId:       closed.Id,
		PredictionValue: "0-0",
	})
	var bizErr *serverutils.BusinessError
	require.True(t, errors.As(err, &bizErr))
	assert.Equal(t, serverutils.CodeContestClosed, bizErr.Code)
	assert.Equal(t, fiber.StatusBadRequest, bizErr.Status)
}

func TestEnterContestFullRejected(t *testing.T) {
	f := newFixture()
	maxEntries := 1
	contest := f.seedContest(10, &maxEntries)

	first := uuid.New()
	f.seedBalance(first, 100)
	_, err := f.contest.EnterContest(context.Background(), &dto.EnterContestRequest{
		UserId:          first,
		ContestId:       contest.Id,
		PredictionValue: "3-0",
	})
	require.NoError(t, err)

	second := uuid.New()
	f.seedBalance(second, 100)
	_, err = f.contest.EnterContest(context.Background(), &dto.EnterContestRequest{
		UserId:          second,
		ContestId:       contest.Id,
		PredictionValue: "1-1",
	})
	var bizErr *serverutils.BusinessError
	require.True(t, errors.As(err, &bizErr))
	assert.Equal(t, serverutils.CodeContestFull, bizErr.Code)
	assert.Equal(t, fiber.StatusBadRequest, bizErr.Status)
}

func TestEnterContestRefundsWhenEntryInsertFails(t *testing.T) {
	f := newFixture()
	userId := uuid.New()
	f.seedBalance(userId, 100)
	contest := f.seedContest(60, nil)

	f.store.FailCreateEntry = true

	_, err := f.contest.EnterContest(context.Background(), &dto.EnterContestRequest{
		UserId:          userId,
		ContestId:       contest.Id,
		PredictionValue: "2-2",
	})
	var bizErr *serverutils.BusinessError
	require.True(t, errors.As(err, &bizErr))
	assert.Equal(t, serverutils.CodeEntryFailed, bizErr.Code)

	balance, err := f.token.GetBalance(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, 100, balance.Balance, "debit must be compensated when the entry insert fails")
}

func TestEnterContestDistinctCardsAllowed(t *testing.T) {
	f := newFixture()
	userId := uuid.New()
	f.seedBalance(userId, 100)
	contest := f.seedContest(10, nil)

	cardA := uuid.New()
	cardB := uuid.New()

	_, err := f.contest.EnterContest(context.Background(), &dto.EnterContestRequest{
		UserId:           userId,
		ContestId:        contest.Id,
		PredictionCardId: &cardA,
		PredictionValue:  "over",
	})
	require.NoError(t, err)

	_, err = f.contest.EnterContest(context.Background(), &dto.EnterContestRequest{
		UserId:           userId,
		ContestId:        contest.Id,
		PredictionCardId: &cardB,
		PredictionValue:  "under",
	})
	require.NoError(t, err, "different prediction cards are separate identities")

	_, err = f.contest.EnterContest(context.Background(), &dto.EnterContestRequest{
		UserId:           userId,
		ContestId:        contest.Id,
		PredictionCardId: &cardA,
		PredictionValue:  "over again",
	})
	var bizErr *serverutils.BusinessError
	require.True(t, errors.As(err, &bizErr))
	assert.Equal(t, serverutils.CodeDuplicateEntry, bizErr.Code)
	assert.Equal(t, fiber.StatusBadRequest, bizErr.Status)
}
