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

func TestDebitAndCreditRoundTrip(t *testing.T) {
	f := newFixture()
	userId := uuid.New()
	f.seedBalance(userId, 100)

	result, err := f.token.Debit(context.Background(), userId, 40, TransactionContext{Action: "test_spend"})
	require.NoError(t, err)
	assert.Equal(t, 60, result.NewBalance)

	err = f.token.Credit(context.Background(), userId, 40, TransactionContext{Action: "test_refund"})
	require.NoError(t, err)

	balance, err := f.token.GetBalance(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, 100, balance.Balance)
}

func TestDebitInsufficientFunds(t *testing.T) {
	f := newFixture()
	userId := uuid.New()
	f.seedBalance(userId, 10)

	_, err := f.token.Debit(context.Background(), userId, 50, TransactionContext{Action: "test_spend"})
	require.Error(t, err)

	var bizErr *serverutils.BusinessError
	require.True(t, errors.As(err, &bizErr))
	assert.Equal(t, serverutils.CodeInsufficientFunds, bizErr.Code)

	balance, err := f.token.GetBalance(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, 10, balance.Balance, "failed debit must not touch the balance")
}

func TestDebitUnknownUser(t *testing.T) {
	f := newFixture()

	_, err := f.token.Debit(context.Background(), uuid.New(), 5, TransactionContext{Action: "test_spend"})
	require.Error(t, err)

	var bizErr *serverutils.BusinessError
	require.True(t, errors.As(err, &bizErr))
	assert.Equal(t, serverutils.CodeNotFound, bizErr.Code)
}

func TestSpendReportsBeforeAndAfter(t *testing.T) {
	f := newFixture()
	userId := uuid.New()
	f.seedBalance(userId, 500)

	res, err := f.token.Spend(context.Background(), &dto.SpendTokensRequest{
		UserId: userId,
		Tokens: 500,
		Action: "premium_feature",
	})
	require.NoError(t, err)
	assert.Equal(t, 500, res.BalanceBefore)
	assert.Equal(t, 0, res.BalanceAfter)

	// Spending an exact balance down to zero is allowed; the next spend is not.
	_, err = f.token.Spend(context.Background(), &dto.SpendTokensRequest{
		UserId: userId,
		Tokens: 1,
		Action: "premium_feature",
	})
	var bizErr *serverutils.BusinessError
	require.True(t, errors.As(err, &bizErr))
	assert.Equal(t, serverutils.CodeInsufficientFunds, bizErr.Code)
}

func TestDebitAppendsDeductionTransaction(t *testing.T) {
	f := newFixture()
	userId := uuid.New()
	f.seedBalance(userId, 2000)

	_, err := f.token.Debit(context.Background(), userId, 600, TransactionContext{Action: "contest_entry"})
	require.NoError(t, err)
	_, err = f.token.Debit(context.Background(), userId, 500, TransactionContext{Action: "analyzer_run"})
	require.NoError(t, err)

	uow := newFixtureUow(f)
	total, err := uow.TokenRepository().SumDeductions(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, 1100, total)
}
