package service

import (
	"context"

	"predictplay-be/internal/dto"
	"predictplay-be/internal/entity"
	"predictplay-be/internal/pkg/logger"
	"predictplay-be/internal/pkg/serverutils"
	"predictplay-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// TransactionContext tags a ledger mutation with the domain action that
// caused it, for the append-only audit log.
type TransactionContext struct {
	Action         string
	RelatedModelId *uuid.UUID
	RelatedId      *uuid.UUID
	Metadata       map[string]interface{}
}

type DebitResult struct {
	NewBalance    int
	TransactionId uuid.UUID
}

type ITokenService interface {
	GetBalance(ctx context.Context, userId uuid.UUID) (*dto.BalanceResponse, error)
	Spend(ctx context.Context, req *dto.SpendTokensRequest) (*dto.SpendTokensResponse, error)

	// Debit authorizes and applies a spend: the conditional balance decrement
	// and the audit transaction commit together or not at all.
	Debit(ctx context.Context, userId uuid.UUID, amount int, txCtx TransactionContext) (*DebitResult, error)

	// Credit reverses a prior debit on compensation paths. Failures are
	// logged and returned but callers must not let them mask the primary
	// error that triggered the rollback.
	Credit(ctx context.Context, userId uuid.UUID, amount int, txCtx TransactionContext) error
}

type tokenService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewTokenService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) ITokenService {
	return &tokenService{
		uowFactory: uowFactory,
		log:        log,
	}
}

func (s *tokenService) GetBalance(ctx context.Context, userId uuid.UUID) (*dto.BalanceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	balance, err := uow.TokenRepository().GetBalance(ctx, userId)
	if err != nil {
		return nil, err
	}
	if balance == nil {
		return nil, serverutils.ErrNotFound("no token balance for user")
	}
	return &dto.BalanceResponse{
		UserId:  balance.UserId,
		Balance: balance.Balance,
	}, nil
}

func (s *tokenService) Debit(ctx context.Context, userId uuid.UUID, amount int, txCtx TransactionContext) (*DebitResult, error) {
	if amount < 0 {
		return nil, serverutils.ErrValidation("debit amount must not be negative")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	newBalance, ok, err := uow.TokenRepository().DebitBalance(ctx, userId, amount)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Distinguish a missing balance row from insufficient funds.
		balance, err := uow.TokenRepository().GetBalance(ctx, userId)
		if err != nil {
			return nil, err
		}
		if balance == nil {
			return nil, serverutils.ErrNotFound("no token balance for user")
		}
		return nil, serverutils.ErrInsufficientFunds("insufficient token balance")
	}

	tx := &entity.TokenTransaction{
		Id:             uuid.New(),
		UserId:         userId,
		TokensDeducted: amount,
		Type:           entity.TransactionTypeDeduction,
		Action:         txCtx.Action,
		RelatedModelId: txCtx.RelatedModelId,
		RelatedId:      txCtx.RelatedId,
		Metadata:       txCtx.Metadata,
	}
	if err := uow.TokenRepository().CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &DebitResult{
		NewBalance:    newBalance,
		TransactionId: tx.Id,
	}, nil
}

func (s *tokenService) Credit(ctx context.Context, userId uuid.UUID, amount int, txCtx TransactionContext) error {
	if amount <= 0 {
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		s.logCreditFailure(userId, amount, err)
		return err
	}
	defer uow.Rollback()

	if _, err := uow.TokenRepository().CreditBalance(ctx, userId, amount); err != nil {
		s.logCreditFailure(userId, amount, err)
		return err
	}

	tx := &entity.TokenTransaction{
		Id:             uuid.New(),
		UserId:         userId,
		TokensDeducted: -amount,
		Type:           entity.TransactionTypeCredit,
		Action:         txCtx.Action,
		RelatedModelId: txCtx.RelatedModelId,
		RelatedId:      txCtx.RelatedId,
		Metadata:       txCtx.Metadata,
	}
	if err := uow.TokenRepository().CreateTransaction(ctx, tx); err != nil {
		s.logCreditFailure(userId, amount, err)
		return err
	}

	if err := uow.Commit(); err != nil {
		s.logCreditFailure(userId, amount, err)
		return err
	}
	return nil
}

func (s *tokenService) logCreditFailure(userId uuid.UUID, amount int, err error) {
	s.log.Error("token", "compensating credit failed", map[string]interface{}{
		"user_id": userId.String(),
		"amount":  amount,
		"error":   err.Error(),
	})
}

func (s *tokenService) Spend(ctx context.Context, req *dto.SpendTokensRequest) (*dto.SpendTokensResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	balance, err := uow.TokenRepository().GetBalance(ctx, req.UserId)
	if err != nil {
		return nil, err
	}
	if balance == nil {
		return nil, serverutils.ErrNotFound("no token balance for user")
	}

	result, err := s.Debit(ctx, req.UserId, req.Tokens, TransactionContext{
		Action: req.Action,
	})
	if err != nil {
		return nil, err
	}

	return &dto.SpendTokensResponse{
		UserId:        req.UserId,
		Action:        req.Action,
		TokensSpent:   req.Tokens,
		BalanceBefore: result.NewBalance + req.Tokens,
		BalanceAfter:  result.NewBalance,
	}, nil
}
