package memory

import (
	"context"
	"errors"

	"predictplay-be/internal/entity"
	"predictplay-be/internal/repository/contract"
	"predictplay-be/internal/repository/specification"

	"github.com/google/uuid"
)

type tokenRepository struct {
	store *Store
}

func NewTokenRepository(store *Store) contract.TokenRepository {
	return &tokenRepository{store: store}
}

func (r *tokenRepository) GetBalance(ctx context.Context, userId uuid.UUID) (*entity.UserTokenBalance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	b, ok := r.store.balances[userId]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *tokenRepository) CreateBalance(ctx context.Context, balance *entity.UserTokenBalance) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cp := *balance
	r.store.balances[balance.UserId] = &cp
	return nil
}

func (r *tokenRepository) DebitBalance(ctx context.Context, userId uuid.UUID, amount int) (int, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	b, ok := r.store.balances[userId]
	if !ok || b.Balance < amount {
		return 0, false, nil
	}
	b.Balance -= amount
	return b.Balance, true, nil
}

func (r *tokenRepository) CreditBalance(ctx context.Context, userId uuid.UUID, amount int) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.FailCreditBalance {
		return 0, errors.New("credit failed")
	}

	b, ok := r.store.balances[userId]
	if !ok {
		b = &entity.UserTokenBalance{UserId: userId}
		r.store.balances[userId] = b
	}
	b.Balance += amount
	return b.Balance, nil
}

func (r *tokenRepository) CreateTransaction(ctx context.Context, tx *entity.TokenTransaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cp := *tx
	r.store.transactions = append(r.store.transactions, &cp)
	return nil
}

func (r *tokenRepository) FindTransactions(ctx context.Context, specs ...specification.Specification) ([]*entity.TokenTransaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	userId, filterUser := matchByUserID(specs)

	var out []*entity.TokenTransaction
	for _, tx := range r.store.transactions {
		if filterUser && tx.UserId != userId {
			continue
		}
		cp := *tx
		out = append(out, &cp)
	}
	return out, nil
}

func (r *tokenRepository) SumDeductions(ctx context.Context, userId uuid.UUID) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	total := 0
	for _, tx := range r.store.transactions {
		if tx.UserId == userId && tx.Type == entity.TransactionTypeDeduction {
			total += tx.TokensDeducted
		}
	}
	return total, nil
}
