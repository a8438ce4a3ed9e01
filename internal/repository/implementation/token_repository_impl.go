package implementation

import (
	"context"
	"errors"

	"predictplay-be/internal/entity"
	"predictplay-be/internal/mapper"
	"predictplay-be/internal/model"
	"predictplay-be/internal/repository/contract"
	"predictplay-be/internal/repository/scope"
	"predictplay-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TokenRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TokenMapper
}

func NewTokenRepository(db *gorm.DB) contract.TokenRepository {
	return &TokenRepositoryImpl{
		db:     db,
		mapper: mapper.NewTokenMapper(),
	}
}

func (r *TokenRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TokenRepositoryImpl) GetBalance(ctx context.Context, userId uuid.UUID) (*entity.UserTokenBalance, error) {
	var m model.UserTokenBalance
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.BalanceToEntity(&m), nil
}

func (r *TokenRepositoryImpl) CreateBalance(ctx context.Context, balance *entity.UserTokenBalance) error {
	m := r.mapper.BalanceToModel(balance)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*balance = *r.mapper.BalanceToEntity(m)
	return nil
}

// DebitBalance decrements conditionally so concurrent debits cannot drive the
// balance below zero: the WHERE clause re-checks sufficiency at write time.
func (r *TokenRepositoryImpl) DebitBalance(ctx context.Context, userId uuid.UUID, amount int) (int, bool, error) {
	var newBalance int
	result := r.db.WithContext(ctx).Raw(`
		UPDATE user_token_balances
		SET balance = balance - ?, updated_at = now()
		WHERE user_id = ? AND balance >= ?
		RETURNING balance
	`, amount, userId, amount).Scan(&newBalance)

	if result.Error != nil {
		return 0, false, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, false, nil
	}
	return newBalance, true, nil
}

func (r *TokenRepositoryImpl) CreditBalance(ctx context.Context, userId uuid.UUID, amount int) (int, error) {
	var newBalance int
	result := r.db.WithContext(ctx).Raw(`
		INSERT INTO user_token_balances (user_id, balance, created_at, updated_at)
		VALUES (?, ?, now(), now())
		ON CONFLICT (user_id)
		DO UPDATE SET balance = user_token_balances.balance + EXCLUDED.balance, updated_at = now()
		RETURNING balance
	`, userId, amount).Scan(&newBalance)

	if result.Error != nil {
		return 0, result.Error
	}
	return newBalance, nil
}

func (r *TokenRepositoryImpl) CreateTransaction(ctx context.Context, tx *entity.TokenTransaction) error {
	m := r.mapper.TransactionToModel(tx)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*tx = *r.mapper.TransactionToEntity(m)
	return nil
}

func (r *TokenRepositoryImpl) FindTransactions(ctx context.Context, specs ...specification.Specification) ([]*entity.TokenTransaction, error) {
	var ms []*model.TokenTransaction
	query := r.applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByCreatedDesc), specs...)
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.mapper.TransactionsToEntities(ms), nil
}

func (r *TokenRepositoryImpl) SumDeductions(ctx context.Context, userId uuid.UUID) (int, error) {
	var total int
	err := r.db.WithContext(ctx).Model(&model.TokenTransaction{}).
		Where("user_id = ? AND type = ?", userId, string(entity.TransactionTypeDeduction)).
		Select("COALESCE(SUM(tokens_deducted), 0)").
		Scan(&total).Error
	return total, err
}
