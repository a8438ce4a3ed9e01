package contract

import (
	"context"

	"predictplay-be/internal/entity"
	"predictplay-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TokenRepository interface {
	// GetBalance returns nil when no balance row exists for the user.
	GetBalance(ctx context.Context, userId uuid.UUID) (*entity.UserTokenBalance, error)
	CreateBalance(ctx context.Context, balance *entity.UserTokenBalance) error

	// DebitBalance applies a conditional decrement: the update only lands when
	// the stored balance covers the amount. ok=false means insufficient funds
	// (or no row); the balance row is untouched in that case.
	DebitBalance(ctx context.Context, userId uuid.UUID, amount int) (newBalance int, ok bool, err error)

	// CreditBalance increments the balance, creating the row at the credited
	// amount if the user has none yet.
	CreditBalance(ctx context.Context, userId uuid.UUID, amount int) (newBalance int, err error)

	CreateTransaction(ctx context.Context, tx *entity.TokenTransaction) error
	FindTransactions(ctx context.Context, specs ...specification.Specification) ([]*entity.TokenTransaction, error)

	// SumDeductions totals tokens_deducted across deduction transactions.
	SumDeductions(ctx context.Context, userId uuid.UUID) (int, error)
}
