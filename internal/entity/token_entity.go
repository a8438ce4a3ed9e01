package entity

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TransactionTypeDeduction TransactionType = "deduction"
	TransactionTypeCredit    TransactionType = "credit"
)

// UserTokenBalance is the single source of truth for a user's spendable tokens.
// Balance never goes below zero at any committed state.
type UserTokenBalance struct {
	UserId    uuid.UUID
	Balance   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TokenTransaction is the append-only audit log of every debit/credit.
// It is never mutated or deleted and is not used to derive balances.
type TokenTransaction struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	TokensDeducted int
	Type           TransactionType
	Action         string
	RelatedModelId *uuid.UUID
	RelatedId      *uuid.UUID
	Metadata       map[string]interface{}
	CreatedAt      time.Time
}
