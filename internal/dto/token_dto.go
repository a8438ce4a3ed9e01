package dto

import (
	"github.com/google/uuid"
)

type BalanceResponse struct {
	UserId  uuid.UUID `json:"user_id"`
	Balance int       `json:"balance"`
}

type SpendTokensRequest struct {
	UserId uuid.UUID `json:"user_id" validate:"required"`
	Tokens int       `json:"tokens" validate:"required,gt=0"`
	Action string    `json:"action" validate:"required"`
}

type SpendTokensResponse struct {
	UserId        uuid.UUID `json:"user_id"`
	Action        string    `json:"action"`
	TokensSpent   int       `json:"tokens_spent"`
	BalanceBefore int       `json:"balance_before"`
	BalanceAfter  int       `json:"balance_after"`
}
