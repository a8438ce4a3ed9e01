package dto

import (
	"github.com/google/uuid"
)

type EnterContestRequest struct {
	UserId           uuid.UUID  `json:"user_id" validate:"required"`
	ContestId        uuid.UUID  `json:"contest_id" validate:"required"`
	PredictionCardId *uuid.UUID `json:"prediction_card_id"`
	PredictionValue  string     `json:"prediction_value" validate:"required"`
	ConfidenceLevel  int        `json:"confidence_level" validate:"omitempty,min=1,max=5"`
}

type EnterContestResponse struct {
	EntryId          uuid.UUID `json:"entry_id"`
	ContestTitle     string    `json:"contest_title"`
	TokensSpent      int       `json:"tokens_spent"`
	RemainingBalance int       `json:"remaining_balance"`
}
