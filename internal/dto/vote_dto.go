package dto

import (
	"github.com/google/uuid"
)

type VoteRequest struct {
	UserId            uuid.UUID  `json:"user_id" validate:"required"`
	AnalyzerRequestId *uuid.UUID `json:"analyzer_request_id"`
	PredictionCardId  *uuid.UUID `json:"prediction_card_id"`
	VoteType          string     `json:"vote_type" validate:"required,oneof=up down"`
}

type VoteResponse struct {
	VoteId   uuid.UUID `json:"vote_id"`
	VoteType string    `json:"vote_type"`
	Action   string    `json:"action"` // created | updated | no_change
}
