package dto

import (
	"predictplay-be/internal/entity"

	"github.com/google/uuid"
)

type RunAnalysisRequest struct {
	UserId    uuid.UUID              `json:"user_id" validate:"required"`
	ModelId   uuid.UUID              `json:"model_id" validate:"required"`
	ImageUrl  *string                `json:"image_url"`
	InputText *string                `json:"input_text"`
	Metadata  map[string]interface{} `json:"metadata"`
}

type RunAnalysisResponse struct {
	RequestId        uuid.UUID              `json:"request_id"`
	ModelId          uuid.UUID              `json:"model_id"`
	Status           string                 `json:"status"`
	TokensUsed       int                    `json:"tokens_used"`
	RemainingBalance int                    `json:"remaining_balance"`
	Result           *entity.AnalysisResult `json:"result,omitempty"`
}
