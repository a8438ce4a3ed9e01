package entity

import (
	"time"

	"github.com/google/uuid"
)

type AnalyzerRequestStatus string

const (
	AnalyzerRequestStatusProcessing AnalyzerRequestStatus = "processing"
	AnalyzerRequestStatusCompleted  AnalyzerRequestStatus = "completed"
	AnalyzerRequestStatusFailed     AnalyzerRequestStatus = "failed"
)

type RiskTier string

const (
	RiskTierLow      RiskTier = "low"
	RiskTierModerate RiskTier = "moderate"
	RiskTierHigh     RiskTier = "high"
)

type AnalyzerModel struct {
	Id        uuid.UUID
	Name      string
	Slug      string
	TokenCost int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AnalyzerRequest lifecycle: created as processing, moves to completed with a
// result payload. It never transitions backward.
type AnalyzerRequest struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	ModelId    uuid.UUID
	Status     AnalyzerRequestStatus
	TokensUsed int
	ImageUrl   *string
	InputText  *string
	Metadata   map[string]interface{}
	Result     *AnalysisResult
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AnalysisResult is the structured payload produced by the model collaborator.
type AnalysisResult struct {
	Confidence      float64  `json:"confidence"`
	Analysis        string   `json:"analysis"`
	Recommendations []string `json:"recommendations"`
	RiskTier        RiskTier `json:"risk_tier"`
	ValueRating     int      `json:"value_rating"`
}
