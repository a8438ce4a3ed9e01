package entity

import (
	"time"

	"github.com/google/uuid"
)

type VoteType string

const (
	VoteTypeUp   VoteType = "up"
	VoteTypeDown VoteType = "down"
)

// SocialVote targets exactly one of an analyzer request or a prediction card.
// A second vote on the same target flips VoteType in place.
type SocialVote struct {
	Id                uuid.UUID
	UserId            uuid.UUID
	AnalyzerRequestId *uuid.UUID
	PredictionCardId  *uuid.UUID
	VoteType          VoteType
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
