package entity

import (
	"time"

	"github.com/google/uuid"
)

type ContestStatus string

const (
	ContestStatusActive ContestStatus = "active"
	ContestStatusClosed ContestStatus = "closed"
)

type Contest struct {
	Id             uuid.UUID
	Title          string
	Description    string
	Status         ContestStatus
	TokenCost      int
	MaxEntries     *int
	CurrentEntries int
	StartsAt       *time.Time
	EndsAt         *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ContestEntry is a user's single paid prediction in a contest. The identity
// tuple (contest, user, prediction card) is unique; a nil card id is its own
// identity, distinct from entries that carry a card.
type ContestEntry struct {
	Id               uuid.UUID
	ContestId        uuid.UUID
	UserId           uuid.UUID
	PredictionCardId *uuid.UUID
	PredictionValue  string
	ConfidenceLevel  int
	TokensSpent      int
	// IsCorrect stays nil until the entry is judged.
	IsCorrect *bool
	CreatedAt time.Time
}
