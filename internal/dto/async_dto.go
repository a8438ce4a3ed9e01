package dto

import (
	"github.com/google/uuid"
)

// Payloads for the in-process follow-up queue. These carry the minimum needed
// for the consumer to redo the work; they are not the outward NATS events.

type EntryCountedMessage struct {
	ContestId uuid.UUID `json:"contest_id"`
	UserId    uuid.UUID `json:"user_id"`
}

type EvaluateAchievementsMessage struct {
	UserId uuid.UUID `json:"user_id"`
	Reason string    `json:"reason"`
}

type XpAwardedMessage struct {
	UserId   uuid.UUID `json:"user_id"`
	XpPoints int       `json:"xp_points"`
}
