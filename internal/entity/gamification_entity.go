package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserStreak tracks consecutive calendar days with recorded activity.
// LastActivityDate carries no time component; the row mutates at most once per day.
type UserStreak struct {
	UserId           uuid.UUID
	CurrentStreak    int
	LongestStreak    int
	LastActivityDate time.Time
	UpdatedAt        time.Time
}

type UserXP struct {
	UserId    uuid.UUID
	XpPoints  int
	Level     int
	UpdatedAt time.Time
}

// XpPerLevel is the points span of one level.
const XpPerLevel = 1000

// LevelForXP is the canonical leveling function.
func LevelForXP(xpPoints int) int {
	return 1 + xpPoints/XpPerLevel
}

type BadgeDefinition struct {
	Id          uuid.UUID
	Slug        string
	Name        string
	Description string
	XpReward    int
	CreatedAt   time.Time
}

// UserBadge is awarded once per badge per user and never deleted.
type UserBadge struct {
	Id       uuid.UUID
	UserId   uuid.UUID
	BadgeId  uuid.UUID
	EarnedAt time.Time
}

// Badge slugs evaluated by the achievement engine.
const (
	BadgeFirstWin        = "first_win"
	BadgeStreakMaster    = "streak_master"
	BadgeContestChampion = "contest_champion"
	BadgeSocialButterfly = "social_butterfly"
	BadgeHighRoller      = "high_roller"
	BadgeAccuracyAce     = "accuracy_ace"
)
