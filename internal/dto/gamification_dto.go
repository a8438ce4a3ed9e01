package dto

import (
	"github.com/google/uuid"
)

type TouchStreakRequest struct {
	UserId uuid.UUID `json:"user_id" validate:"required"`
}

type StreakResponse struct {
	UserId        uuid.UUID `json:"user_id"`
	CurrentStreak int       `json:"current_streak"`
	LongestStreak int       `json:"longest_streak"`
	IsNewRecord   bool      `json:"is_new_record"`
}

type CheckAchievementsRequest struct {
	UserId uuid.UUID `json:"user_id" validate:"required"`
}

type AwardedBadge struct {
	BadgeId     uuid.UUID `json:"badge_id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	XpReward    int       `json:"xp_reward"`
}

type CheckAchievementsResponse struct {
	UserId    uuid.UUID      `json:"user_id"`
	NewBadges []AwardedBadge `json:"new_badges"`
}

type LeaderboardEntry struct {
	UserId   uuid.UUID `json:"user_id"`
	XpPoints int       `json:"xp_points"`
	Rank     int       `json:"rank"`
}

type LeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
}
