package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeContestEntered    = "CONTEST_ENTERED"
	TypeAnalysisCompleted = "ANALYSIS_COMPLETED"
	TypeBadgeAwarded      = "BADGE_AWARDED"
	TypeStreakExtended    = "STREAK_EXTENDED"
)

func NewContestEntered(userId, contestId, entryId uuid.UUID, tokensSpent int) Event {
	return BaseEvent{
		Type: TypeContestEntered,
		Data: map[string]interface{}{
			"user_id":      userId.String(),
			"contest_id":   contestId.String(),
			"entry_id":     entryId.String(),
			"tokens_spent": tokensSpent,
		},
		OccurredAt: time.Now(),
	}
}

func NewAnalysisCompleted(userId, modelId, requestId uuid.UUID, tokensUsed int) Event {
	return BaseEvent{
		Type: TypeAnalysisCompleted,
		Data: map[string]interface{}{
			"user_id":     userId.String(),
			"model_id":    modelId.String(),
			"request_id":  requestId.String(),
			"tokens_used": tokensUsed,
		},
		OccurredAt: time.Now(),
	}
}

func NewBadgeAwarded(userId, badgeId uuid.UUID, slug string, xpReward int) Event {
	return BaseEvent{
		Type: TypeBadgeAwarded,
		Data: map[string]interface{}{
			"user_id":   userId.String(),
			"badge_id":  badgeId.String(),
			"badge":     slug,
			"xp_reward": xpReward,
		},
		OccurredAt: time.Now(),
	}
}

func NewStreakExtended(userId uuid.UUID, currentStreak, longestStreak int, isNewRecord bool) Event {
	return BaseEvent{
		Type: TypeStreakExtended,
		Data: map[string]interface{}{
			"user_id":        userId.String(),
			"current_streak": currentStreak,
			"longest_streak": longestStreak,
			"is_new_record":  isNewRecord,
		},
		OccurredAt: time.Now(),
	}
}
