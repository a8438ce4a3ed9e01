package contract

import (
	"context"

	"predictplay-be/internal/entity"

	"github.com/google/uuid"
)

type StreakRepository interface {
	// FindByUser returns nil when the user has no streak row yet.
	FindByUser(ctx context.Context, userId uuid.UUID) (*entity.UserStreak, error)
	Upsert(ctx context.Context, streak *entity.UserStreak) error
}
