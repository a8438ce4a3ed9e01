package contract

import (
	"context"

	"predictplay-be/internal/entity"

	"github.com/google/uuid"
)

type AchievementRepository interface {
	CreateDefinition(ctx context.Context, def *entity.BadgeDefinition) error
	FindAllDefinitions(ctx context.Context) ([]*entity.BadgeDefinition, error)

	FindUserBadges(ctx context.Context, userId uuid.UUID) ([]*entity.UserBadge, error)
	HasBadge(ctx context.Context, userId, badgeId uuid.UUID) (bool, error)
	CreateUserBadge(ctx context.Context, badge *entity.UserBadge) error

	// GetXP returns nil when the user has no XP row yet.
	GetXP(ctx context.Context, userId uuid.UUID) (*entity.UserXP, error)

	// AddXP adds points to the running total and recomputes the level from
	// the post-addition total in the same write. The level only moves up.
	AddXP(ctx context.Context, userId uuid.UUID, points int) (*entity.UserXP, error)
}
