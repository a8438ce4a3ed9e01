package implementation

import (
	"context"
	"errors"

	"predictplay-be/internal/entity"
	"predictplay-be/internal/mapper"
	"predictplay-be/internal/model"
	"predictplay-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AchievementRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GamificationMapper
}

func NewAchievementRepository(db *gorm.DB) contract.AchievementRepository {
	return &AchievementRepositoryImpl{
		db:     db,
		mapper: mapper.NewGamificationMapper(),
	}
}

func (r *AchievementRepositoryImpl) CreateDefinition(ctx context.Context, def *entity.BadgeDefinition) error {
	m := r.mapper.BadgeDefinitionToModel(def)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*def = *r.mapper.BadgeDefinitionToEntity(m)
	return nil
}

func (r *AchievementRepositoryImpl) FindAllDefinitions(ctx context.Context) ([]*entity.BadgeDefinition, error) {
	var ms []*model.BadgeDefinition
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.mapper.BadgeDefinitionsToEntities(ms), nil
}

func (r *AchievementRepositoryImpl) FindUserBadges(ctx context.Context, userId uuid.UUID) ([]*entity.UserBadge, error) {
	var ms []*model.UserBadge
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.mapper.UserBadgesToEntities(ms), nil
}

func (r *AchievementRepositoryImpl) HasBadge(ctx context.Context, userId, badgeId uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.UserBadge{}).
		Where("user_id = ? AND badge_id = ?", userId, badgeId).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AchievementRepositoryImpl) CreateUserBadge(ctx context.Context, badge *entity.UserBadge) error {
	m := r.mapper.UserBadgeToModel(badge)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*badge = *r.mapper.UserBadgeToEntity(m)
	return nil
}

func (r *AchievementRepositoryImpl) GetXP(ctx context.Context, userId uuid.UUID) (*entity.UserXP, error) {
	var m model.UserXP
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.XPToEntity(&m), nil
}

// AddXP increments the total in place so concurrent awards cannot lose
// points, and derives the level from the post-addition total in the same
// statement; GREATEST keeps the level monotonic.
func (r *AchievementRepositoryImpl) AddXP(ctx context.Context, userId uuid.UUID, points int) (*entity.UserXP, error) {
	var m model.UserXP
	result := r.db.WithContext(ctx).Raw(`
		INSERT INTO user_xp (user_id, xp_points, level, updated_at)
		VALUES (?, ?, 1 + ? / ?, now())
		ON CONFLICT (user_id)
		DO UPDATE SET
			xp_points = user_xp.xp_points + EXCLUDED.xp_points,
			level = GREATEST(user_xp.level, 1 + (user_xp.xp_points + EXCLUDED.xp_points) / ?),
			updated_at = now()
		RETURNING user_id, xp_points, level, updated_at
	`, userId, points, points, entity.XpPerLevel, entity.XpPerLevel).Scan(&m)

	if result.Error != nil {
		return nil, result.Error
	}
	return r.mapper.XPToEntity(&m), nil
}
