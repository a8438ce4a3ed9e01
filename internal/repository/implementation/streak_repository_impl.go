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
	"gorm.io/gorm/clause"
)

type StreakRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GamificationMapper
}

func NewStreakRepository(db *gorm.DB) contract.StreakRepository {
	return &StreakRepositoryImpl{
		db:     db,
		mapper: mapper.NewGamificationMapper(),
	}
}

func (r *StreakRepositoryImpl) FindByUser(ctx context.Context, userId uuid.UUID) (*entity.UserStreak, error) {
	var m model.UserStreak
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.StreakToEntity(&m), nil
}

func (r *StreakRepositoryImpl) Upsert(ctx context.Context, streak *entity.UserStreak) error {
	m := r.mapper.StreakToModel(streak)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"current_streak", "longest_streak", "last_activity_date", "updated_at",
		}),
	}).Create(m).Error
}
