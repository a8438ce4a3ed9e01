package implementation

import (
	"context"
	"errors"

	"predictplay-be/internal/entity"
	"predictplay-be/internal/mapper"
	"predictplay-be/internal/model"
	"predictplay-be/internal/repository/contract"
	"predictplay-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContestRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContestMapper
}

func NewContestRepository(db *gorm.DB) contract.ContestRepository {
	return &ContestRepositoryImpl{
		db:     db,
		mapper: mapper.NewContestMapper(),
	}
}

func (r *ContestRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ContestRepositoryImpl) Create(ctx context.Context, contest *entity.Contest) error {
	m := r.mapper.ToModel(contest)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*contest = *r.mapper.ToEntity(m)
	return nil
}

func (r *ContestRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Contest, error) {
	var m model.Contest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ContestRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Contest, error) {
	var ms []*model.Contest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(ms), nil
}

func (r *ContestRepositoryImpl) FindEntry(ctx context.Context, contestId, userId uuid.UUID, predictionCardId *uuid.UUID) (*entity.ContestEntry, error) {
	var m model.ContestEntry
	query := r.db.WithContext(ctx).Where("contest_id = ? AND user_id = ?", contestId, userId)
	if predictionCardId != nil {
		query = query.Where("prediction_card_id = ?", *predictionCardId)
	} else {
		query = query.Where("prediction_card_id IS NULL")
	}
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.EntryToEntity(&m), nil
}

func (r *ContestRepositoryImpl) CreateEntry(ctx context.Context, entry *entity.ContestEntry) error {
	m := r.mapper.EntryToModel(entry)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.EntryToEntity(m)
	return nil
}

func (r *ContestRepositoryImpl) CountEntries(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ContestEntry{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ContestRepositoryImpl) IncrementEntryCount(ctx context.Context, contestId uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Contest{}).
		Where("id = ?", contestId).
		UpdateColumn("current_entries", gorm.Expr("current_entries + 1")).Error
}

func (r *ContestRepositoryImpl) CountJudged(ctx context.Context, userId uuid.UUID) (int64, int64, error) {
	var result struct {
		Judged  int64
		Correct int64
	}
	err := r.db.WithContext(ctx).Model(&model.ContestEntry{}).
		Where("user_id = ? AND is_correct IS NOT NULL", userId).
		Select("COUNT(*) as judged, COUNT(*) FILTER (WHERE is_correct) as correct").
		Scan(&result).Error
	if err != nil {
		return 0, 0, err
	}
	return result.Judged, result.Correct, nil
}

func (r *ContestRepositoryImpl) HasCorrectEntry(ctx context.Context, userId uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ContestEntry{}).
		Where("user_id = ? AND is_correct = true", userId).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
