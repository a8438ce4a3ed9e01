package implementation

import (
	"context"
	"errors"
	"time"

	"predictplay-be/internal/entity"
	"predictplay-be/internal/mapper"
	"predictplay-be/internal/model"
	"predictplay-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.VoteMapper
}

func NewVoteRepository(db *gorm.DB) contract.VoteRepository {
	return &VoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewVoteMapper(),
	}
}

func (r *VoteRepositoryImpl) FindByTarget(ctx context.Context, userId uuid.UUID, analyzerRequestId, predictionCardId *uuid.UUID) (*entity.SocialVote, error) {
	var m model.SocialVote
	query := r.db.WithContext(ctx).Where("user_id = ?", userId)
	if analyzerRequestId != nil {
		query = query.Where("analyzer_request_id = ?", *analyzerRequestId)
	} else {
		query = query.Where("prediction_card_id = ?", *predictionCardId)
	}
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *VoteRepositoryImpl) Create(ctx context.Context, vote *entity.SocialVote) error {
	m := r.mapper.ToModel(vote)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*vote = *r.mapper.ToEntity(m)
	return nil
}

func (r *VoteRepositoryImpl) UpdateVoteType(ctx context.Context, id uuid.UUID, voteType entity.VoteType) error {
	return r.db.WithContext(ctx).Model(&model.SocialVote{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"vote_type":  string(voteType),
			"updated_at": time.Now(),
		}).Error
}

func (r *VoteRepositoryImpl) CountByUser(ctx context.Context, userId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SocialVote{}).
		Where("user_id = ?", userId).
		Count(&count).Error
	return count, err
}
