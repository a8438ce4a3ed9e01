package memory

import (
	"context"
	"errors"
	"time"

	"predictplay-be/internal/entity"
	"predictplay-be/internal/repository/contract"

	"github.com/google/uuid"
)

type voteRepository struct {
	store *Store
}

func NewVoteRepository(store *Store) contract.VoteRepository {
	return &voteRepository{store: store}
}

func (r *voteRepository) FindByTarget(ctx context.Context, userId uuid.UUID, analyzerRequestId, predictionCardId *uuid.UUID) (*entity.SocialVote, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, v := range r.store.votes {
		if v.UserId != userId {
			continue
		}
		if analyzerRequestId != nil {
			if v.AnalyzerRequestId != nil && *v.AnalyzerRequestId == *analyzerRequestId {
				cp := *v
				return &cp, nil
			}
			continue
		}
		if v.PredictionCardId != nil && predictionCardId != nil && *v.PredictionCardId == *predictionCardId {
			cp := *v
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *voteRepository) Create(ctx context.Context, vote *entity.SocialVote) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cp := *vote
	r.store.votes = append(r.store.votes, &cp)
	return nil
}

func (r *voteRepository) UpdateVoteType(ctx context.Context, id uuid.UUID, voteType entity.VoteType) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, v := range r.store.votes {
		if v.Id == id {
			v.VoteType = voteType
			v.UpdatedAt = time.Now()
			return nil
		}
	}
	return errors.New("vote not found")
}

func (r *voteRepository) CountByUser(ctx context.Context, userId uuid.UUID) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var count int64
	for _, v := range r.store.votes {
		if v.UserId == userId {
			count++
		}
	}
	return count, nil
}
