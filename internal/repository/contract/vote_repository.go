package contract

import (
	"context"

	"predictplay-be/internal/entity"

	"github.com/google/uuid"
)

type VoteRepository interface {
	// FindByTarget looks up the user's vote on exactly one target; the unset
	// target id must be nil.
	FindByTarget(ctx context.Context, userId uuid.UUID, analyzerRequestId, predictionCardId *uuid.UUID) (*entity.SocialVote, error)
	Create(ctx context.Context, vote *entity.SocialVote) error
	UpdateVoteType(ctx context.Context, id uuid.UUID, voteType entity.VoteType) error
	CountByUser(ctx context.Context, userId uuid.UUID) (int64, error)
}
