package contract

import (
	"context"

	"predictplay-be/internal/entity"
	"predictplay-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ContestRepository interface {
	Create(ctx context.Context, contest *entity.Contest) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Contest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Contest, error)

	// FindEntry resolves the (contest, user, prediction card) identity; a nil
	// card id only matches entries whose card column is NULL.
	FindEntry(ctx context.Context, contestId, userId uuid.UUID, predictionCardId *uuid.UUID) (*entity.ContestEntry, error)
	CreateEntry(ctx context.Context, entry *entity.ContestEntry) error
	CountEntries(ctx context.Context, specs ...specification.Specification) (int64, error)

	// IncrementEntryCount bumps current_entries; callers treat failures as
	// advisory (logged, not surfaced).
	IncrementEntryCount(ctx context.Context, contestId uuid.UUID) error

	// Judged-entry aggregates feeding the achievement predicates.
	CountJudged(ctx context.Context, userId uuid.UUID) (judged int64, correct int64, err error)
	HasCorrectEntry(ctx context.Context, userId uuid.UUID) (bool, error)
}
