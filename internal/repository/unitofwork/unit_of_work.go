package unitofwork

import (
	"context"

	"predictplay-be/internal/repository/contract"
)

// UnitOfWork scopes a group of repository writes to a single transaction.
// Repositories obtained before Begin operate directly on the shared handle;
// after Begin they bind to the active transaction until Commit or Rollback.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	TokenRepository() contract.TokenRepository
	ContestRepository() contract.ContestRepository
	AnalyzerRepository() contract.AnalyzerRepository
	StreakRepository() contract.StreakRepository
	AchievementRepository() contract.AchievementRepository
	VoteRepository() contract.VoteRepository
}
