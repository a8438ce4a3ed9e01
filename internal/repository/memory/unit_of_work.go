package memory

import (
	"context"

	"predictplay-be/internal/repository/contract"
	"predictplay-be/internal/repository/unitofwork"
)

// unitOfWork satisfies the transactional contract over the in-memory store.
// Begin/Commit/Rollback are no-ops; the store applies writes immediately.
type unitOfWork struct {
	store *Store
}

func (u *unitOfWork) Begin(ctx context.Context) error { return nil }
func (u *unitOfWork) Commit() error                   { return nil }
func (u *unitOfWork) Rollback() error                 { return nil }

func (u *unitOfWork) TokenRepository() contract.TokenRepository {
	return NewTokenRepository(u.store)
}

func (u *unitOfWork) ContestRepository() contract.ContestRepository {
	return NewContestRepository(u.store)
}

func (u *unitOfWork) AnalyzerRepository() contract.AnalyzerRepository {
	return NewAnalyzerRepository(u.store)
}

func (u *unitOfWork) StreakRepository() contract.StreakRepository {
	return NewStreakRepository(u.store)
}

func (u *unitOfWork) AchievementRepository() contract.AchievementRepository {
	return NewAchievementRepository(u.store)
}

func (u *unitOfWork) VoteRepository() contract.VoteRepository {
	return NewVoteRepository(u.store)
}

type repositoryFactory struct {
	store *Store
}

func NewRepositoryFactory(store *Store) unitofwork.RepositoryFactory {
	return &repositoryFactory{store: store}
}

func (f *repositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &unitOfWork{store: f.store}
}
