package unitofwork

import (
	"context"
	"fmt"

	"predictplay-be/internal/repository/contract"
	"predictplay-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) TokenRepository() contract.TokenRepository {
	return implementation.NewTokenRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ContestRepository() contract.ContestRepository {
	return implementation.NewContestRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AnalyzerRepository() contract.AnalyzerRepository {
	return implementation.NewAnalyzerRepository(u.getDB())
}

func (u *UnitOfWorkImpl) StreakRepository() contract.StreakRepository {
	return implementation.NewStreakRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AchievementRepository() contract.AchievementRepository {
	return implementation.NewAchievementRepository(u.getDB())
}

func (u *UnitOfWorkImpl) VoteRepository() contract.VoteRepository {
	return implementation.NewVoteRepository(u.getDB())
}
