package memory

import (
	"sync"

	"predictplay-be/internal/entity"
	"predictplay-be/internal/repository/specification"

	"github.com/google/uuid"
)

// Store is a single in-memory dataset shared by the memory repositories. It
// backs service tests and local development without Postgres.
type Store struct {
	mu sync.RWMutex

	balances     map[uuid.UUID]*entity.UserTokenBalance
	transactions []*entity.TokenTransaction

	contests map[uuid.UUID]*entity.Contest
	entries  []*entity.ContestEntry

	models   map[uuid.UUID]*entity.AnalyzerModel
	requests map[uuid.UUID]*entity.AnalyzerRequest

	streaks map[uuid.UUID]*entity.UserStreak

	xp          map[uuid.UUID]*entity.UserXP
	definitions []*entity.BadgeDefinition
	badges      []*entity.UserBadge

	votes []*entity.SocialVote

	// Failure injection for exercising compensation paths.
	FailCreateEntry      bool
	FailCreateUserBadge  bool
	FailCreditBalance    bool
	FailIncrementEntries bool
}

func NewStore() *Store {
	return &Store{
		balances: make(map[uuid.UUID]*entity.UserTokenBalance),
		contests: make(map[uuid.UUID]*entity.Contest),
		models:   make(map[uuid.UUID]*entity.AnalyzerModel),
		requests: make(map[uuid.UUID]*entity.AnalyzerRequest),
		streaks:  make(map[uuid.UUID]*entity.UserStreak),
		xp:       make(map[uuid.UUID]*entity.UserXP),
	}
}

// matchByID extracts the target id from a ByID specification, if present.
func matchByID(specs []specification.Specification) (uuid.UUID, bool) {
	for _, s := range specs {
		if byID, ok := s.(specification.ByID); ok {
			return byID.ID, true
		}
	}
	return uuid.Nil, false
}

func matchByUserID(specs []specification.Specification) (uuid.UUID, bool) {
	for _, s := range specs {
		if byUser, ok := s.(specification.ByUserID); ok {
			return byUser.UserID, true
		}
	}
	return uuid.Nil, false
}

func matchFilter(specs []specification.Specification, field string) (interface{}, bool) {
	for _, s := range specs {
		if f, ok := s.(specification.FilterBy); ok && f.Field == field {
			return f.Value, true
		}
	}
	return nil, false
}
