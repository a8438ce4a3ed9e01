package memory

import (
	"context"
	"errors"

	"predictplay-be/internal/entity"
	"predictplay-be/internal/repository/contract"
	"predictplay-be/internal/repository/specification"

	"github.com/google/uuid"
)

type contestRepository struct {
	store *Store
}

func NewContestRepository(store *Store) contract.ContestRepository {
	return &contestRepository{store: store}
}

func (r *contestRepository) Create(ctx context.Context, contest *entity.Contest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cp := *contest
	r.store.contests[contest.Id] = &cp
	return nil
}

func (r *contestRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Contest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if id, ok := matchByID(specs); ok {
		if c, found := r.store.contests[id]; found {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *contestRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Contest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	status, filterStatus := matchFilter(specs, "status")

	var out []*entity.Contest
	for _, c := range r.store.contests {
		if filterStatus && string(c.Status) != status.(string) {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *contestRepository) FindEntry(ctx context.Context, contestId, userId uuid.UUID, predictionCardId *uuid.UUID) (*entity.ContestEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, e := range r.store.entries {
		if e.ContestId != contestId || e.UserId != userId {
			continue
		}
		if !sameCard(e.PredictionCardId, predictionCardId) {
			continue
		}
		cp := *e
		return &cp, nil
	}
	return nil, nil
}

func sameCard(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (r *contestRepository) CreateEntry(ctx context.Context, entry *entity.ContestEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.FailCreateEntry {
		return errors.New("entry insert failed")
	}

	cp := *entry
	r.store.entries = append(r.store.entries, &cp)
	return nil
}

func (r *contestRepository) CountEntries(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	contestId, filterContest := matchFilter(specs, "contest_id")

	var count int64
	for _, e := range r.store.entries {
		if filterContest && e.ContestId != contestId.(uuid.UUID) {
			continue
		}
		count++
	}
	return count, nil
}

func (r *contestRepository) IncrementEntryCount(ctx context.Context, contestId uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.FailIncrementEntries {
		return errors.New("increment failed")
	}

	c, ok := r.store.contests[contestId]
	if !ok {
		return errors.New("contest not found")
	}
	c.CurrentEntries++
	return nil
}

func (r *contestRepository) CountJudged(ctx context.Context, userId uuid.UUID) (int64, int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var judged, correct int64
	for _, e := range r.store.entries {
		if e.UserId != userId || e.IsCorrect == nil {
			continue
		}
		judged++
		if *e.IsCorrect {
			correct++
		}
	}
	return judged, correct, nil
}

func (r *contestRepository) HasCorrectEntry(ctx context.Context, userId uuid.UUID) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, e := range r.store.entries {
		if e.UserId == userId && e.IsCorrect != nil && *e.IsCorrect {
			return true, nil
		}
	}
	return false, nil
}
