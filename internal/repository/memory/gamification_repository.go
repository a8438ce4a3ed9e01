package memory

import (
	"context"
	"errors"
	"time"

	"predictplay-be/internal/entity"
	"predictplay-be/internal/repository/contract"

	"github.com/google/uuid"
)

type streakRepository struct {
	store *Store
}

func NewStreakRepository(store *Store) contract.StreakRepository {
	return &streakRepository{store: store}
}

func (r *streakRepository) FindByUser(ctx context.Context, userId uuid.UUID) (*entity.UserStreak, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	s, ok := r.store.streaks[userId]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *streakRepository) Upsert(ctx context.Context, streak *entity.UserStreak) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cp := *streak
	r.store.streaks[streak.UserId] = &cp
	return nil
}

type achievementRepository struct {
	store *Store
}

func NewAchievementRepository(store *Store) contract.AchievementRepository {
	return &achievementRepository{store: store}
}

func (r *achievementRepository) CreateDefinition(ctx context.Context, def *entity.BadgeDefinition) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cp := *def
	r.store.definitions = append(r.store.definitions, &cp)
	return nil
}

func (r *achievementRepository) FindAllDefinitions(ctx context.Context) ([]*entity.BadgeDefinition, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*entity.BadgeDefinition, 0, len(r.store.definitions))
	for _, def := range r.store.definitions {
		cp := *def
		out = append(out, &cp)
	}
	return out, nil
}

func (r *achievementRepository) FindUserBadges(ctx context.Context, userId uuid.UUID) ([]*entity.UserBadge, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []*entity.UserBadge
	for _, b := range r.store.badges {
		if b.UserId == userId {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *achievementRepository) HasBadge(ctx context.Context, userId, badgeId uuid.UUID) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, b := range r.store.badges {
		if b.UserId == userId && b.BadgeId == badgeId {
			return true, nil
		}
	}
	return false, nil
}

func (r *achievementRepository) CreateUserBadge(ctx context.Context, badge *entity.UserBadge) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.FailCreateUserBadge {
		return errors.New("badge insert failed")
	}

	for _, b := range r.store.badges {
		if b.UserId == badge.UserId && b.BadgeId == badge.BadgeId {
			return errors.New("duplicate user badge")
		}
	}

	cp := *badge
	r.store.badges = append(r.store.badges, &cp)
	return nil
}

func (r *achievementRepository) GetXP(ctx context.Context, userId uuid.UUID) (*entity.UserXP, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	xp, ok := r.store.xp[userId]
	if !ok {
		return nil, nil
	}
	cp := *xp
	return &cp, nil
}

func (r *achievementRepository) AddXP(ctx context.Context, userId uuid.UUID, points int) (*entity.UserXP, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	total := points
	level := 1
	if existing, ok := r.store.xp[userId]; ok {
		total += existing.XpPoints
		level = existing.Level
	}
	if computed := entity.LevelForXP(total); computed > level {
		level = computed
	}

	xp := &entity.UserXP{
		UserId:    userId,
		XpPoints:  total,
		Level:     level,
		UpdatedAt: time.Now(),
	}
	r.store.xp[userId] = xp
	cp := *xp
	return &cp, nil
}
