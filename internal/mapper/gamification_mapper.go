package mapper

import (
	"predictplay-be/internal/entity"
	"predictplay-be/internal/model"
)

type GamificationMapper struct{}

func NewGamificationMapper() *GamificationMapper {
	return &GamificationMapper{}
}

func (m *GamificationMapper) StreakToEntity(s *model.UserStreak) *entity.UserStreak {
	if s == nil {
		return nil
	}
	return &entity.UserStreak{
		UserId:           s.UserId,
		CurrentStreak:    s.CurrentStreak,
		LongestStreak:    s.LongestStreak,
		LastActivityDate: s.LastActivityDate,
		UpdatedAt:        s.UpdatedAt,
	}
}

func (m *GamificationMapper) StreakToModel(s *entity.UserStreak) *model.UserStreak {
	if s == nil {
		return nil
	}
	return &model.UserStreak{
		UserId:           s.UserId,
		CurrentStreak:    s.CurrentStreak,
		LongestStreak:    s.LongestStreak,
		LastActivityDate: s.LastActivityDate,
		UpdatedAt:        s.UpdatedAt,
	}
}

func (m *GamificationMapper) XPToEntity(x *model.UserXP) *entity.UserXP {
	if x == nil {
		return nil
	}
	return &entity.UserXP{
		UserId:    x.UserId,
		XpPoints:  x.XpPoints,
		Level:     x.Level,
		UpdatedAt: x.UpdatedAt,
	}
}

func (m *GamificationMapper) XPToModel(x *entity.UserXP) *model.UserXP {
	if x == nil {
		return nil
	}
	return &model.UserXP{
		UserId:    x.UserId,
		XpPoints:  x.XpPoints,
		Level:     x.Level,
		UpdatedAt: x.UpdatedAt,
	}
}

func (m *GamificationMapper) BadgeDefinitionToEntity(b *model.BadgeDefinition) *entity.BadgeDefinition {
	if b == nil {
		return nil
	}
	return &entity.BadgeDefinition{
		Id:          b.Id,
		Slug:        b.Slug,
		Name:        b.Name,
		Description: b.Description,
		XpReward:    b.XpReward,
		CreatedAt:   b.CreatedAt,
	}
}

func (m *GamificationMapper) BadgeDefinitionsToEntities(bs []*model.BadgeDefinition) []*entity.BadgeDefinition {
	out := make([]*entity.BadgeDefinition, 0, len(bs))
	for _, b := range bs {
		out = append(out, m.BadgeDefinitionToEntity(b))
	}
	return out
}

func (m *GamificationMapper) BadgeDefinitionToModel(b *entity.BadgeDefinition) *model.BadgeDefinition {
	if b == nil {
		return nil
	}
	return &model.BadgeDefinition{
		Id:          b.Id,
		Slug:        b.Slug,
		Name:        b.Name,
		Description: b.Description,
		XpReward:    b.XpReward,
		CreatedAt:   b.CreatedAt,
	}
}

func (m *GamificationMapper) UserBadgeToEntity(b *model.UserBadge) *entity.UserBadge {
	if b == nil {
		return nil
	}
	return &entity.UserBadge{
		Id:       b.Id,
		UserId:   b.UserId,
		BadgeId:  b.BadgeId,
		EarnedAt: b.EarnedAt,
	}
}

func (m *GamificationMapper) UserBadgesToEntities(bs []*model.UserBadge) []*entity.UserBadge {
	out := make([]*entity.UserBadge, 0, len(bs))
	for _, b := range bs {
		out = append(out, m.UserBadgeToEntity(b))
	}
	return out
}

func (m *GamificationMapper) UserBadgeToModel(b *entity.UserBadge) *model.UserBadge {
	if b == nil {
		return nil
	}
	return &model.UserBadge{
		Id:       b.Id,
		UserId:   b.UserId,
		BadgeId:  b.BadgeId,
		EarnedAt: b.EarnedAt,
	}
}
