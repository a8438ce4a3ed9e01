package mapper

import (
	"predictplay-be/internal/entity"
	"predictplay-be/internal/model"
)

type ContestMapper struct{}

func NewContestMapper() *ContestMapper {
	return &ContestMapper{}
}

func (m *ContestMapper) ToEntity(c *model.Contest) *entity.Contest {
	if c == nil {
		return nil
	}
	return &entity.Contest{
		Id:             c.Id,
		Title:          c.Title,
		Description:    c.Description,
		Status:         entity.ContestStatus(c.Status),
		TokenCost:      c.TokenCost,
		MaxEntries:     c.MaxEntries,
		CurrentEntries: c.CurrentEntries,
		StartsAt:       c.StartsAt,
		EndsAt:         c.EndsAt,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func (m *ContestMapper) ToModel(c *entity.Contest) *model.Contest {
	if c == nil {
		return nil
	}
	return &model.Contest{
		Id:             c.Id,
		Title:          c.Title,
		Description:    c.Description,
		Status:         string(c.Status),
		TokenCost:      c.TokenCost,
		MaxEntries:     c.MaxEntries,
		CurrentEntries: c.CurrentEntries,
		StartsAt:       c.StartsAt,
		EndsAt:         c.EndsAt,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func (m *ContestMapper) ToEntities(cs []*model.Contest) []*entity.Contest {
	out := make([]*entity.Contest, 0, len(cs))
	for _, c := range cs {
		out = append(out, m.ToEntity(c))
	}
	return out
}

func (m *ContestMapper) EntryToEntity(e *model.ContestEntry) *entity.ContestEntry {
	if e == nil {
		return nil
	}
	return &entity.ContestEntry{
		Id:               e.Id,
		ContestId:        e.ContestId,
		UserId:           e.UserId,
		PredictionCardId: e.PredictionCardId,
		PredictionValue:  e.PredictionValue,
		ConfidenceLevel:  e.ConfidenceLevel,
		TokensSpent:      e.TokensSpent,
		IsCorrect:        e.IsCorrect,
		CreatedAt:        e.CreatedAt,
	}
}

func (m *ContestMapper) EntryToModel(e *entity.ContestEntry) *model.ContestEntry {
	if e == nil {
		return nil
	}
	return &model.ContestEntry{
		Id:               e.Id,
		ContestId:        e.ContestId,
		UserId:           e.UserId,
		PredictionCardId: e.PredictionCardId,
		PredictionValue:  e.PredictionValue,
		ConfidenceLevel:  e.ConfidenceLevel,
		TokensSpent:      e.TokensSpent,
		IsCorrect:        e.IsCorrect,
		CreatedAt:        e.CreatedAt,
	}
}
