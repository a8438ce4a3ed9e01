package mapper

import (
	"predictplay-be/internal/entity"
	"predictplay-be/internal/model"
)

type VoteMapper struct{}

func NewVoteMapper() *VoteMapper {
	return &VoteMapper{}
}

func (m *VoteMapper) ToEntity(v *model.SocialVote) *entity.SocialVote {
	if v == nil {
		return nil
	}
	return &entity.SocialVote{
		Id:                v.Id,
		UserId:            v.UserId,
		AnalyzerRequestId: v.AnalyzerRequestId,
		PredictionCardId:  v.PredictionCardId,
		VoteType:          entity.VoteType(v.VoteType),
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}

func (m *VoteMapper) ToModel(v *entity.SocialVote) *model.SocialVote {
	if v == nil {
		return nil
	}
	return &model.SocialVote{
		Id:                v.Id,
		UserId:            v.UserId,
		AnalyzerRequestId: v.AnalyzerRequestId,
		PredictionCardId:  v.PredictionCardId,
		VoteType:          string(v.VoteType),
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}
