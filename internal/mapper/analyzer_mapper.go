package mapper

import (
	"encoding/json"

	"predictplay-be/internal/entity"
	"predictplay-be/internal/model"

	"gorm.io/datatypes"
)

type AnalyzerMapper struct{}

func NewAnalyzerMapper() *AnalyzerMapper {
	return &AnalyzerMapper{}
}

func (m *AnalyzerMapper) ModelToEntity(a *model.AnalyzerModel) *entity.AnalyzerModel {
	if a == nil {
		return nil
	}
	return &entity.AnalyzerModel{
		Id:        a.Id,
		Name:      a.Name,
		Slug:      a.Slug,
		TokenCost: a.TokenCost,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (m *AnalyzerMapper) ModelToModel(a *entity.AnalyzerModel) *model.AnalyzerModel {
	if a == nil {
		return nil
	}
	return &model.AnalyzerModel{
		Id:        a.Id,
		Name:      a.Name,
		Slug:      a.Slug,
		TokenCost: a.TokenCost,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (m *AnalyzerMapper) RequestToEntity(r *model.AnalyzerRequest) *entity.AnalyzerRequest {
	if r == nil {
		return nil
	}
	var metadata map[string]interface{}
	if len(r.Metadata) > 0 {
		_ = json.Unmarshal(r.Metadata, &metadata)
	}
	var result *entity.AnalysisResult
	if len(r.Result) > 0 {
		var parsed entity.AnalysisResult
		if err := json.Unmarshal(r.Result, &parsed); err == nil {
			result = &parsed
		}
	}
	return &entity.AnalyzerRequest{
		Id:         r.Id,
		UserId:     r.UserId,
		ModelId:    r.ModelId,
		Status:     entity.AnalyzerRequestStatus(r.Status),
		TokensUsed: r.TokensUsed,
		ImageUrl:   r.ImageUrl,
		InputText:  r.InputText,
		Metadata:   metadata,
		Result:     result,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func (m *AnalyzerMapper) RequestToModel(r *entity.AnalyzerRequest) *model.AnalyzerRequest {
	if r == nil {
		return nil
	}
	var metadata datatypes.JSON
	if r.Metadata != nil {
		if raw, err := json.Marshal(r.Metadata); err == nil {
			metadata = raw
		}
	}
	var result datatypes.JSON
	if r.Result != nil {
		if raw, err := json.Marshal(r.Result); err == nil {
			result = raw
		}
	}
	return &model.AnalyzerRequest{
		Id:         r.Id,
		UserId:     r.UserId,
		ModelId:    r.ModelId,
		Status:     string(r.Status),
		TokensUsed: r.TokensUsed,
		ImageUrl:   r.ImageUrl,
		InputText:  r.InputText,
		Metadata:   metadata,
		Result:     result,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}
