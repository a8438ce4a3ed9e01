package implementation

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"predictplay-be/internal/entity"
	"predictplay-be/internal/mapper"
	"predictplay-be/internal/model"
	"predictplay-be/internal/repository/contract"
	"predictplay-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnalyzerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AnalyzerMapper
}

func NewAnalyzerRepository(db *gorm.DB) contract.AnalyzerRepository {
	return &AnalyzerRepositoryImpl{
		db:     db,
		mapper: mapper.NewAnalyzerMapper(),
	}
}

func (r *AnalyzerRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AnalyzerRepositoryImpl) CreateModel(ctx context.Context, m *entity.AnalyzerModel) error {
	mod := r.mapper.ModelToModel(m)
	if err := r.db.WithContext(ctx).Create(mod).Error; err != nil {
		return err
	}
	*m = *r.mapper.ModelToEntity(mod)
	return nil
}

func (r *AnalyzerRepositoryImpl) FindModel(ctx context.Context, specs ...specification.Specification) (*entity.AnalyzerModel, error) {
	var m model.AnalyzerModel
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ModelToEntity(&m), nil
}

func (r *AnalyzerRepositoryImpl) CreateRequest(ctx context.Context, req *entity.AnalyzerRequest) error {
	m := r.mapper.RequestToModel(req)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*req = *r.mapper.RequestToEntity(m)
	return nil
}

func (r *AnalyzerRepositoryImpl) FindRequest(ctx context.Context, specs ...specification.Specification) (*entity.AnalyzerRequest, error) {
	var m model.AnalyzerRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.RequestToEntity(&m), nil
}

func (r *AnalyzerRepositoryImpl) CompleteRequest(ctx context.Context, id uuid.UUID, result *entity.AnalysisResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&model.AnalyzerRequest{}).
		Where("id = ? AND status = ?", id, string(entity.AnalyzerRequestStatusProcessing)).
		Updates(map[string]interface{}{
			"status":     string(entity.AnalyzerRequestStatusCompleted),
			"result":     raw,
			"updated_at": time.Now(),
		}).Error
}

func (r *AnalyzerRepositoryImpl) MarkRequestFailed(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.AnalyzerRequest{}).
		Where("id = ? AND status = ?", id, string(entity.AnalyzerRequestStatusProcessing)).
		Update("status", string(entity.AnalyzerRequestStatusFailed)).Error
}
