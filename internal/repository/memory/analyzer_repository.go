package memory

import (
	"context"
	"errors"

	"predictplay-be/internal/entity"
	"predictplay-be/internal/repository/contract"
	"predictplay-be/internal/repository/specification"

	"github.com/google/uuid"
)

type analyzerRepository struct {
	store *Store
}

func NewAnalyzerRepository(store *Store) contract.AnalyzerRepository {
	return &analyzerRepository{store: store}
}

func (r *analyzerRepository) CreateModel(ctx context.Context, m *entity.AnalyzerModel) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cp := *m
	r.store.models[m.Id] = &cp
	return nil
}

func (r *analyzerRepository) FindModel(ctx context.Context, specs ...specification.Specification) (*entity.AnalyzerModel, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if id, ok := matchByID(specs); ok {
		if m, found := r.store.models[id]; found {
			cp := *m
			return &cp, nil
		}
		return nil, nil
	}
	for _, s := range specs {
		if bySlug, ok := s.(specification.BySlug); ok {
			for _, m := range r.store.models {
				if m.Slug == bySlug.Slug {
					cp := *m
					return &cp, nil
				}
			}
		}
	}
	return nil, nil
}

func (r *analyzerRepository) CreateRequest(ctx context.Context, req *entity.AnalyzerRequest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cp := *req
	r.store.requests[req.Id] = &cp
	return nil
}

func (r *analyzerRepository) FindRequest(ctx context.Context, specs ...specification.Specification) (*entity.AnalyzerRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if id, ok := matchByID(specs); ok {
		if req, found := r.store.requests[id]; found {
			cp := *req
			return &cp, nil
		}
		return nil, nil
	}
	if userId, ok := matchByUserID(specs); ok {
		for _, req := range r.store.requests {
			if req.UserId == userId {
				cp := *req
				return &cp, nil
			}
		}
	}
	return nil, nil
}

func (r *analyzerRepository) CompleteRequest(ctx context.Context, id uuid.UUID, result *entity.AnalysisResult) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	req, ok := r.store.requests[id]
	if !ok {
		return errors.New("request not found")
	}
	if req.Status != entity.AnalyzerRequestStatusProcessing {
		return errors.New("request is not processing")
	}
	req.Status = entity.AnalyzerRequestStatusCompleted
	cp := *result
	req.Result = &cp
	return nil
}

func (r *analyzerRepository) MarkRequestFailed(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	req, ok := r.store.requests[id]
	if !ok {
		return errors.New("request not found")
	}
	req.Status = entity.AnalyzerRequestStatusFailed
	return nil
}
