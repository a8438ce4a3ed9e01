package contract

import (
	"context"

	"predictplay-be/internal/entity"
	"predictplay-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AnalyzerRepository interface {
	CreateModel(ctx context.Context, m *entity.AnalyzerModel) error
	FindModel(ctx context.Context, specs ...specification.Specification) (*entity.AnalyzerModel, error)

	CreateRequest(ctx context.Context, req *entity.AnalyzerRequest) error
	FindRequest(ctx context.Context, specs ...specification.Specification) (*entity.AnalyzerRequest, error)

	// CompleteRequest moves a processing request to completed with its result
	// payload. Requests never transition backward.
	CompleteRequest(ctx context.Context, id uuid.UUID, result *entity.AnalysisResult) error
	MarkRequestFailed(ctx context.Context, id uuid.UUID) error
}
