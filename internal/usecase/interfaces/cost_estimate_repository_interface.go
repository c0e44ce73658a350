package interfaces

import (
	"context"

	"adspace_ops/internal/domain/entities"
)

// ICostEstimateRepository abstracts DynamoDB persistence for CostEstimate.
//
// UpdateFieldsByID applies a partial update: callers pass only the
// attributes that changed. The repository sanitizes the payload before
// writing: the id attribute is stripped and nil values are dropped
// recursively while date values survive.

type ICostEstimateRepository interface {
	Create(ctx context.Context, e entities.CostEstimate) (entities.CostEstimate, error)
	GetByID(ctx context.Context, id string) (entities.CostEstimate, error)
	ListByStatus(ctx context.Context, status entities.CostEstimateStatus) ([]entities.CostEstimate, error)
	UpdateFieldsByID(ctx context.Context, id string, fields map[string]any) (entities.CostEstimate, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.CostEstimateStatus) (entities.CostEstimate, error)
}
