package interfaces

import (
	"context"

	"adspace_ops/internal/domain/entities"
)

// IBillboardRepository abstracts DynamoDB persistence for Billboard.
//
// Not-found is reported as a zero-value entity, not an error, matching the
// other repositories.

type IBillboardRepository interface {
	Create(ctx context.Context, b entities.Billboard) (entities.Billboard, error)
	GetByID(ctx context.Context, id string) (entities.Billboard, error)
	List(ctx context.Context) ([]entities.Billboard, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.BillboardStatus) (entities.Billboard, error)
	UpdateRateByID(ctx context.Context, id string, monthlyRate float64) (entities.Billboard, error)
}
