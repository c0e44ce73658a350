package interfaces

import (
	"context"

	"adspace_ops/internal/domain/entities"
)

// IJobOrderRepository abstracts DynamoDB persistence for JobOrder.

type IJobOrderRepository interface {
	Create(ctx context.Context, j entities.JobOrder) (entities.JobOrder, error)
	GetByID(ctx context.Context, id string) (entities.JobOrder, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.JobOrderStatus) (entities.JobOrder, error)
}
