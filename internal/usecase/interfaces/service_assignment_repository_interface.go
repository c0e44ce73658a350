package interfaces

import (
	"context"

	"adspace_ops/internal/domain/entities"
)

// IServiceAssignmentRepository abstracts DynamoDB persistence for
// ServiceAssignment.

type IServiceAssignmentRepository interface {
	Create(ctx context.Context, a entities.ServiceAssignment) (entities.ServiceAssignment, error)
	GetByID(ctx context.Context, id string) (entities.ServiceAssignment, error)
	ListByJobOrderID(ctx context.Context, jobOrderID string) ([]entities.ServiceAssignment, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.AssignmentStatus) (entities.ServiceAssignment, error)
}
