package interfaces

import (
	"context"

	"adspace_ops/internal/domain/entities"
)

// IQuotationRepository abstracts DynamoDB persistence for Quotation.

type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.QuotationStatus) (entities.Quotation, error)
}
