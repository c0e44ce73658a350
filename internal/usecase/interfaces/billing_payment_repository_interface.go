package interfaces

import (
	"context"

	"adspace_ops/internal/domain/entities"
)

// IBillingPaymentRepository abstracts DynamoDB persistence for BillingPayment.

type IBillingPaymentRepository interface {
	Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByQuotationID(ctx context.Context, quotationID string) ([]entities.BillingPayment, error)
}
