package interfaces

import (
	"context"

	"adspace_ops/internal/domain/entities"
)

// IBookingRepository abstracts DynamoDB persistence for Booking.

type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	ListActiveByBillboardID(ctx context.Context, billboardID string) ([]entities.Booking, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error)
}
