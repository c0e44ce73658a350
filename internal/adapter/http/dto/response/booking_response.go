package response

import (
	"time"

	"adspace_ops/internal/domain/entities"
)

type BookingResponse struct {
	ID          string    `json:"id"`
	BillboardID string    `json:"billboard_id"`
	ClientName  string    `json:"client_name"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		BillboardID: b.BillboardID,
		ClientName:  b.ClientName,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
