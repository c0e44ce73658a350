package entities

import "time"

type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Booking reserves one billboard over an inclusive date range.
//
// Storage model (DynamoDB):
//   - PK: id
//   - billboard_id is queried via scan-backed listing in the repository;
//     active bookings of one billboard must never overlap.

type Booking struct {
	ID          string        `json:"id"`
	BillboardID string        `json:"billboard_id"`
	ClientName  string        `json:"client_name"`
	StartDate   time.Time     `json:"start_date"`
	EndDate     time.Time     `json:"end_date"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Overlaps reports whether two inclusive date ranges intersect.
func (b Booking) Overlaps(start, end time.Time) bool {
	return !b.StartDate.After(end) && !start.After(b.EndDate)
}
