package request

import (
	"errors"
	"time"

	"adspace_ops/internal/domain/pricing"
)

var ErrInvalidBookingDates = errors.New("invalid booking dates")

// CreateBookingRequest reserves a billboard for a client over an inclusive
// date range. Dates accept RFC3339 timestamps or plain YYYY-MM-DD values.
type CreateBookingRequest struct {
	BillboardID string `json:"billboard_id" binding:"required"`
	ClientName  string `json:"client_name" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
}

func (r CreateBookingRequest) ResolveDates() (time.Time, time.Time, error) {
	start, ok := pricing.CoerceDate(r.StartDate)
	if !ok {
		return time.Time{}, time.Time{}, ErrInvalidBookingDates
	}
	end, ok := pricing.CoerceDate(r.EndDate)
	if !ok {
		return time.Time{}, time.Time{}, ErrInvalidBookingDates
	}
	return start, end, nil
}
