package request

import (
	"errors"
	"time"

	"adspace_ops/internal/domain/pricing"
)

var ErrInvalidScheduleDates = errors.New("invalid schedule dates")

// CreateJobOrderRequest opens a work order for an accepted quotation.
type CreateJobOrderRequest struct {
	QuotationID    string `json:"quotation_id" binding:"required"`
	ScheduledStart string `json:"scheduled_start" binding:"required"`
	ScheduledEnd   string `json:"scheduled_end" binding:"required"`
}

func (r CreateJobOrderRequest) ResolveSchedule() (time.Time, time.Time, error) {
	start, ok := pricing.CoerceDate(r.ScheduledStart)
	if !ok {
		return time.Time{}, time.Time{}, ErrInvalidScheduleDates
	}
	end, ok := pricing.CoerceDate(r.ScheduledEnd)
	if !ok {
		return time.Time{}, time.Time{}, ErrInvalidScheduleDates
	}
	return start, end, nil
}
