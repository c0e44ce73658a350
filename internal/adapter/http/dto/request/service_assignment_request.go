package request

import (
	"errors"
	"time"

	"adspace_ops/internal/domain/pricing"
)

var ErrInvalidServiceDate = errors.New("invalid service date")

// CreateAssignmentRequest dispatches a crew to one site of a job order.
type CreateAssignmentRequest struct {
	JobOrderID  string `json:"job_order_id" binding:"required"`
	SiteName    string `json:"site_name" binding:"required"`
	CrewName    string `json:"crew_name" binding:"required"`
	ServiceType string `json:"service_type" binding:"required"`
	ServiceDate string `json:"service_date" binding:"required"`
}

func (r CreateAssignmentRequest) ResolveServiceDate() (time.Time, error) {
	d, ok := pricing.CoerceDate(r.ServiceDate)
	if !ok {
		return time.Time{}, ErrInvalidServiceDate
	}
	return d, nil
}
