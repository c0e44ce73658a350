package response

import (
	"time"

	"adspace_ops/internal/domain/entities"
)

type JobOrderResponse struct {
	ID             string    `json:"id"`
	QuotationID    string    `json:"quotation_id"`
	ClientName     string    `json:"client_name"`
	SiteNames      []string  `json:"site_names"`
	ScheduledStart time.Time `json:"scheduled_start"`
	ScheduledEnd   time.Time `json:"scheduled_end"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromJobOrder(j entities.JobOrder) JobOrderResponse {
	return JobOrderResponse{
		ID:             j.ID,
		QuotationID:    j.QuotationID,
		ClientName:     j.ClientName,
		SiteNames:      j.SiteNames,
		ScheduledStart: j.ScheduledStart,
		ScheduledEnd:   j.ScheduledEnd,
		Status:         string(j.Status),
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
}
