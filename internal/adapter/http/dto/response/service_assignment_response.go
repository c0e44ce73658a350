package response

import (
	"time"

	"adspace_ops/internal/domain/entities"
)

type ServiceAssignmentResponse struct {
	ID          string    `json:"id"`
	JobOrderID  string    `json:"job_order_id"`
	SiteName    string    `json:"site_name"`
	CrewName    string    `json:"crew_name"`
	ServiceType string    `json:"service_type"`
	ServiceDate time.Time `json:"service_date"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromServiceAssignment(a entities.ServiceAssignment) ServiceAssignmentResponse {
	return ServiceAssignmentResponse{
		ID:          a.ID,
		JobOrderID:  a.JobOrderID,
		SiteName:    a.SiteName,
		CrewName:    a.CrewName,
		ServiceType: string(a.ServiceType),
		ServiceDate: a.ServiceDate,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func FromServiceAssignments(items []entities.ServiceAssignment) []ServiceAssignmentResponse {
	out := make([]ServiceAssignmentResponse, 0, len(items))
	for _, a := range items {
		out = append(out, FromServiceAssignment(a))
	}
	return out
}
