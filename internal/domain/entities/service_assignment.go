package entities

import "time"

type ServiceType string

const (
	ServiceTypeInstallation ServiceType = "installation"
	ServiceTypeMaintenance  ServiceType = "maintenance"
	ServiceTypeDismantling  ServiceType = "dismantling"
)

type AssignmentStatus string

const (
	AssignmentStatusAssigned  AssignmentStatus = "assigned"
	AssignmentStatusCompleted AssignmentStatus = "completed"
)

// ServiceAssignment schedules a crew against one site of a job order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - listed by job_order_id for the job order detail view.

type ServiceAssignment struct {
	ID          string           `json:"id"`
	JobOrderID  string           `json:"job_order_id"`
	SiteName    string           `json:"site_name"`
	CrewName    string           `json:"crew_name"`
	ServiceType ServiceType      `json:"service_type"`
	ServiceDate time.Time        `json:"service_date"`
	Status      AssignmentStatus `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
