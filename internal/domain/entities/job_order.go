package entities

import "time"

type JobOrderStatus string

const (
	JobOrderStatusOpen       JobOrderStatus = "open"
	JobOrderStatusInProgress JobOrderStatus = "in_progress"
	JobOrderStatusCompleted  JobOrderStatus = "completed"
	JobOrderStatusCancelled  JobOrderStatus = "cancelled"
)

// JobOrder is the internal work order opened once a quotation is accepted.
//
// Storage model (DynamoDB):
//   - PK: id

type JobOrder struct {
	ID             string         `json:"id"`
	QuotationID    string         `json:"quotation_id"`
	ClientName     string         `json:"client_name"`
	SiteNames      []string       `json:"site_names"`
	ScheduledStart time.Time      `json:"scheduled_start"`
	ScheduledEnd   time.Time      `json:"scheduled_end"`
	Status         JobOrderStatus `json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
