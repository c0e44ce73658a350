package entities

import "time"

// BillboardStatus tracks whether a site can be booked.

type BillboardStatus string

const (
	BillboardStatusAvailable   BillboardStatus = "available"
	BillboardStatusBooked      BillboardStatus = "booked"
	BillboardStatusMaintenance BillboardStatus = "maintenance"
)

// Billboard is an inventory site persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// SiteName is the display name reused as the site group key on estimates
// built from this billboard.

type Billboard struct {
	ID          string          `json:"id"`
	SiteName    string          `json:"site_name"`
	Location    string          `json:"location"`
	Specs       LineItemSpecs   `json:"specs"`
	MonthlyRate float64         `json:"monthly_rate"`
	Status      BillboardStatus `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
