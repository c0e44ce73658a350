package entities

import (
	"strings"
	"time"
)

// CostEstimateStatus represents the lifecycle of a cost estimate.
//
// Domain notes:
//   - Estimates are created in draft and move forward through send/accept/
//     decline actions driven by the sales flow.
//   - "revised" marks an estimate superseded by a newer revision; the
//     quotation document type uses "expired" instead (see QuotationStatus).

type CostEstimateStatus string

const (
	CostEstimateStatusDraft    CostEstimateStatus = "draft"
	CostEstimateStatusSent     CostEstimateStatus = "sent"
	CostEstimateStatusAccepted CostEstimateStatus = "accepted"
	CostEstimateStatusDeclined CostEstimateStatus = "declined"
	CostEstimateStatusRevised  CostEstimateStatus = "revised"
)

// RentalCategoryMarker flags a line item as a site anchor: the item that
// represents the billboard rental itself. Its description doubles as the
// site name.
const RentalCategoryMarker = "Billboard Rental"

// LineItemSpecs carries the physical dimensions attached to a rental anchor.
type LineItemSpecs struct {
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
}

// LineItem is a single charge row inside a cost estimate.
//
// Ownership model:
//   - SiteAnchorID is the explicit foreign key to the owning rental anchor,
//     set at creation time for all items this service writes.
//   - Items stored before the FK existed leave SiteAnchorID empty and are
//     attached by the legacy convention: the item id contains the anchor id
//     as a substring.
//
// Monetary representation:
//   - Total is the authoritative charge for the row. For rental anchors it
//     is prorated over the estimate's date range, so it is not necessarily
//     UnitPrice * Quantity.

type LineItem struct {
	ID           string         `json:"id"`
	SiteAnchorID string         `json:"site_anchor_id,omitempty"`
	Category     string         `json:"category"`
	Description  string         `json:"description"`
	UnitPrice    float64        `json:"unit_price"`
	Quantity     int            `json:"quantity"`
	Total        float64        `json:"total"`
	Specs        *LineItemSpecs `json:"specs,omitempty"`
	Notes        string         `json:"notes,omitempty"`
}

// IsSiteAnchor reports whether the item is the rental row that keys a site
// group.
func (li LineItem) IsSiteAnchor() bool {
	return strings.Contains(li.Category, RentalCategoryMarker)
}

// Clone returns a deep copy. Specs must not be shared between copies:
// orphan items are duplicated into every site group and a shared pointer
// would alias edits across groups.
func (li LineItem) Clone() LineItem {
	out := li
	if li.Specs != nil {
		specs := *li.Specs
		out.Specs = &specs
	}
	return out
}

// CostEstimate is the estimate document persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - line_items is stored as a JSON document attribute.
//
// Consistency:
//   - TotalAmount always equals the sum of LineItems[*].Total.
//   - DurationDays and (EndDate - StartDate) are kept mutually consistent
//     by the pricing mutation engine; day counting is inclusive.

type CostEstimate struct {
	ID           string             `json:"id"`
	BookingID    string             `json:"booking_id"`
	ClientName   string             `json:"client_name"`
	LineItems    []LineItem         `json:"line_items"`
	TotalAmount  float64            `json:"total_amount"`
	DurationDays int                `json:"duration_days"`
	StartDate    time.Time          `json:"start_date"`
	EndDate      time.Time          `json:"end_date"`
	Status       CostEstimateStatus `json:"status"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// Clone returns a deep copy safe to mutate without aliasing the original.
func (e CostEstimate) Clone() CostEstimate {
	out := e
	out.LineItems = make([]LineItem, len(e.LineItems))
	for i, li := range e.LineItems {
		out.LineItems[i] = li.Clone()
	}
	return out
}
