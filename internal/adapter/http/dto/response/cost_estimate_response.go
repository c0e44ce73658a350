package response

import (
	"time"

	"adspace_ops/internal/domain/entities"
)

type LineItemResponse struct {
	ID           string   `json:"id"`
	SiteAnchorID string   `json:"site_anchor_id,omitempty"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	UnitPrice    float64  `json:"unit_price"`
	Quantity     int      `json:"quantity"`
	Total        float64  `json:"total"`
	Height       *float64 `json:"height,omitempty"`
	Width        *float64 `json:"width,omitempty"`
	Notes        string   `json:"notes,omitempty"`
}

type CostEstimateResponse struct {
	ID           string             `json:"id"`
	BookingID    string             `json:"booking_id,omitempty"`
	ClientName   string             `json:"client_name"`
	LineItems    []LineItemResponse `json:"line_items"`
	TotalAmount  float64            `json:"total_amount"`
	DurationDays int                `json:"duration_days"`
	StartDate    time.Time          `json:"start_date"`
	EndDate      time.Time          `json:"end_date"`
	Status       string             `json:"status"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

func FromLineItem(li entities.LineItem) LineItemResponse {
	out := LineItemResponse{
		ID:           li.ID,
		SiteAnchorID: li.SiteAnchorID,
		Category:     li.Category,
		Description:  li.Description,
		UnitPrice:    li.UnitPrice,
		Quantity:     li.Quantity,
		Total:        li.Total,
		Notes:        li.Notes,
	}
	if li.Specs != nil {
		h, w := li.Specs.Height, li.Specs.Width
		out.Height = &h
		out.Width = &w
	}
	return out
}

func FromCostEstimate(e entities.CostEstimate) CostEstimateResponse {
	items := make([]LineItemResponse, 0, len(e.LineItems))
	for _, li := range e.LineItems {
		items = append(items, FromLineItem(li))
	}
	return CostEstimateResponse{
		ID:           e.ID,
		BookingID:    e.BookingID,
		ClientName:   e.ClientName,
		LineItems:    items,
		TotalAmount:  e.TotalAmount,
		DurationDays: e.DurationDays,
		StartDate:    e.StartDate,
		EndDate:      e.EndDate,
		Status:       string(e.Status),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func FromCostEstimates(items []entities.CostEstimate) []CostEstimateResponse {
	out := make([]CostEstimateResponse, 0, len(items))
	for _, e := range items {
		out = append(out, FromCostEstimate(e))
	}
	return out
}
