package response

import (
	"time"

	"adspace_ops/internal/domain/entities"
)

type BillboardResponse struct {
	ID          string    `json:"id"`
	SiteName    string    `json:"site_name"`
	Location    string    `json:"location"`
	Height      float64   `json:"height"`
	Width       float64   `json:"width"`
	MonthlyRate float64   `json:"monthly_rate"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromBillboard(b entities.Billboard) BillboardResponse {
	return BillboardResponse{
		ID:          b.ID,
		SiteName:    b.SiteName,
		Location:    b.Location,
		Height:      b.Specs.Height,
		Width:       b.Specs.Width,
		MonthlyRate: b.MonthlyRate,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func FromBillboards(items []entities.Billboard) []BillboardResponse {
	out := make([]BillboardResponse, 0, len(items))
	for _, b := range items {
		out = append(out, FromBillboard(b))
	}
	return out
}
