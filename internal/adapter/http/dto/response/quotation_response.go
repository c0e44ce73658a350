package response

import (
	"time"

	"adspace_ops/internal/domain/entities"
)

type QuotationResponse struct {
	ID          string             `json:"id"`
	EstimateID  string             `json:"estimate_id"`
	ClientName  string             `json:"client_name"`
	LineItems   []LineItemResponse `json:"line_items"`
	TotalAmount float64            `json:"total_amount"`
	ValidUntil  time.Time          `json:"valid_until"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	items := make([]LineItemResponse, 0, len(q.LineItems))
	for _, li := range q.LineItems {
		items = append(items, FromLineItem(li))
	}
	return QuotationResponse{
		ID:          q.ID,
		EstimateID:  q.EstimateID,
		ClientName:  q.ClientName,
		LineItems:   items,
		TotalAmount: q.TotalAmount,
		ValidUntil:  q.ValidUntil,
		Status:      string(q.Status),
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}
