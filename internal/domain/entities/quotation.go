package entities

import "time"

// QuotationStatus mirrors the estimate lifecycle but closes with "expired"
// instead of "revised"; the two document types keep separate enums on
// purpose.

type QuotationStatus string

const (
	QuotationStatusDraft    QuotationStatus = "draft"
	QuotationStatusSent     QuotationStatus = "sent"
	QuotationStatusAccepted QuotationStatus = "accepted"
	QuotationStatusDeclined QuotationStatus = "declined"
	QuotationStatusExpired  QuotationStatus = "expired"
)

// Quotation is the client-facing offer derived from a cost estimate.
//
// Storage model (DynamoDB):
//   - PK: id
//
// LineItems and TotalAmount are a snapshot taken at creation: later edits
// to the source estimate do not retroactively change a sent quotation.

type Quotation struct {
	ID          string          `json:"id"`
	EstimateID  string          `json:"estimate_id"`
	ClientName  string          `json:"client_name"`
	LineItems   []LineItem      `json:"line_items"`
	TotalAmount float64         `json:"total_amount"`
	ValidUntil  time.Time       `json:"valid_until"`
	Status      QuotationStatus `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
