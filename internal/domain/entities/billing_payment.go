package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
//
// The service only needs to create/process and persist an approved payment;
// the type supports a denied status for completeness.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// BillingPayment settles an accepted quotation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - listed by quotation_id.
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the original body (JSON) for traceability/audit.
//   - MPPayload is an optional parsed representation, useful for
//     querying/debugging. Both are persisted because different MP
//     integrations may vary in schema.

type BillingPayment struct {
	ID          string        `json:"id"`
	QuotationID string        `json:"quotation_id"`
	Date        time.Time     `json:"date"`
	Status      PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
