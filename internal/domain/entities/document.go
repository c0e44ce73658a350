package entities

import "time"

// DocumentType selects which business document a DocumentModel describes.

type DocumentType string

const (
	DocumentTypeCostEstimate      DocumentType = "cost_estimate"
	DocumentTypeQuotation         DocumentType = "quotation"
	DocumentTypeJobOrder          DocumentType = "job_order"
	DocumentTypeServiceAssignment DocumentType = "service_assignment"
)

// CompanyView is the issuing-company display block printed on every
// document.
type CompanyView struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	LogoURL string `json:"logo_url,omitempty"`
}

// DocumentRow is one printed line of a document section.
type DocumentRow struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
}

// DocumentSection groups the rows belonging to one site, with its subtotal.
type DocumentSection struct {
	SiteName string        `json:"site_name"`
	Rows     []DocumentRow `json:"rows"`
	Subtotal float64       `json:"subtotal"`
}

// DocumentModel is the single render input shared by every document type.
// The rendering service receives it as JSON and owns all layout; this
// service's only contract is a correct line-item/total model.

type DocumentModel struct {
	Type        DocumentType      `json:"type"`
	Number      string            `json:"number"`
	Title       string            `json:"title"`
	Company     CompanyView       `json:"company"`
	ClientName  string            `json:"client_name"`
	IssuedAt    time.Time         `json:"issued_at"`
	PeriodStart time.Time         `json:"period_start,omitempty"`
	PeriodEnd   time.Time         `json:"period_end,omitempty"`
	Sections    []DocumentSection `json:"sections"`
	TotalAmount float64           `json:"total_amount"`
	Notes       string            `json:"notes,omitempty"`
}
