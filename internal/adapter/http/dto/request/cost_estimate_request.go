package request

import (
	"errors"
	"time"

	"adspace_ops/internal/domain/pricing"
	"adspace_ops/internal/usecase"
)

var ErrInvalidEstimateDates = errors.New("invalid estimate dates")

type EstimateItemRequest struct {
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price" binding:"required"`
	Quantity    int     `json:"quantity"`
	Notes       string  `json:"notes"`
}

type EstimateSiteRequest struct {
	BillboardID string                `json:"billboard_id" binding:"required"`
	ExtraItems  []EstimateItemRequest `json:"extra_items"`
}

// CreateEstimateRequest builds a draft estimate over one or more booked
// sites. Dates accept RFC3339 timestamps or plain YYYY-MM-DD values.
type CreateEstimateRequest struct {
	BookingID  string                `json:"booking_id"`
	ClientName string                `json:"client_name" binding:"required"`
	StartDate  string                `json:"start_date"`
	EndDate    string                `json:"end_date"`
	Sites      []EstimateSiteRequest `json:"sites" binding:"required"`
}

func (r CreateEstimateRequest) ToInput() (usecase.CreateEstimateInput, error) {
	var start, end time.Time
	if r.StartDate != "" {
		v, ok := pricing.CoerceDate(r.StartDate)
		if !ok {
			return usecase.CreateEstimateInput{}, ErrInvalidEstimateDates
		}
		start = v
	}
	if r.EndDate != "" {
		v, ok := pricing.CoerceDate(r.EndDate)
		if !ok {
			return usecase.CreateEstimateInput{}, ErrInvalidEstimateDates
		}
		end = v
	}

	sites := make([]usecase.EstimateSiteInput, 0, len(r.Sites))
	for _, s := range r.Sites {
		items := make([]usecase.EstimateItemInput, 0, len(s.ExtraItems))
		for _, it := range s.ExtraItems {
			qty := it.Quantity
			if qty == 0 {
				qty = 1
			}
			items = append(items, usecase.EstimateItemInput{
				Category:    it.Category,
				Description: it.Description,
				UnitPrice:   it.UnitPrice,
				Quantity:    qty,
				Notes:       it.Notes,
			})
		}
		sites = append(sites, usecase.EstimateSiteInput{
			BillboardID: s.BillboardID,
			ExtraItems:  items,
		})
	}

	return usecase.CreateEstimateInput{
		BookingID:  r.BookingID,
		ClientName: r.ClientName,
		StartDate:  start,
		EndDate:    end,
		Sites:      sites,
	}, nil
}

// EditEstimateFieldRequest is a single-field edit applied to one site group
// of an estimate. Value stays untyped; the pricing engine coerces it per
// field (number, integer or date).
type EditEstimateFieldRequest struct {
	SiteName string `json:"site_name" binding:"required"`
	Field    string `json:"field" binding:"required"`
	Value    any    `json:"value" binding:"required"`
}

func (r EditEstimateFieldRequest) ToFieldEdit() pricing.FieldEdit {
	return pricing.FieldEdit{
		SiteName: r.SiteName,
		Field:    pricing.EditField(r.Field),
		Value:    r.Value,
	}
}
