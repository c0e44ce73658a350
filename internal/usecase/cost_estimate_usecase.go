package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"adspace_ops/internal/domain/entities"
	"adspace_ops/internal/domain/pricing"
	"adspace_ops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound     = errors.New("estimate not found")
	ErrInvalidEstimateID    = errors.New("invalid estimate id")
	ErrInvalidEstimateInput = errors.New("invalid estimate input")
	ErrEstimateNotEditable  = errors.New("estimate not editable")
	ErrInvalidTransition    = errors.New("invalid status transition")
)

// EstimateItemInput is an extra charge row attached to one site of a new
// estimate (production, installation, permits...).
type EstimateItemInput struct {
	Category    string
	Description string
	UnitPrice   float64
	Quantity    int
	Notes       string
}

// EstimateSiteInput selects one billboard for a new estimate plus its extra
// items.
type EstimateSiteInput struct {
	BillboardID string
	ExtraItems  []EstimateItemInput
}

// CreateEstimateInput describes a new estimate over one or more sites.
type CreateEstimateInput struct {
	BookingID  string
	ClientName string
	StartDate  time.Time
	EndDate    time.Time
	Sites      []EstimateSiteInput
}

// ICostEstimateUseCase exposes the cost estimate operations: creation from
// booked inventory, single-field edit transactions, and the status
// lifecycle.

type ICostEstimateUseCase interface {
	Create(ctx context.Context, input CreateEstimateInput) (entities.CostEstimate, error)
	GetByID(ctx context.Context, id string) (entities.CostEstimate, error)
	ListByStatus(ctx context.Context, status entities.CostEstimateStatus) ([]entities.CostEstimate, error)
	EditField(ctx context.Context, id string, edit pricing.FieldEdit) (entities.CostEstimate, error)
	Send(ctx context.Context, id string) (entities.CostEstimate, error)
	Accept(ctx context.Context, id string) (entities.CostEstimate, error)
	Decline(ctx context.Context, id string) (entities.CostEstimate, error)
	Revise(ctx context.Context, id string) (entities.CostEstimate, error)
}

type CostEstimateUseCase struct {
	repo          interfaces.ICostEstimateRepository
	billboardRepo interfaces.IBillboardRepository
}

var _ ICostEstimateUseCase = (*CostEstimateUseCase)(nil)

func NewCostEstimateUseCase(repo interfaces.ICostEstimateRepository, billboardRepo interfaces.IBillboardRepository) *CostEstimateUseCase {
	return &CostEstimateUseCase{repo: repo, billboardRepo: billboardRepo}
}

// Create builds the estimate's line items from the selected billboards: one
// rental anchor per site priced by day-accurate proration over the
// estimate's date range, extra items carrying the anchor's id as their
// explicit site key.
func (u *CostEstimateUseCase) Create(ctx context.Context, input CreateEstimateInput) (entities.CostEstimate, error) {
	if len(input.Sites) == 0 {
		return entities.CostEstimate{}, ErrInvalidEstimateInput
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() || input.EndDate.Before(input.StartDate) {
		return entities.CostEstimate{}, ErrInvalidEstimateInput
	}

	var items []entities.LineItem
	for _, site := range input.Sites {
		billboard, err := u.billboardRepo.GetByID(ctx, strings.TrimSpace(site.BillboardID))
		if err != nil {
			return entities.CostEstimate{}, err
		}
		if billboard.ID == "" {
			return entities.CostEstimate{}, ErrBillboardNotFound
		}

		charge, err := pricing.ProratedPrice(billboard.MonthlyRate, input.StartDate, input.EndDate)
		if err != nil {
			return entities.CostEstimate{}, err
		}
		specs := billboard.Specs
		anchor := entities.LineItem{
			ID:          uuid.NewString(),
			Category:    entities.RentalCategoryMarker,
			Description: billboard.SiteName,
			UnitPrice:   billboard.MonthlyRate,
			Quantity:    1,
			Total:       charge,
			Specs:       &specs,
			Notes:       billboard.Location,
		}
		items = append(items, anchor)

		for _, extra := range site.ExtraItems {
			qty := extra.Quantity
			if qty <= 0 {
				qty = 1
			}
			items = append(items, entities.LineItem{
				ID:           uuid.NewString(),
				SiteAnchorID: anchor.ID,
				Category:     extra.Category,
				Description:  extra.Description,
				UnitPrice:    extra.UnitPrice,
				Quantity:     qty,
				Total:        extra.UnitPrice * float64(qty),
				Notes:        extra.Notes,
			})
		}
	}

	total := 0.0
	for _, item := range items {
		total += item.Total
	}

	now := time.Now().UTC()
	e := entities.CostEstimate{
		ID:           uuid.NewString(),
		BookingID:    strings.TrimSpace(input.BookingID),
		ClientName:   strings.TrimSpace(input.ClientName),
		LineItems:    items,
		TotalAmount:  total,
		DurationDays: pricing.InclusiveDays(input.StartDate, input.EndDate),
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Status:       entities.CostEstimateStatusDraft,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, e)
}

func (u *CostEstimateUseCase) GetByID(ctx context.Context, id string) (entities.CostEstimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CostEstimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CostEstimate{}, err
	}
	if e.ID == "" {
		return entities.CostEstimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *CostEstimateUseCase) ListByStatus(ctx context.Context, status entities.CostEstimateStatus) ([]entities.CostEstimate, error) {
	return u.repo.ListByStatus(ctx, status)
}

// EditField runs one field-edit transaction through the pricing engine and
// persists only the affected attributes. Drafts only; later stages are
// frozen and go through a revision instead.
func (u *CostEstimateUseCase) EditField(ctx context.Context, id string, edit pricing.FieldEdit) (entities.CostEstimate, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.CostEstimate{}, err
	}
	if e.Status != entities.CostEstimateStatusDraft {
		return entities.CostEstimate{}, ErrEstimateNotEditable
	}

	updated, err := pricing.ApplyFieldEdit(e, edit)
	if err != nil {
		return entities.CostEstimate{}, err
	}
	log.Printf("[estimate][usecase] field edit estimate_id=%s site=%q field=%s total=%.2f", id, edit.SiteName, edit.Field, updated.TotalAmount)

	fields := map[string]any{
		"line_items":    updated.LineItems,
		"total_amount":  updated.TotalAmount,
		"duration_days": updated.DurationDays,
		"start_date":    updated.StartDate,
		"end_date":      updated.EndDate,
	}
	persisted, err := u.repo.UpdateFieldsByID(ctx, id, fields)
	if err != nil {
		return entities.CostEstimate{}, err
	}
	if persisted.ID == "" {
		return entities.CostEstimate{}, ErrEstimateNotFound
	}
	return persisted, nil
}

func (u *CostEstimateUseCase) Send(ctx context.Context, id string) (entities.CostEstimate, error) {
	return u.transition(ctx, id, entities.CostEstimateStatusSent, entities.CostEstimateStatusDraft)
}

func (u *CostEstimateUseCase) Accept(ctx context.Context, id string) (entities.CostEstimate, error) {
	return u.transition(ctx, id, entities.CostEstimateStatusAccepted, entities.CostEstimateStatusSent)
}

func (u *CostEstimateUseCase) Decline(ctx context.Context, id string) (entities.CostEstimate, error) {
	return u.transition(ctx, id, entities.CostEstimateStatusDeclined, entities.CostEstimateStatusSent)
}

func (u *CostEstimateUseCase) Revise(ctx context.Context, id string) (entities.CostEstimate, error) {
	return u.transition(ctx, id, entities.CostEstimateStatusRevised,
		entities.CostEstimateStatusDraft, entities.CostEstimateStatusSent, entities.CostEstimateStatusDeclined)
}

func (u *CostEstimateUseCase) transition(ctx context.Context, id string, to entities.CostEstimateStatus, from ...entities.CostEstimateStatus) (entities.CostEstimate, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.CostEstimate{}, err
	}

	allowed := false
	for _, s := range from {
		if e.Status == s {
			allowed = true
			break
		}
	}
	if !allowed {
		return entities.CostEstimate{}, ErrInvalidTransition
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, to)
	if err != nil {
		return entities.CostEstimate{}, err
	}
	if updated.ID == "" {
		return entities.CostEstimate{}, ErrEstimateNotFound
	}
	return updated, nil
}
