package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"adspace_ops/internal/domain/entities"
	"adspace_ops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuotationNotFound  = errors.New("quotation not found")
	ErrInvalidQuotationID = errors.New("invalid quotation id")
)

// Default validity window for new quotations.
const quotationValidityDays = 30

// IQuotationUseCase turns estimates into client-facing quotations and
// drives their lifecycle. Line items and total are snapshotted at creation.

type IQuotationUseCase interface {
	CreateFromEstimate(ctx context.Context, estimateID string) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	Send(ctx context.Context, id string) (entities.Quotation, error)
	Accept(ctx context.Context, id string) (entities.Quotation, error)
	Decline(ctx context.Context, id string) (entities.Quotation, error)
	Expire(ctx context.Context, id string) (entities.Quotation, error)
}

type QuotationUseCase struct {
	repo         interfaces.IQuotationRepository
	estimateRepo interfaces.ICostEstimateRepository
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(repo interfaces.IQuotationRepository, estimateRepo interfaces.ICostEstimateRepository) *QuotationUseCase {
	return &QuotationUseCase{repo: repo, estimateRepo: estimateRepo}
}

func (u *QuotationUseCase) CreateFromEstimate(ctx context.Context, estimateID string) (entities.Quotation, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.Quotation{}, ErrInvalidEstimateID
	}

	e, err := u.estimateRepo.GetByID(ctx, estimateID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if e.ID == "" {
		return entities.Quotation{}, ErrEstimateNotFound
	}

	// Snapshot, not reference: a later estimate revision must not rewrite
	// an issued quotation.
	snapshot := e.Clone()

	now := time.Now().UTC()
	q := entities.Quotation{
		ID:          uuid.NewString(),
		EstimateID:  e.ID,
		ClientName:  e.ClientName,
		LineItems:   snapshot.LineItems,
		TotalAmount: snapshot.TotalAmount,
		ValidUntil:  now.AddDate(0, 0, quotationValidityDays),
		Status:      entities.QuotationStatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, q)
}

func (u *QuotationUseCase) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}

func (u *QuotationUseCase) Send(ctx context.Context, id string) (entities.Quotation, error) {
	return u.transition(ctx, id, entities.QuotationStatusSent, entities.QuotationStatusDraft)
}

func (u *QuotationUseCase) Accept(ctx context.Context, id string) (entities.Quotation, error) {
	return u.transition(ctx, id, entities.QuotationStatusAccepted, entities.QuotationStatusSent)
}

func (u *QuotationUseCase) Decline(ctx context.Context, id string) (entities.Quotation, error) {
	return u.transition(ctx, id, entities.QuotationStatusDeclined, entities.QuotationStatusSent)
}

func (u *QuotationUseCase) Expire(ctx context.Context, id string) (entities.Quotation, error) {
	return u.transition(ctx, id, entities.QuotationStatusExpired, entities.QuotationStatusDraft, entities.QuotationStatusSent)
}

func (u *QuotationUseCase) transition(ctx context.Context, id string, to entities.QuotationStatus, from ...entities.QuotationStatus) (entities.Quotation, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}

	allowed := false
	for _, s := range from {
		if q.Status == s {
			allowed = true
			break
		}
	}
	if !allowed {
		return entities.Quotation{}, ErrInvalidTransition
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, to)
	if err != nil {
		return entities.Quotation{}, err
	}
	if updated.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return updated, nil
}
