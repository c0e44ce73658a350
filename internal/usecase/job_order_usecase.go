package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"adspace_ops/internal/domain/entities"
	"adspace_ops/internal/domain/pricing"
	"adspace_ops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrJobOrderNotFound     = errors.New("job order not found")
	ErrInvalidJobOrderID    = errors.New("invalid job order id")
	ErrQuotationNotAccepted = errors.New("quotation not accepted")
)

// IJobOrderUseCase opens and drives internal work orders. A job order can
// only be created from an accepted quotation; its site list is derived from
// the quotation's line items via site grouping.

type IJobOrderUseCase interface {
	CreateFromQuotation(ctx context.Context, quotationID string, scheduledStart, scheduledEnd time.Time) (entities.JobOrder, error)
	GetByID(ctx context.Context, id string) (entities.JobOrder, error)
	Start(ctx context.Context, id string) (entities.JobOrder, error)
	Complete(ctx context.Context, id string) (entities.JobOrder, error)
	Cancel(ctx context.Context, id string) (entities.JobOrder, error)
}

type JobOrderUseCase struct {
	repo          interfaces.IJobOrderRepository
	quotationRepo interfaces.IQuotationRepository
}

var _ IJobOrderUseCase = (*JobOrderUseCase)(nil)

func NewJobOrderUseCase(repo interfaces.IJobOrderRepository, quotationRepo interfaces.IQuotationRepository) *JobOrderUseCase {
	return &JobOrderUseCase{repo: repo, quotationRepo: quotationRepo}
}

func (u *JobOrderUseCase) CreateFromQuotation(ctx context.Context, quotationID string, scheduledStart, scheduledEnd time.Time) (entities.JobOrder, error) {
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return entities.JobOrder{}, ErrInvalidQuotationID
	}

	q, err := u.quotationRepo.GetByID(ctx, quotationID)
	if err != nil {
		return entities.JobOrder{}, err
	}
	if q.ID == "" {
		return entities.JobOrder{}, ErrQuotationNotFound
	}
	if q.Status != entities.QuotationStatusAccepted {
		return entities.JobOrder{}, ErrQuotationNotAccepted
	}

	var siteNames []string
	for _, group := range pricing.GroupBySite(q.LineItems) {
		siteNames = append(siteNames, group.SiteName)
	}

	now := time.Now().UTC()
	j := entities.JobOrder{
		ID:             uuid.NewString(),
		QuotationID:    q.ID,
		ClientName:     q.ClientName,
		SiteNames:      siteNames,
		ScheduledStart: scheduledStart,
		ScheduledEnd:   scheduledEnd,
		Status:         entities.JobOrderStatusOpen,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return u.repo.Create(ctx, j)
}

func (u *JobOrderUseCase) GetByID(ctx context.Context, id string) (entities.JobOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.JobOrder{}, ErrInvalidJobOrderID
	}

	j, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.JobOrder{}, err
	}
	if j.ID == "" {
		return entities.JobOrder{}, ErrJobOrderNotFound
	}
	return j, nil
}

func (u *JobOrderUseCase) Start(ctx context.Context, id string) (entities.JobOrder, error) {
	return u.transition(ctx, id, entities.JobOrderStatusInProgress, entities.JobOrderStatusOpen)
}

func (u *JobOrderUseCase) Complete(ctx context.Context, id string) (entities.JobOrder, error) {
	return u.transition(ctx, id, entities.JobOrderStatusCompleted, entities.JobOrderStatusInProgress)
}

func (u *JobOrderUseCase) Cancel(ctx context.Context, id string) (entities.JobOrder, error) {
	return u.transition(ctx, id, entities.JobOrderStatusCancelled, entities.JobOrderStatusOpen, entities.JobOrderStatusInProgress)
}

func (u *JobOrderUseCase) transition(ctx context.Context, id string, to entities.JobOrderStatus, from ...entities.JobOrderStatus) (entities.JobOrder, error) {
	j, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.JobOrder{}, err
	}

	allowed := false
	for _, s := range from {
		if j.Status == s {
			allowed = true
			break
		}
	}
	if !allowed {
		return entities.JobOrder{}, ErrInvalidTransition
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, to)
	if err != nil {
		return entities.JobOrder{}, err
	}
	if updated.ID == "" {
		return entities.JobOrder{}, ErrJobOrderNotFound
	}
	return updated, nil
}
