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
	ErrBillboardNotFound      = errors.New("billboard not found")
	ErrInvalidBillboardID     = errors.New("invalid billboard id")
	ErrInvalidSiteName        = errors.New("invalid site name")
	ErrInvalidMonthlyRate     = errors.New("invalid monthly rate")
	ErrInvalidBillboardStatus = errors.New("invalid billboard status")
)

// IBillboardUseCase exposes site inventory operations.

type IBillboardUseCase interface {
	Create(ctx context.Context, siteName, location string, specs entities.LineItemSpecs, monthlyRate float64) (entities.Billboard, error)
	GetByID(ctx context.Context, id string) (entities.Billboard, error)
	List(ctx context.Context) ([]entities.Billboard, error)
	UpdateStatus(ctx context.Context, id string, status entities.BillboardStatus) (entities.Billboard, error)
	UpdateRate(ctx context.Context, id string, monthlyRate float64) (entities.Billboard, error)
}

type BillboardUseCase struct {
	repo interfaces.IBillboardRepository
}

var _ IBillboardUseCase = (*BillboardUseCase)(nil)

func NewBillboardUseCase(repo interfaces.IBillboardRepository) *BillboardUseCase {
	return &BillboardUseCase{repo: repo}
}

func (u *BillboardUseCase) Create(ctx context.Context, siteName, location string, specs entities.LineItemSpecs, monthlyRate float64) (entities.Billboard, error) {
	siteName = strings.TrimSpace(siteName)
	if siteName == "" {
		return entities.Billboard{}, ErrInvalidSiteName
	}
	if monthlyRate <= 0 {
		return entities.Billboard{}, ErrInvalidMonthlyRate
	}

	now := time.Now().UTC()
	b := entities.Billboard{
		ID:          uuid.NewString(),
		SiteName:    siteName,
		Location:    strings.TrimSpace(location),
		Specs:       specs,
		MonthlyRate: monthlyRate,
		Status:      entities.BillboardStatusAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, b)
}

func (u *BillboardUseCase) GetByID(ctx context.Context, id string) (entities.Billboard, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Billboard{}, ErrInvalidBillboardID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Billboard{}, err
	}
	if b.ID == "" {
		return entities.Billboard{}, ErrBillboardNotFound
	}
	return b, nil
}

func (u *BillboardUseCase) List(ctx context.Context) ([]entities.Billboard, error) {
	return u.repo.List(ctx)
}

func (u *BillboardUseCase) UpdateStatus(ctx context.Context, id string, status entities.BillboardStatus) (entities.Billboard, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Billboard{}, ErrInvalidBillboardID
	}
	switch status {
	case entities.BillboardStatusAvailable, entities.BillboardStatusBooked, entities.BillboardStatusMaintenance:
	default:
		return entities.Billboard{}, ErrInvalidBillboardStatus
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.Billboard{}, err
	}
	if updated.ID == "" {
		return entities.Billboard{}, ErrBillboardNotFound
	}
	return updated, nil
}

func (u *BillboardUseCase) UpdateRate(ctx context.Context, id string, monthlyRate float64) (entities.Billboard, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Billboard{}, ErrInvalidBillboardID
	}
	if monthlyRate <= 0 {
		return entities.Billboard{}, ErrInvalidMonthlyRate
	}

	updated, err := u.repo.UpdateRateByID(ctx, id, monthlyRate)
	if err != nil {
		return entities.Billboard{}, err
	}
	if updated.ID == "" {
		return entities.Billboard{}, ErrBillboardNotFound
	}
	return updated, nil
}
