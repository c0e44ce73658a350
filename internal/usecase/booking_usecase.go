package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"adspace_ops/internal/domain/entities"
	"adspace_ops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrInvalidBookingID     = errors.New("invalid booking id")
	ErrInvalidBookingRange  = errors.New("invalid booking date range")
	ErrBillboardUnavailable = errors.New("billboard not available")
	ErrBookingOverlap       = errors.New("billboard already booked for this period")
	ErrBookingNotActive     = errors.New("booking not active")
)

// IBookingUseCase reserves billboards over inclusive date ranges.
//
// Invariant: two active bookings of one billboard never overlap.

type IBookingUseCase interface {
	Create(ctx context.Context, billboardID, clientName string, start, end time.Time) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	Cancel(ctx context.Context, id string) (entities.Booking, error)
}

type BookingUseCase struct {
	repo          interfaces.IBookingRepository
	billboardRepo interfaces.IBillboardRepository
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(repo interfaces.IBookingRepository, billboardRepo interfaces.IBillboardRepository) *BookingUseCase {
	return &BookingUseCase{repo: repo, billboardRepo: billboardRepo}
}

func (u *BookingUseCase) Create(ctx context.Context, billboardID, clientName string, start, end time.Time) (entities.Booking, error) {
	billboardID = strings.TrimSpace(billboardID)
	if billboardID == "" {
		return entities.Booking{}, ErrInvalidBillboardID
	}
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return entities.Booking{}, ErrInvalidBookingRange
	}

	billboard, err := u.billboardRepo.GetByID(ctx, billboardID)
	if err != nil {
		return entities.Booking{}, err
	}
	if billboard.ID == "" {
		return entities.Booking{}, ErrBillboardNotFound
	}
	if billboard.Status == entities.BillboardStatusMaintenance {
		return entities.Booking{}, ErrBillboardUnavailable
	}

	active, err := u.repo.ListActiveByBillboardID(ctx, billboardID)
	if err != nil {
		return entities.Booking{}, err
	}
	for _, existing := range active {
		if existing.Overlaps(start, end) {
			log.Printf("[booking][usecase] overlap billboard_id=%s existing=%s", billboardID, existing.ID)
			return entities.Booking{}, ErrBookingOverlap
		}
	}

	now := time.Now().UTC()
	b := entities.Booking{
		ID:          uuid.NewString(),
		BillboardID: billboardID,
		ClientName:  strings.TrimSpace(clientName),
		StartDate:   start,
		EndDate:     end,
		Status:      entities.BookingStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.repo.Create(ctx, b)
	if err != nil {
		return entities.Booking{}, err
	}

	if _, err := u.billboardRepo.UpdateStatusByID(ctx, billboardID, entities.BillboardStatusBooked); err != nil {
		// Booking exists either way; the status flip is best effort and the
		// caller reconciles by re-fetching.
		log.Printf("[booking][usecase] billboard status flip failed billboard_id=%s err=%v", billboardID, err)
	}
	return created, nil
}

func (u *BookingUseCase) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

func (u *BookingUseCase) Cancel(ctx context.Context, id string) (entities.Booking, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.Status != entities.BookingStatusActive {
		return entities.Booking{}, ErrBookingNotActive
	}

	updated, err := u.repo.UpdateStatusByID(ctx, b.ID, entities.BookingStatusCancelled)
	if err != nil {
		return entities.Booking{}, err
	}
	if updated.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}

	remaining, err := u.repo.ListActiveByBillboardID(ctx, b.BillboardID)
	if err == nil && len(remaining) == 0 {
		if _, err := u.billboardRepo.UpdateStatusByID(ctx, b.BillboardID, entities.BillboardStatusAvailable); err != nil {
			log.Printf("[booking][usecase] billboard release failed billboard_id=%s err=%v", b.BillboardID, err)
		}
	}
	return updated, nil
}
