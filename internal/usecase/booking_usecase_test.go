package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"adspace_ops/internal/domain/entities"
	mock_interfaces "adspace_ops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestBookingUseCase_Create(t *testing.T) {
	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)

	availableBillboard := entities.Billboard{
		ID:       "bb-1",
		SiteName: "EDSA Northbound",
		Status:   entities.BillboardStatusAvailable,
	}

	t.Run("invalid billboard id", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil)
		_, err := uc.Create(context.Background(), "  ", "Acme", start, end)
		if !errors.Is(err, ErrInvalidBillboardID) {
			t.Fatalf("expected ErrInvalidBillboardID, got %v", err)
		}
	})

	t.Run("inverted range", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil)
		_, err := uc.Create(context.Background(), "bb-1", "Acme", end, start)
		if !errors.Is(err, ErrInvalidBookingRange) {
			t.Fatalf("expected ErrInvalidBookingRange, got %v", err)
		}
	})

	t.Run("billboard under maintenance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		billboardRepo := mock_interfaces.NewMockIBillboardRepository(ctrl)
		uc := NewBookingUseCase(nil, billboardRepo)

		billboardRepo.EXPECT().GetByID(gomock.Any(), "bb-1").Return(entities.Billboard{
			ID: "bb-1", Status: entities.BillboardStatusMaintenance,
		}, nil)

		_, err := uc.Create(context.Background(), "bb-1", "Acme", start, end)
		if !errors.Is(err, ErrBillboardUnavailable) {
			t.Fatalf("expected ErrBillboardUnavailable, got %v", err)
		}
	})

	t.Run("overlapping active booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		billboardRepo := mock_interfaces.NewMockIBillboardRepository(ctrl)
		uc := NewBookingUseCase(repo, billboardRepo)

		billboardRepo.EXPECT().GetByID(gomock.Any(), "bb-1").Return(availableBillboard, nil)
		repo.EXPECT().ListActiveByBillboardID(gomock.Any(), "bb-1").Return([]entities.Booking{{
			ID:          "bk-0",
			BillboardID: "bb-1",
			StartDate:   start.AddDate(0, 0, 10),
			EndDate:     end.AddDate(0, 0, 10),
			Status:      entities.BookingStatusActive,
		}}, nil)

		_, err := uc.Create(context.Background(), "bb-1", "Acme", start, end)
		if !errors.Is(err, ErrBookingOverlap) {
			t.Fatalf("expected ErrBookingOverlap, got %v", err)
		}
	})

	t.Run("success flips billboard to booked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		billboardRepo := mock_interfaces.NewMockIBillboardRepository(ctrl)
		uc := NewBookingUseCase(repo, billboardRepo)

		billboardRepo.EXPECT().GetByID(gomock.Any(), "bb-1").Return(availableBillboard, nil)
		repo.EXPECT().ListActiveByBillboardID(gomock.Any(), "bb-1").Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Booking) (entities.Booking, error) {
				return b, nil
			})
		billboardRepo.EXPECT().UpdateStatusByID(gomock.Any(), "bb-1", entities.BillboardStatusBooked).Return(availableBillboard, nil)

		got, err := uc.Create(context.Background(), "bb-1", "  Acme  ", start, end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.BookingStatusActive {
			t.Fatalf("expected active booking, got %s", got.Status)
		}
		if got.ClientName != "Acme" {
			t.Fatalf("client name should be trimmed, got %q", got.ClientName)
		}
	})

	t.Run("status flip failure is tolerated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		billboardRepo := mock_interfaces.NewMockIBillboardRepository(ctrl)
		uc := NewBookingUseCase(repo, billboardRepo)

		billboardRepo.EXPECT().GetByID(gomock.Any(), "bb-1").Return(availableBillboard, nil)
		repo.EXPECT().ListActiveByBillboardID(gomock.Any(), "bb-1").Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Booking) (entities.Booking, error) {
				return b, nil
			})
		billboardRepo.EXPECT().UpdateStatusByID(gomock.Any(), "bb-1", entities.BillboardStatusBooked).
			Return(entities.Billboard{}, errors.New("conditional check failed"))

		if _, err := uc.Create(context.Background(), "bb-1", "Acme", start, end); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBookingUseCase_Cancel(t *testing.T) {
	active := entities.Booking{
		ID:          "bk-1",
		BillboardID: "bb-1",
		Status:      entities.BookingStatusActive,
	}

	t.Run("not active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo, nil)

		cancelled := active
		cancelled.Status = entities.BookingStatusCancelled
		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(cancelled, nil)

		_, err := uc.Cancel(context.Background(), "bk-1")
		if !errors.Is(err, ErrBookingNotActive) {
			t.Fatalf("expected ErrBookingNotActive, got %v", err)
		}
	})

	t.Run("releases billboard when last booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		billboardRepo := mock_interfaces.NewMockIBillboardRepository(ctrl)
		uc := NewBookingUseCase(repo, billboardRepo)

		cancelled := active
		cancelled.Status = entities.BookingStatusCancelled
		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(active, nil)
		repo.EXPECT().UpdateStatusByID(gomock.Any(), "bk-1", entities.BookingStatusCancelled).Return(cancelled, nil)
		repo.EXPECT().ListActiveByBillboardID(gomock.Any(), "bb-1").Return(nil, nil)
		billboardRepo.EXPECT().UpdateStatusByID(gomock.Any(), "bb-1", entities.BillboardStatusAvailable).Return(entities.Billboard{ID: "bb-1"}, nil)

		got, err := uc.Cancel(context.Background(), "bk-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.BookingStatusCancelled {
			t.Fatalf("expected cancelled, got %s", got.Status)
		}
	})

	t.Run("keeps billboard booked while others remain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		billboardRepo := mock_interfaces.NewMockIBillboardRepository(ctrl)
		uc := NewBookingUseCase(repo, billboardRepo)

		cancelled := active
		cancelled.Status = entities.BookingStatusCancelled
		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(active, nil)
		repo.EXPECT().UpdateStatusByID(gomock.Any(), "bk-1", entities.BookingStatusCancelled).Return(cancelled, nil)
		repo.EXPECT().ListActiveByBillboardID(gomock.Any(), "bb-1").Return([]entities.Booking{{ID: "bk-2", Status: entities.BookingStatusActive}}, nil)

		if _, err := uc.Cancel(context.Background(), "bk-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "bk-9").Return(entities.Booking{}, nil)

		_, err := uc.Cancel(context.Background(), "bk-9")
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})
}
