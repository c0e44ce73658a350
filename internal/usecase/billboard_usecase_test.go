package usecase

import (
	"context"
	"errors"
	"testing"

	"adspace_ops/internal/domain/entities"
	mock_interfaces "adspace_ops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestBillboardUseCase_Create(t *testing.T) {
	t.Run("blank site name", func(t *testing.T) {
		uc := NewBillboardUseCase(nil)
		_, err := uc.Create(context.Background(), "  ", "EDSA", entities.LineItemSpecs{}, 3000)
		if !errors.Is(err, ErrInvalidSiteName) {
			t.Fatalf("expected ErrInvalidSiteName, got %v", err)
		}
	})

	t.Run("non-positive rate", func(t *testing.T) {
		uc := NewBillboardUseCase(nil)
		_, err := uc.Create(context.Background(), "EDSA Northbound", "EDSA", entities.LineItemSpecs{}, 0)
		if !errors.Is(err, ErrInvalidMonthlyRate) {
			t.Fatalf("expected ErrInvalidMonthlyRate, got %v", err)
		}
	})

	t.Run("starts available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillboardRepository(ctrl)
		uc := NewBillboardUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Billboard) (entities.Billboard, error) {
				return b, nil
			})

		got, err := uc.Create(context.Background(), " EDSA Northbound ", " EDSA cor. Timog Ave ", entities.LineItemSpecs{Height: 40, Width: 60}, 3000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.BillboardStatusAvailable {
			t.Fatalf("expected available, got %s", got.Status)
		}
		if got.SiteName != "EDSA Northbound" || got.Location != "EDSA cor. Timog Ave" {
			t.Fatalf("fields should be trimmed: %+v", got)
		}
		if got.ID == "" {
			t.Fatalf("expected a generated id")
		}
	})
}

func TestBillboardUseCase_UpdateStatus(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		uc := NewBillboardUseCase(nil)
		_, err := uc.UpdateStatus(context.Background(), "bb-1", entities.BillboardStatus("broken"))
		if !errors.Is(err, ErrInvalidBillboardStatus) {
			t.Fatalf("expected ErrInvalidBillboardStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillboardRepository(ctrl)
		uc := NewBillboardUseCase(repo)

		repo.EXPECT().UpdateStatusByID(gomock.Any(), "bb-9", entities.BillboardStatusMaintenance).Return(entities.Billboard{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "bb-9", entities.BillboardStatusMaintenance)
		if !errors.Is(err, ErrBillboardNotFound) {
			t.Fatalf("expected ErrBillboardNotFound, got %v", err)
		}
	})

	t.Run("updates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillboardRepository(ctrl)
		uc := NewBillboardUseCase(repo)

		repo.EXPECT().UpdateStatusByID(gomock.Any(), "bb-1", entities.BillboardStatusMaintenance).Return(entities.Billboard{
			ID: "bb-1", Status: entities.BillboardStatusMaintenance,
		}, nil)

		got, err := uc.UpdateStatus(context.Background(), "bb-1", entities.BillboardStatusMaintenance)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.BillboardStatusMaintenance {
			t.Fatalf("expected maintenance, got %s", got.Status)
		}
	})
}

func TestBillboardUseCase_UpdateRate(t *testing.T) {
	t.Run("non-positive rate", func(t *testing.T) {
		uc := NewBillboardUseCase(nil)
		_, err := uc.UpdateRate(context.Background(), "bb-1", -10)
		if !errors.Is(err, ErrInvalidMonthlyRate) {
			t.Fatalf("expected ErrInvalidMonthlyRate, got %v", err)
		}
	})

	t.Run("updates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillboardRepository(ctrl)
		uc := NewBillboardUseCase(repo)

		repo.EXPECT().UpdateRateByID(gomock.Any(), "bb-1", 4650.0).Return(entities.Billboard{
			ID: "bb-1", MonthlyRate: 4650,
		}, nil)

		got, err := uc.UpdateRate(context.Background(), "bb-1", 4650)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.MonthlyRate != 4650 {
			t.Fatalf("expected 4650, got %v", got.MonthlyRate)
		}
	})
}
