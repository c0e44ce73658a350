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

func TestJobOrderUseCase_CreateFromQuotation(t *testing.T) {
	start := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.April, 5, 0, 0, 0, 0, time.UTC)

	t.Run("quotation not accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotationRepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewJobOrderUseCase(nil, quotationRepo)

		quotationRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{
			ID: "q-1", Status: entities.QuotationStatusSent,
		}, nil)

		_, err := uc.CreateFromQuotation(context.Background(), "q-1", start, end)
		if !errors.Is(err, ErrQuotationNotAccepted) {
			t.Fatalf("expected ErrQuotationNotAccepted, got %v", err)
		}
	})

	t.Run("derives sites from the line items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobOrderRepository(ctrl)
		quotationRepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewJobOrderUseCase(repo, quotationRepo)

		quotationRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{
			ID:         "q-1",
			ClientName: "Acme",
			LineItems: []entities.LineItem{
				{ID: "r1", Category: entities.RentalCategoryMarker, Description: "EDSA Northbound", Total: 3000},
				{ID: "x1", SiteAnchorID: "r1", Category: "Production", Description: "Tarpaulin print", Total: 500},
				{ID: "r2", Category: entities.RentalCategoryMarker, Description: "C5 Southbound", Total: 2000},
			},
			Status: entities.QuotationStatusAccepted,
		}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.JobOrder) (entities.JobOrder, error) {
				return j, nil
			})

		got, err := uc.CreateFromQuotation(context.Background(), "q-1", start, end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.JobOrderStatusOpen {
			t.Fatalf("new job orders start open, got %s", got.Status)
		}
		want := []string{"EDSA Northbound", "C5 Southbound"}
		if len(got.SiteNames) != len(want) || got.SiteNames[0] != want[0] || got.SiteNames[1] != want[1] {
			t.Fatalf("expected sites %v, got %v", want, got.SiteNames)
		}
	})

	t.Run("quotation not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotationRepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewJobOrderUseCase(nil, quotationRepo)

		quotationRepo.EXPECT().GetByID(gomock.Any(), "q-9").Return(entities.Quotation{}, nil)

		_, err := uc.CreateFromQuotation(context.Background(), "q-9", start, end)
		if !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})
}

func TestJobOrderUseCase_Transitions(t *testing.T) {
	get := func(status entities.JobOrderStatus) entities.JobOrder {
		return entities.JobOrder{ID: "jo-1", Status: status}
	}

	t.Run("start open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobOrderRepository(ctrl)
		uc := NewJobOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "jo-1").Return(get(entities.JobOrderStatusOpen), nil)
		repo.EXPECT().UpdateStatusByID(gomock.Any(), "jo-1", entities.JobOrderStatusInProgress).Return(get(entities.JobOrderStatusInProgress), nil)

		got, err := uc.Start(context.Background(), "jo-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.JobOrderStatusInProgress {
			t.Fatalf("expected in_progress, got %s", got.Status)
		}
	})

	t.Run("complete requires in progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobOrderRepository(ctrl)
		uc := NewJobOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "jo-1").Return(get(entities.JobOrderStatusOpen), nil)

		_, err := uc.Complete(context.Background(), "jo-1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("cancel in progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobOrderRepository(ctrl)
		uc := NewJobOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "jo-1").Return(get(entities.JobOrderStatusInProgress), nil)
		repo.EXPECT().UpdateStatusByID(gomock.Any(), "jo-1", entities.JobOrderStatusCancelled).Return(get(entities.JobOrderStatusCancelled), nil)

		if _, err := uc.Cancel(context.Background(), "jo-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("cancel completed is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobOrderRepository(ctrl)
		uc := NewJobOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "jo-1").Return(get(entities.JobOrderStatusCompleted), nil)

		_, err := uc.Cancel(context.Background(), "jo-1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}
