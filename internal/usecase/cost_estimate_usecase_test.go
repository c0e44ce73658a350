package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"adspace_ops/internal/domain/entities"
	"adspace_ops/internal/domain/pricing"
	mock_interfaces "adspace_ops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func estDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCostEstimateUseCase_Create(t *testing.T) {
	t.Run("no sites", func(t *testing.T) {
		uc := NewCostEstimateUseCase(nil, nil)
		_, err := uc.Create(context.Background(), CreateEstimateInput{
			ClientName: "Acme",
			StartDate:  estDate(2026, time.January, 1),
			EndDate:    estDate(2026, time.January, 31),
		})
		if !errors.Is(err, ErrInvalidEstimateInput) {
			t.Fatalf("expected ErrInvalidEstimateInput, got %v", err)
		}
	})

	t.Run("missing dates", func(t *testing.T) {
		uc := NewCostEstimateUseCase(nil, nil)
		_, err := uc.Create(context.Background(), CreateEstimateInput{
			ClientName: "Acme",
			Sites:      []EstimateSiteInput{{BillboardID: "bb-1"}},
		})
		if !errors.Is(err, ErrInvalidEstimateInput) {
			t.Fatalf("expected ErrInvalidEstimateInput, got %v", err)
		}
	})

	t.Run("billboard not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		billboardRepo := mock_interfaces.NewMockIBillboardRepository(ctrl)
		uc := NewCostEstimateUseCase(nil, billboardRepo)

		billboardRepo.EXPECT().GetByID(gomock.Any(), "bb-1").Return(entities.Billboard{}, nil)

		_, err := uc.Create(context.Background(), CreateEstimateInput{
			ClientName: "Acme",
			StartDate:  estDate(2026, time.January, 1),
			EndDate:    estDate(2026, time.January, 31),
			Sites:      []EstimateSiteInput{{BillboardID: "bb-1"}},
		})
		if !errors.Is(err, ErrBillboardNotFound) {
			t.Fatalf("expected ErrBillboardNotFound, got %v", err)
		}
	})

	t.Run("builds anchors and extras", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICostEstimateRepository(ctrl)
		billboardRepo := mock_interfaces.NewMockIBillboardRepository(ctrl)
		uc := NewCostEstimateUseCase(repo, billboardRepo)

		billboardRepo.EXPECT().GetByID(gomock.Any(), "bb-1").Return(entities.Billboard{
			ID:          "bb-1",
			SiteName:    "EDSA Northbound",
			Location:    "EDSA cor. Timog Ave",
			Specs:       entities.LineItemSpecs{Height: 40, Width: 60},
			MonthlyRate: 3000,
			Status:      entities.BillboardStatusBooked,
		}, nil)

		var created entities.CostEstimate
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.CostEstimate) (entities.CostEstimate, error) {
				created = e
				return e, nil
			})

		got, err := uc.Create(context.Background(), CreateEstimateInput{
			BookingID:  "bk-1",
			ClientName: "Acme",
			StartDate:  estDate(2026, time.January, 1),
			EndDate:    estDate(2026, time.January, 31),
			Sites: []EstimateSiteInput{{
				BillboardID: "bb-1",
				ExtraItems: []EstimateItemInput{
					{Category: "Production", Description: "Tarpaulin print", UnitPrice: 250, Quantity: 2},
				},
			}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(got.LineItems) != 2 {
			t.Fatalf("expected 2 line items, got %d", len(got.LineItems))
		}
		anchor, extra := got.LineItems[0], got.LineItems[1]
		if !anchor.IsSiteAnchor() {
			t.Fatalf("first item should be the rental anchor: %+v", anchor)
		}
		if math.Abs(anchor.Total-3000) > 1e-9 {
			t.Fatalf("full-month proration should equal the monthly rate, got %v", anchor.Total)
		}
		if extra.SiteAnchorID != anchor.ID {
			t.Fatalf("extra item should reference the anchor, got %q want %q", extra.SiteAnchorID, anchor.ID)
		}
		if math.Abs(extra.Total-500) > 1e-9 {
			t.Fatalf("extra total should be unit price times quantity, got %v", extra.Total)
		}
		if math.Abs(got.TotalAmount-3500) > 1e-9 {
			t.Fatalf("estimate total should sum the items, got %v", got.TotalAmount)
		}
		if got.DurationDays != 31 {
			t.Fatalf("expected 31 inclusive days, got %d", got.DurationDays)
		}
		if created.Status != entities.CostEstimateStatusDraft {
			t.Fatalf("new estimates start as draft, got %s", created.Status)
		}
	})
}

func TestCostEstimateUseCase_EditField(t *testing.T) {
	draft := func() entities.CostEstimate {
		return entities.CostEstimate{
			ID:         "est-1",
			ClientName: "Acme",
			LineItems: []entities.LineItem{{
				ID:        "r1",
				Category:  entities.RentalCategoryMarker,
				UnitPrice: 3000,
				Quantity:  1,
				Total:     3000,
				Description: "EDSA Northbound",
			}},
			TotalAmount:  3000,
			DurationDays: 31,
			StartDate:    estDate(2026, time.January, 1),
			EndDate:      estDate(2026, time.January, 31),
			Status:       entities.CostEstimateStatusDraft,
		}
	}

	t.Run("invalid id", func(t *testing.T) {
		uc := NewCostEstimateUseCase(nil, nil)
		_, err := uc.EditField(context.Background(), "  ", pricing.FieldEdit{})
		if !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("not editable once sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICostEstimateRepository(ctrl)
		uc := NewCostEstimateUseCase(repo, nil)

		sent := draft()
		sent.Status = entities.CostEstimateStatusSent
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(sent, nil)

		_, err := uc.EditField(context.Background(), "est-1", pricing.FieldEdit{
			SiteName: "EDSA Northbound", Field: pricing.EditFieldUnitPrice, Value: 4000.0,
		})
		if !errors.Is(err, ErrEstimateNotEditable) {
			t.Fatalf("expected ErrEstimateNotEditable, got %v", err)
		}
	})

	t.Run("persists recomputed fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICostEstimateRepository(ctrl)
		uc := NewCostEstimateUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(draft(), nil)

		var persisted map[string]any
		repo.EXPECT().UpdateFieldsByID(gomock.Any(), "est-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, fields map[string]any) (entities.CostEstimate, error) {
				persisted = fields
				return entities.CostEstimate{ID: "est-1"}, nil
			})

		_, err := uc.EditField(context.Background(), "est-1", pricing.FieldEdit{
			SiteName: "EDSA Northbound", Field: pricing.EditFieldUnitPrice, Value: 4650.0,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		total, ok := persisted["total_amount"].(float64)
		if !ok {
			t.Fatalf("expected total_amount in the partial update, got %v", persisted)
		}
		if math.Abs(total-4650) > 1e-9 {
			t.Fatalf("full-January proration of the new rate should be 4650, got %v", total)
		}
		if _, ok := persisted["line_items"]; !ok {
			t.Fatalf("expected line_items in the partial update, got %v", persisted)
		}
		if _, ok := persisted["id"]; ok {
			t.Fatalf("partial update must not carry the id: %v", persisted)
		}
	})

	t.Run("rejects unknown field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICostEstimateRepository(ctrl)
		uc := NewCostEstimateUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(draft(), nil)

		_, err := uc.EditField(context.Background(), "est-1", pricing.FieldEdit{
			SiteName: "EDSA Northbound", Field: "color", Value: "red",
		})
		if !errors.Is(err, pricing.ErrUnsupportedField) {
			t.Fatalf("expected ErrUnsupportedField, got %v", err)
		}
	})
}

func TestCostEstimateUseCase_Transitions(t *testing.T) {
	get := func(status entities.CostEstimateStatus) entities.CostEstimate {
		return entities.CostEstimate{ID: "est-1", Status: status}
	}

	t.Run("send draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICostEstimateRepository(ctrl)
		uc := NewCostEstimateUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(get(entities.CostEstimateStatusDraft), nil)
		repo.EXPECT().UpdateStatusByID(gomock.Any(), "est-1", entities.CostEstimateStatusSent).Return(get(entities.CostEstimateStatusSent), nil)

		got, err := uc.Send(context.Background(), "est-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.CostEstimateStatusSent {
			t.Fatalf("expected sent, got %s", got.Status)
		}
	})

	t.Run("accept requires sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICostEstimateRepository(ctrl)
		uc := NewCostEstimateUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(get(entities.CostEstimateStatusDraft), nil)

		_, err := uc.Accept(context.Background(), "est-1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("revise accepts declined", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICostEstimateRepository(ctrl)
		uc := NewCostEstimateUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(get(entities.CostEstimateStatusDeclined), nil)
		repo.EXPECT().UpdateStatusByID(gomock.Any(), "est-1", entities.CostEstimateStatusRevised).Return(get(entities.CostEstimateStatusRevised), nil)

		got, err := uc.Revise(context.Background(), "est-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.CostEstimateStatusRevised {
			t.Fatalf("expected revised, got %s", got.Status)
		}
	})

	t.Run("revise rejects accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICostEstimateRepository(ctrl)
		uc := NewCostEstimateUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(get(entities.CostEstimateStatusAccepted), nil)

		_, err := uc.Revise(context.Background(), "est-1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICostEstimateRepository(ctrl)
		uc := NewCostEstimateUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-9").Return(entities.CostEstimate{}, nil)

		_, err := uc.Send(context.Background(), "est-9")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})
}
