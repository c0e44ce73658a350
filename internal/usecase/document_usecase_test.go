package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"adspace_ops/internal/domain/entities"
	mock_interfaces "adspace_ops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testCompany = entities.CompanyView{
	Name:    "AdSpace Outdoor Media",
	Address: "123 Ayala Ave",
	Phone:   "555-0100",
	Email:   "ops@adspace.example",
}

func TestDocumentUseCase_BuildEstimateDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	estimateRepo := mock_interfaces.NewMockICostEstimateRepository(ctrl)
	uc := NewDocumentUseCase(testCompany, estimateRepo, nil, nil, nil, nil, nil)

	specs := entities.LineItemSpecs{Height: 40, Width: 60}
	estimate := entities.CostEstimate{
		ID:         "est-1",
		ClientName: "Acme",
		LineItems: []entities.LineItem{
			{ID: "r1", Category: entities.RentalCategoryMarker, Description: "EDSA Northbound", UnitPrice: 3000, Quantity: 1, Total: 3000, Specs: &specs},
			{ID: "x1", SiteAnchorID: "r1", Category: "Production", Description: "Tarpaulin print", UnitPrice: 250, Quantity: 2, Total: 500},
			{ID: "r2", Category: entities.RentalCategoryMarker, Description: "C5 Southbound", UnitPrice: 2000, Quantity: 1, Total: 2000},
		},
		TotalAmount: 5500.005,
		StartDate:   time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC),
		Status:      entities.CostEstimateStatusSent,
	}
	estimateRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(estimate, nil)

	model, err := uc.BuildEstimateDocument(context.Background(), "est-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if model.Type != entities.DocumentTypeCostEstimate || model.Number != "est-1" {
		t.Fatalf("unexpected header: %+v", model)
	}
	if model.Company.Name != testCompany.Name {
		t.Fatalf("company block missing: %+v", model.Company)
	}
	if len(model.Sections) != 2 {
		t.Fatalf("expected one section per site, got %d", len(model.Sections))
	}
	first := model.Sections[0]
	if first.SiteName != "EDSA Northbound" || len(first.Rows) != 2 {
		t.Fatalf("anchor site should carry its extra item: %+v", first)
	}
	if first.Subtotal != 3500 {
		t.Fatalf("expected subtotal 3500, got %v", first.Subtotal)
	}
	if model.TotalAmount != 5500.01 {
		t.Fatalf("grand total should be rounded to cents, got %v", model.TotalAmount)
	}
}

func TestDocumentUseCase_BuildJobOrderDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	jobOrderRepo := mock_interfaces.NewMockIJobOrderRepository(ctrl)
	uc := NewDocumentUseCase(testCompany, nil, nil, jobOrderRepo, nil, nil, nil)

	jobOrderRepo.EXPECT().GetByID(gomock.Any(), "jo-1").Return(entities.JobOrder{
		ID:         "jo-1",
		ClientName: "Acme",
		SiteNames:  []string{"EDSA Northbound", "C5 Southbound"},
		Status:     entities.JobOrderStatusOpen,
	}, nil)

	model, err := uc.BuildJobOrderDocument(context.Background(), "jo-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if model.Type != entities.DocumentTypeJobOrder {
		t.Fatalf("unexpected type %s", model.Type)
	}
	if len(model.Sections) != 2 || model.Sections[1].SiteName != "C5 Southbound" {
		t.Fatalf("expected one section per site: %+v", model.Sections)
	}
}

func TestDocumentUseCase_Generate(t *testing.T) {
	estimate := entities.CostEstimate{
		ID:         "est-1",
		ClientName: "Acme",
		LineItems: []entities.LineItem{
			{ID: "r1", Category: entities.RentalCategoryMarker, Description: "EDSA Northbound", UnitPrice: 3000, Quantity: 1, Total: 3000},
		},
		TotalAmount: 3000,
		Status:      entities.CostEstimateStatusSent,
	}

	t.Run("renderer not configured", func(t *testing.T) {
		uc := NewDocumentUseCase(testCompany, nil, nil, nil, nil, nil, nil)
		_, err := uc.GenerateEstimateDocument(context.Background(), "est-1")
		if !errors.Is(err, ErrRendererNotConfigured) {
			t.Fatalf("expected ErrRendererNotConfigured, got %v", err)
		}
	})

	t.Run("storage not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
		uc := NewDocumentUseCase(testCompany, nil, nil, nil, nil, renderer, nil)

		_, err := uc.GenerateEstimateDocument(context.Background(), "est-1")
		if !errors.Is(err, ErrStorageNotConfigured) {
			t.Fatalf("expected ErrStorageNotConfigured, got %v", err)
		}
	})

	t.Run("renders and uploads", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimateRepo := mock_interfaces.NewMockICostEstimateRepository(ctrl)
		renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
		storage := mock_interfaces.NewMockIFileStorage(ctrl)
		uc := NewDocumentUseCase(testCompany, estimateRepo, nil, nil, nil, renderer, storage)

		pdf := []byte("%PDF-1.4 test")
		estimateRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(estimate, nil)
		renderer.EXPECT().Render(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, model entities.DocumentModel) ([]byte, error) {
				if model.Number != "est-1" {
					t.Fatalf("renderer got the wrong model: %+v", model)
				}
				return pdf, nil
			})
		storage.EXPECT().Upload(gomock.Any(), "documents/cost_estimate/est-1.pdf", "application/pdf", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ string, body []byte) (string, error) {
				if !bytes.Equal(body, pdf) {
					t.Fatalf("uploaded body does not match the rendered pdf")
				}
				return "https://cdn.example/documents/cost_estimate/est-1.pdf", nil
			})

		url, err := uc.GenerateEstimateDocument(context.Background(), "est-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if url != "https://cdn.example/documents/cost_estimate/est-1.pdf" {
			t.Fatalf("unexpected url %q", url)
		}
	})

	t.Run("render failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimateRepo := mock_interfaces.NewMockICostEstimateRepository(ctrl)
		renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
		storage := mock_interfaces.NewMockIFileStorage(ctrl)
		uc := NewDocumentUseCase(testCompany, estimateRepo, nil, nil, nil, renderer, storage)

		renderErr := errors.New("renderer returned status 502")
		estimateRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(estimate, nil)
		renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return(nil, renderErr)

		_, err := uc.GenerateEstimateDocument(context.Background(), "est-1")
		if !errors.Is(err, renderErr) {
			t.Fatalf("expected the render error, got %v", err)
		}
	})

	t.Run("missing estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimateRepo := mock_interfaces.NewMockICostEstimateRepository(ctrl)
		renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
		storage := mock_interfaces.NewMockIFileStorage(ctrl)
		uc := NewDocumentUseCase(testCompany, estimateRepo, nil, nil, nil, renderer, storage)

		estimateRepo.EXPECT().GetByID(gomock.Any(), "est-9").Return(entities.CostEstimate{}, nil)

		_, err := uc.GenerateEstimateDocument(context.Background(), "est-9")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})
}
