package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"adspace_ops/internal/domain/entities"
	"adspace_ops/internal/domain/pricing"
	"adspace_ops/internal/usecase/interfaces"
)

var (
	ErrRendererNotConfigured = errors.New("document renderer not configured")
	ErrStorageNotConfigured  = errors.New("file storage not configured")
)

// IDocumentUseCase produces the printable business documents. Building a
// model is pure and read-only; Generate* additionally renders the model
// through the external PDF service and stores the result, returning its
// URL. Render or storage failures surface directly to the caller with no
// automatic retry.

type IDocumentUseCase interface {
	BuildEstimateDocument(ctx context.Context, estimateID string) (entities.DocumentModel, error)
	BuildQuotationDocument(ctx context.Context, quotationID string) (entities.DocumentModel, error)
	BuildJobOrderDocument(ctx context.Context, jobOrderID string) (entities.DocumentModel, error)
	BuildAssignmentDocument(ctx context.Context, assignmentID string) (entities.DocumentModel, error)
	GenerateEstimateDocument(ctx context.Context, estimateID string) (string, error)
	GenerateQuotationDocument(ctx context.Context, quotationID string) (string, error)
	GenerateJobOrderDocument(ctx context.Context, jobOrderID string) (string, error)
	GenerateAssignmentDocument(ctx context.Context, assignmentID string) (string, error)
}

type DocumentUseCase struct {
	company        entities.CompanyView
	estimateRepo   interfaces.ICostEstimateRepository
	quotationRepo  interfaces.IQuotationRepository
	jobOrderRepo   interfaces.IJobOrderRepository
	assignmentRepo interfaces.IServiceAssignmentRepository
	renderer       interfaces.IDocumentRenderer
	storage        interfaces.IFileStorage
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(
	company entities.CompanyView,
	estimateRepo interfaces.ICostEstimateRepository,
	quotationRepo interfaces.IQuotationRepository,
	jobOrderRepo interfaces.IJobOrderRepository,
	assignmentRepo interfaces.IServiceAssignmentRepository,
	renderer interfaces.IDocumentRenderer,
	storage interfaces.IFileStorage,
) *DocumentUseCase {
	return &DocumentUseCase{
		company:        company,
		estimateRepo:   estimateRepo,
		quotationRepo:  quotationRepo,
		jobOrderRepo:   jobOrderRepo,
		assignmentRepo: assignmentRepo,
		renderer:       renderer,
		storage:        storage,
	}
}

func (u *DocumentUseCase) BuildEstimateDocument(ctx context.Context, estimateID string) (entities.DocumentModel, error) {
	e, err := u.estimateRepo.GetByID(ctx, estimateID)
	if err != nil {
		return entities.DocumentModel{}, err
	}
	if e.ID == "" {
		return entities.DocumentModel{}, ErrEstimateNotFound
	}

	model := entities.DocumentModel{
		Type:        entities.DocumentTypeCostEstimate,
		Number:      e.ID,
		Title:       "Cost Estimate",
		Company:     u.company,
		ClientName:  e.ClientName,
		IssuedAt:    time.Now().UTC(),
		PeriodStart: e.StartDate,
		PeriodEnd:   e.EndDate,
		Sections:    lineItemSections(e.LineItems),
		TotalAmount: pricing.RoundToCents(e.TotalAmount),
	}
	return model, nil
}

func (u *DocumentUseCase) BuildQuotationDocument(ctx context.Context, quotationID string) (entities.DocumentModel, error) {
	q, err := u.quotationRepo.GetByID(ctx, quotationID)
	if err != nil {
		return entities.DocumentModel{}, err
	}
	if q.ID == "" {
		return entities.DocumentModel{}, ErrQuotationNotFound
	}

	model := entities.DocumentModel{
		Type:        entities.DocumentTypeQuotation,
		Number:      q.ID,
		Title:       "Quotation",
		Company:     u.company,
		ClientName:  q.ClientName,
		IssuedAt:    time.Now().UTC(),
		PeriodEnd:   q.ValidUntil,
		Sections:    lineItemSections(q.LineItems),
		TotalAmount: pricing.RoundToCents(q.TotalAmount),
		Notes:       fmt.Sprintf("Valid until %s", q.ValidUntil.Format("2006-01-02")),
	}
	return model, nil
}

func (u *DocumentUseCase) BuildJobOrderDocument(ctx context.Context, jobOrderID string) (entities.DocumentModel, error) {
	j, err := u.jobOrderRepo.GetByID(ctx, jobOrderID)
	if err != nil {
		return entities.DocumentModel{}, err
	}
	if j.ID == "" {
		return entities.DocumentModel{}, ErrJobOrderNotFound
	}

	sections := make([]entities.DocumentSection, 0, len(j.SiteNames))
	for _, site := range j.SiteNames {
		sections = append(sections, entities.DocumentSection{SiteName: site})
	}
	model := entities.DocumentModel{
		Type:        entities.DocumentTypeJobOrder,
		Number:      j.ID,
		Title:       "Job Order",
		Company:     u.company,
		ClientName:  j.ClientName,
		IssuedAt:    time.Now().UTC(),
		PeriodStart: j.ScheduledStart,
		PeriodEnd:   j.ScheduledEnd,
		Sections:    sections,
	}
	return model, nil
}

func (u *DocumentUseCase) BuildAssignmentDocument(ctx context.Context, assignmentID string) (entities.DocumentModel, error) {
	a, err := u.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return entities.DocumentModel{}, err
	}
	if a.ID == "" {
		return entities.DocumentModel{}, ErrAssignmentNotFound
	}

	model := entities.DocumentModel{
		Type:       entities.DocumentTypeServiceAssignment,
		Number:     a.ID,
		Title:      "Service Assignment",
		Company:    u.company,
		ClientName: a.CrewName,
		IssuedAt:   time.Now().UTC(),
		Sections: []entities.DocumentSection{{
			SiteName: a.SiteName,
			Rows: []entities.DocumentRow{{
				Description: fmt.Sprintf("%s on %s", a.ServiceType, a.ServiceDate.Format("2006-01-02")),
				Quantity:    1,
			}},
		}},
	}
	return model, nil
}

func (u *DocumentUseCase) GenerateEstimateDocument(ctx context.Context, estimateID string) (string, error) {
	return u.generate(ctx, func() (entities.DocumentModel, error) {
		return u.BuildEstimateDocument(ctx, estimateID)
	})
}

func (u *DocumentUseCase) GenerateQuotationDocument(ctx context.Context, quotationID string) (string, error) {
	return u.generate(ctx, func() (entities.DocumentModel, error) {
		return u.BuildQuotationDocument(ctx, quotationID)
	})
}

func (u *DocumentUseCase) GenerateJobOrderDocument(ctx context.Context, jobOrderID string) (string, error) {
	return u.generate(ctx, func() (entities.DocumentModel, error) {
		return u.BuildJobOrderDocument(ctx, jobOrderID)
	})
}

func (u *DocumentUseCase) GenerateAssignmentDocument(ctx context.Context, assignmentID string) (string, error) {
	return u.generate(ctx, func() (entities.DocumentModel, error) {
		return u.BuildAssignmentDocument(ctx, assignmentID)
	})
}

func (u *DocumentUseCase) generate(ctx context.Context, build func() (entities.DocumentModel, error)) (string, error) {
	if u.renderer == nil {
		return "", ErrRendererNotConfigured
	}
	if u.storage == nil {
		return "", ErrStorageNotConfigured
	}

	model, err := build()
	if err != nil {
		return "", err
	}

	pdf, err := u.renderer.Render(ctx, model)
	if err != nil {
		log.Printf("[document][usecase] render failed type=%s number=%s err=%v", model.Type, model.Number, err)
		return "", err
	}

	key := fmt.Sprintf("documents/%s/%s.pdf", model.Type, model.Number)
	url, err := u.storage.Upload(ctx, key, "application/pdf", pdf)
	if err != nil {
		log.Printf("[document][usecase] upload failed key=%s err=%v", key, err)
		return "", err
	}
	log.Printf("[document][usecase] generated type=%s number=%s url=%s", model.Type, model.Number, url)
	return url, nil
}

// lineItemSections lays the estimate/quotation line items out per site.
// Orphan items appear under every site, as they do in the grouping engine;
// section subtotals therefore need not sum to the grand total.
func lineItemSections(items []entities.LineItem) []entities.DocumentSection {
	groups := pricing.GroupBySite(items)
	sections := make([]entities.DocumentSection, 0, len(groups))
	for _, g := range groups {
		section := entities.DocumentSection{SiteName: g.SiteName}
		subtotal := 0.0
		for _, item := range g.Items {
			section.Rows = append(section.Rows, entities.DocumentRow{
				Description: item.Description,
				Quantity:    item.Quantity,
				UnitPrice:   pricing.RoundToCents(item.UnitPrice),
				Amount:      pricing.RoundToCents(item.Total),
			})
			subtotal += item.Total
		}
		section.Subtotal = pricing.RoundToCents(subtotal)
		sections = append(sections, section)
	}
	return sections
}
