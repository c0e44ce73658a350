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
	ErrAssignmentNotFound    = errors.New("service assignment not found")
	ErrInvalidAssignmentID   = errors.New("invalid assignment id")
	ErrInvalidAssignmentData = errors.New("invalid assignment data")
	ErrJobOrderNotWorkable   = errors.New("job order not open or in progress")
)

// IServiceAssignmentUseCase schedules crews against job order sites.

type IServiceAssignmentUseCase interface {
	Assign(ctx context.Context, jobOrderID, siteName, crewName string, serviceType entities.ServiceType, serviceDate time.Time) (entities.ServiceAssignment, error)
	GetByID(ctx context.Context, id string) (entities.ServiceAssignment, error)
	ListByJobOrder(ctx context.Context, jobOrderID string) ([]entities.ServiceAssignment, error)
	Complete(ctx context.Context, id string) (entities.ServiceAssignment, error)
}

type ServiceAssignmentUseCase struct {
	repo         interfaces.IServiceAssignmentRepository
	jobOrderRepo interfaces.IJobOrderRepository
}

var _ IServiceAssignmentUseCase = (*ServiceAssignmentUseCase)(nil)

func NewServiceAssignmentUseCase(repo interfaces.IServiceAssignmentRepository, jobOrderRepo interfaces.IJobOrderRepository) *ServiceAssignmentUseCase {
	return &ServiceAssignmentUseCase{repo: repo, jobOrderRepo: jobOrderRepo}
}

func (u *ServiceAssignmentUseCase) Assign(ctx context.Context, jobOrderID, siteName, crewName string, serviceType entities.ServiceType, serviceDate time.Time) (entities.ServiceAssignment, error) {
	jobOrderID = strings.TrimSpace(jobOrderID)
	if jobOrderID == "" {
		return entities.ServiceAssignment{}, ErrInvalidJobOrderID
	}
	siteName = strings.TrimSpace(siteName)
	crewName = strings.TrimSpace(crewName)
	if siteName == "" || crewName == "" || serviceDate.IsZero() {
		return entities.ServiceAssignment{}, ErrInvalidAssignmentData
	}
	switch serviceType {
	case entities.ServiceTypeInstallation, entities.ServiceTypeMaintenance, entities.ServiceTypeDismantling:
	default:
		return entities.ServiceAssignment{}, ErrInvalidAssignmentData
	}

	j, err := u.jobOrderRepo.GetByID(ctx, jobOrderID)
	if err != nil {
		return entities.ServiceAssignment{}, err
	}
	if j.ID == "" {
		return entities.ServiceAssignment{}, ErrJobOrderNotFound
	}
	if j.Status != entities.JobOrderStatusOpen && j.Status != entities.JobOrderStatusInProgress {
		return entities.ServiceAssignment{}, ErrJobOrderNotWorkable
	}

	now := time.Now().UTC()
	a := entities.ServiceAssignment{
		ID:          uuid.NewString(),
		JobOrderID:  jobOrderID,
		SiteName:    siteName,
		CrewName:    crewName,
		ServiceType: serviceType,
		ServiceDate: serviceDate,
		Status:      entities.AssignmentStatusAssigned,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, a)
}

func (u *ServiceAssignmentUseCase) GetByID(ctx context.Context, id string) (entities.ServiceAssignment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceAssignment{}, ErrInvalidAssignmentID
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceAssignment{}, err
	}
	if a.ID == "" {
		return entities.ServiceAssignment{}, ErrAssignmentNotFound
	}
	return a, nil
}

func (u *ServiceAssignmentUseCase) ListByJobOrder(ctx context.Context, jobOrderID string) ([]entities.ServiceAssignment, error) {
	jobOrderID = strings.TrimSpace(jobOrderID)
	if jobOrderID == "" {
		return nil, ErrInvalidJobOrderID
	}
	return u.repo.ListByJobOrderID(ctx, jobOrderID)
}

func (u *ServiceAssignmentUseCase) Complete(ctx context.Context, id string) (entities.ServiceAssignment, error) {
	a, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceAssignment{}, err
	}
	if a.Status != entities.AssignmentStatusAssigned {
		return entities.ServiceAssignment{}, ErrInvalidTransition
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, entities.AssignmentStatusCompleted)
	if err != nil {
		return entities.ServiceAssignment{}, err
	}
	if updated.ID == "" {
		return entities.ServiceAssignment{}, ErrAssignmentNotFound
	}
	return updated, nil
}
