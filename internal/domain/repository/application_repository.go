package repository

import (
	"context"

	"github.com/oksasatya/job-portal-api/internal/domain/entity"
)

// ApplicationRepository must enforce uniqueness of (job, applicant) itself;
// callers' pre-checks are not sufficient under concurrent applies.
type ApplicationRepository interface {
	Create(ctx context.Context, a *entity.Application) error
	GetByID(ctx context.Context, id string) (*entity.Application, error)
	FindByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*entity.Application, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]entity.ApplicationDetail, error)
	ListApplicants(ctx context.Context, jobID string) ([]entity.Applicant, error)
	UpdateStatus(ctx context.Context, id string, status entity.ApplicationStatus) (*entity.Application, error)
}
