package repository

import (
	"context"

	"github.com/oksasatya/job-portal-api/internal/domain/entity"
)

type JobRepository interface {
	Create(ctx context.Context, j *entity.Job) error
	GetByID(ctx context.Context, id string) (*entity.JobDetail, error)
	// Search matches keyword case-insensitively against title, description
	// and company name. An empty keyword returns every job. Newest first.
	Search(ctx context.Context, keyword string) ([]entity.JobDetail, error)
	// ListByIDs keeps the order of ids and skips unknown ones.
	ListByIDs(ctx context.Context, ids []string) ([]entity.JobDetail, error)
	// ListByCompanyOwner returns jobs whose company is owned by ownerID.
	ListByCompanyOwner(ctx context.Context, ownerID string) ([]entity.JobDetail, error)
}
