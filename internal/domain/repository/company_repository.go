package repository

import (
	"context"

	"github.com/oksasatya/job-portal-api/internal/domain/entity"
)

type CompanyRepository interface {
	Create(ctx context.Context, c *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetByName(ctx context.Context, name string) (*entity.Company, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Company, error)
	Update(ctx context.Context, c *entity.Company) error
}
