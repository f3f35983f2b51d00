package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/job-portal-api/internal/domain/entity"
	"github.com/oksasatya/job-portal-api/internal/domain/repository"
)

const companyColumns = `id, name, description, website, location, logo_url, owner_id, created_at, updated_at`

type CompanyRepository struct {
	pool *pgxpool.Pool
}

func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{pool: pool}
}

func scanCompany(row pgx.Row) (*entity.Company, error) {
	c := &entity.Company{}
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Website, &c.Location, &c.LogoURL,
		&c.OwnerID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, mapErr(err)
	}
	return c, nil
}

func (r *CompanyRepository) Create(ctx context.Context, c *entity.Company) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO companies (name, description, website, location, logo_url, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, c.Name, c.Description, c.Website, c.Location, c.LogoURL, c.OwnerID)
	return mapErr(row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt))
}

func (r *CompanyRepository) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	return scanCompany(r.pool.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
}

func (r *CompanyRepository) GetByName(ctx context.Context, name string) (*entity.Company, error) {
	return scanCompany(r.pool.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE lower(name) = lower($1)`, name))
}

func (r *CompanyRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.Company, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+companyColumns+` FROM companies WHERE owner_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()
	out := make([]entity.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, mapErr(rows.Err())
}

func (r *CompanyRepository) Update(ctx context.Context, c *entity.Company) error {
	c.UpdatedAt = time.Now().UTC()
	res, err := r.pool.Exec(ctx, `
		UPDATE companies
		SET name = $1, description = $2, website = $3, location = $4, logo_url = $5, updated_at = $6
		WHERE id = $7
	`, c.Name, c.Description, c.Website, c.Location, c.LogoURL, c.UpdatedAt, c.ID)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.CompanyRepository = (*CompanyRepository)(nil)
