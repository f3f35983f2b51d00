package postgres

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/job-portal-api/internal/domain/entity"
	"github.com/oksasatya/job-portal-api/internal/domain/repository"
)

const jobDetailSelect = `
	SELECT j.id, j.title, j.description, j.requirements, j.salary, j.location, j.job_type,
	       j.position, j.experience_level, j.company_id, j.created_by, j.created_at, j.updated_at,
	       c.name, c.location, c.logo_url
	FROM jobs j
	JOIN companies c ON c.id = j.company_id`

type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

func scanJobDetail(row pgx.Row) (*entity.JobDetail, error) {
	d := &entity.JobDetail{}
	if err := row.Scan(&d.ID, &d.Title, &d.Description, &d.Requirements, &d.Salary, &d.Location,
		&d.JobType, &d.Position, &d.ExperienceLevel, &d.CompanyID, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt,
		&d.Company.Name, &d.Company.Location, &d.Company.LogoURL); err != nil {
		return nil, mapErr(err)
	}
	d.Company.ID = d.CompanyID
	return d, nil
}

func collectJobDetails(rows pgx.Rows) ([]entity.JobDetail, error) {
	defer rows.Close()
	out := make([]entity.JobDetail, 0)
	for rows.Next() {
		d, err := scanJobDetail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, mapErr(rows.Err())
}

func (r *JobRepository) Create(ctx context.Context, j *entity.Job) error {
	if j.Requirements == nil {
		j.Requirements = []string{}
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO jobs (title, description, requirements, salary, location, job_type,
		                  position, experience_level, company_id, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`, j.Title, j.Description, j.Requirements, j.Salary, j.Location, j.JobType,
		j.Position, j.ExperienceLevel, j.CompanyID, j.CreatedBy)
	return mapErr(row.Scan(&j.ID, &j.CreatedAt, &j.UpdatedAt))
}

func (r *JobRepository) GetByID(ctx context.Context, id string) (*entity.JobDetail, error) {
	return scanJobDetail(r.pool.QueryRow(ctx, jobDetailSelect+` WHERE j.id = $1`, id))
}

func (r *JobRepository) Search(ctx context.Context, keyword string) ([]entity.JobDetail, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		rows, err := r.pool.Query(ctx, jobDetailSelect+` ORDER BY j.created_at DESC`)
		if err != nil {
			return nil, mapErr(err)
		}
		return collectJobDetails(rows)
	}
	pattern := "%" + escapeLike(keyword) + "%"
	rows, err := r.pool.Query(ctx, jobDetailSelect+`
		WHERE j.title ILIKE $1 OR j.description ILIKE $1 OR c.name ILIKE $1
		ORDER BY j.created_at DESC`, pattern)
	if err != nil {
		return nil, mapErr(err)
	}
	return collectJobDetails(rows)
}

func (r *JobRepository) ListByIDs(ctx context.Context, ids []string) ([]entity.JobDetail, error) {
	if len(ids) == 0 {
		return []entity.JobDetail{}, nil
	}
	rows, err := r.pool.Query(ctx, jobDetailSelect+` WHERE j.id = ANY($1::uuid[])`, ids)
	if err != nil {
		return nil, mapErr(err)
	}
	found, err := collectJobDetails(rows)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entity.JobDetail, len(found))
	for _, d := range found {
		byID[d.ID] = d
	}
	out := make([]entity.JobDetail, 0, len(ids))
	for _, id := range ids {
		if d, ok := byID[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *JobRepository) ListByCompanyOwner(ctx context.Context, ownerID string) ([]entity.JobDetail, error) {
	rows, err := r.pool.Query(ctx, jobDetailSelect+` WHERE c.owner_id = $1 ORDER BY j.created_at DESC`, ownerID)
	if err != nil {
		return nil, mapErr(err)
	}
	return collectJobDetails(rows)
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

var _ repository.JobRepository = (*JobRepository)(nil)
