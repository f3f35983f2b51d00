package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/job-portal-api/internal/domain/entity"
	"github.com/oksasatya/job-portal-api/internal/domain/repository"
)

const applicationColumns = `id, job_id, applicant_id, status, created_at, updated_at`

type ApplicationRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationRepository(pool *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{pool: pool}
}

func scanApplication(row pgx.Row) (*entity.Application, error) {
	a := &entity.Application{}
	var status string
	if err := row.Scan(&a.ID, &a.JobID, &a.ApplicantID, &status, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, mapErr(err)
	}
	a.Status = entity.ApplicationStatus(status)
	return a, nil
}

// Create relies on applications_job_id_applicant_id_key to reject a second apply.
func (r *ApplicationRepository) Create(ctx context.Context, a *entity.Application) error {
	if a.Status == "" {
		a.Status = entity.StatusPending
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO applications (job_id, applicant_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, a.JobID, a.ApplicantID, string(a.Status))
	return mapErr(row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt))
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (*entity.Application, error) {
	return scanApplication(r.pool.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id))
}

func (r *ApplicationRepository) FindByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*entity.Application, error) {
	return scanApplication(r.pool.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE job_id = $1 AND applicant_id = $2`, jobID, applicantID))
}

func (r *ApplicationRepository) ListByApplicant(ctx context.Context, applicantID string) ([]entity.ApplicationDetail, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.job_id, a.applicant_id, a.status, a.created_at, a.updated_at,
		       j.title, j.description, j.requirements, j.salary, j.location, j.job_type,
		       j.position, j.experience_level, j.company_id, j.created_by, j.created_at, j.updated_at,
		       c.name, c.location, c.logo_url
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN companies c ON c.id = j.company_id
		WHERE a.applicant_id = $1
		ORDER BY a.created_at DESC`, applicantID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()
	out := make([]entity.ApplicationDetail, 0)
	for rows.Next() {
		var d entity.ApplicationDetail
		var status string
		if err := rows.Scan(&d.ID, &d.JobID, &d.ApplicantID, &status, &d.CreatedAt, &d.UpdatedAt,
			&d.Job.Title, &d.Job.Description, &d.Job.Requirements, &d.Job.Salary, &d.Job.Location, &d.Job.JobType,
			&d.Job.Position, &d.Job.ExperienceLevel, &d.Job.CompanyID, &d.Job.CreatedBy, &d.Job.CreatedAt, &d.Job.UpdatedAt,
			&d.Company.Name, &d.Company.Location, &d.Company.LogoURL); err != nil {
			return nil, mapErr(err)
		}
		d.Status = entity.ApplicationStatus(status)
		d.Job.ID = d.JobID
		d.Company.ID = d.Job.CompanyID
		out = append(out, d)
	}
	return out, mapErr(rows.Err())
}

func (r *ApplicationRepository) ListApplicants(ctx context.Context, jobID string) ([]entity.Applicant, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.job_id, a.applicant_id, a.status, a.created_at, a.updated_at,
		       u.fullname, u.email, u.phone_number, u.bio, u.skills, u.resume_url,
		       u.resume_original_name, u.photo_url
		FROM applications a
		JOIN users u ON u.id = a.applicant_id
		WHERE a.job_id = $1
		ORDER BY a.created_at DESC`, jobID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()
	out := make([]entity.Applicant, 0)
	for rows.Next() {
		var a entity.Applicant
		var status string
		if err := rows.Scan(&a.ID, &a.JobID, &a.ApplicantID, &status, &a.CreatedAt, &a.UpdatedAt,
			&a.Applicant.Fullname, &a.Applicant.Email, &a.Applicant.PhoneNumber, &a.Applicant.Bio,
			&a.Applicant.Skills, &a.Applicant.ResumeURL, &a.Applicant.ResumeOriginalName, &a.Applicant.PhotoURL); err != nil {
			return nil, mapErr(err)
		}
		a.Status = entity.ApplicationStatus(status)
		a.Applicant.ID = a.ApplicantID
		out = append(out, a)
	}
	return out, mapErr(rows.Err())
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status entity.ApplicationStatus) (*entity.Application, error) {
	return scanApplication(r.pool.QueryRow(ctx, `
		UPDATE applications SET status = $1, updated_at = $2
		WHERE id = $3
		RETURNING `+applicationColumns, string(status), time.Now().UTC(), id))
}

var _ repository.ApplicationRepository = (*ApplicationRepository)(nil)
