package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/job-portal-api/internal/domain/entity"
	"github.com/oksasatya/job-portal-api/internal/domain/repository"
)

const userColumns = `id, fullname, email, phone_number, password_hash, role,
	bio, skills, resume_url, resume_original_name, company_id, photo_url, created_at, updated_at`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	var role string
	var companyID *string
	if err := row.Scan(&u.ID, &u.Fullname, &u.Email, &u.PhoneNumber, &u.Password, &role,
		&u.Profile.Bio, &u.Profile.Skills, &u.Profile.ResumeURL, &u.Profile.ResumeOriginalName,
		&companyID, &u.Profile.PhotoURL, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, mapErr(err)
	}
	u.Role = entity.Role(role)
	if companyID != nil {
		u.Profile.CompanyID = *companyID
	}
	return u, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	if u.Profile.Skills == nil {
		u.Profile.Skills = []string{}
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (fullname, email, phone_number, password_hash, role, bio, skills, photo_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, u.Fullname, u.Email, u.PhoneNumber, u.Password, string(u.Role), u.Profile.Bio, u.Profile.Skills, u.Profile.PhotoURL)

	return mapErr(row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt))
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (*entity.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE phone_number = $1`, phone))
}

// Update writes every mutable column. Role is deliberately absent from the SET list.
func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	u.UpdatedAt = time.Now().UTC()
	if u.Profile.Skills == nil {
		u.Profile.Skills = []string{}
	}
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET fullname = $1, email = $2, phone_number = $3, password_hash = $4,
		    bio = $5, skills = $6, resume_url = $7, resume_original_name = $8,
		    company_id = $9, photo_url = $10, updated_at = $11
		WHERE id = $12
	`, u.Fullname, u.Email, u.PhoneNumber, u.Password,
		u.Profile.Bio, u.Profile.Skills, u.Profile.ResumeURL, u.Profile.ResumeOriginalName,
		nullable(u.Profile.CompanyID), u.Profile.PhotoURL, u.UpdatedAt, u.ID)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
