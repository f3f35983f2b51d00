package memory

import (
	"context"

	"github.com/oksasatya/job-portal-api/internal/domain/entity"
	"github.com/oksasatya/job-portal-api/internal/domain/repository"
)

type ApplicationRepository struct {
	s *Store
}

// Create checks (job, applicant) uniqueness under the write lock, mirroring
// the applications_job_id_applicant_id_key constraint.
func (r *ApplicationRepository) Create(ctx context.Context, a *entity.Application) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.jobs[a.JobID]; !ok {
		return repository.ErrNotFound
	}
	for _, existing := range r.s.applications {
		if existing.JobID == a.JobID && existing.ApplicantID == a.ApplicantID {
			return &repository.DuplicateError{Constraint: repository.ConstraintApplicationJob}
		}
	}
	if a.Status == "" {
		a.Status = entity.StatusPending
	}
	a.ID = newID()
	a.CreatedAt = r.s.now()
	a.UpdatedAt = a.CreatedAt
	cp := *a
	r.s.applications[a.ID] = &cp
	r.s.appOrder = append(r.s.appOrder, a.ID)
	return nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (*entity.Application, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.applications[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *ApplicationRepository) FindByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*entity.Application, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, a := range r.s.applications {
		if a.JobID == jobID && a.ApplicantID == applicantID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *ApplicationRepository) ListByApplicant(ctx context.Context, applicantID string) ([]entity.ApplicationDetail, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.ApplicationDetail, 0)
	for i := len(r.s.appOrder) - 1; i >= 0; i-- {
		a := r.s.applications[r.s.appOrder[i]]
		if a.ApplicantID != applicantID {
			continue
		}
		d := entity.ApplicationDetail{Application: *a}
		if j, ok := r.s.jobs[a.JobID]; ok {
			d.Job = *j.Clone()
			if c, ok := r.s.companies[j.CompanyID]; ok {
				d.Company = c.Summary()
			}
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *ApplicationRepository) ListApplicants(ctx context.Context, jobID string) ([]entity.Applicant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.Applicant, 0)
	for i := len(r.s.appOrder) - 1; i >= 0; i-- {
		a := r.s.applications[r.s.appOrder[i]]
		if a.JobID != jobID {
			continue
		}
		item := entity.Applicant{Application: *a}
		if u, ok := r.s.users[a.ApplicantID]; ok {
			item.Applicant = entity.SummarizeApplicant(u)
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status entity.ApplicationStatus) (*entity.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.applications[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	a.Status = status
	a.UpdatedAt = r.s.now()
	cp := *a
	return &cp, nil
}

var _ repository.ApplicationRepository = (*ApplicationRepository)(nil)
