package memory

import (
	"context"
	"strings"

	"github.com/oksasatya/job-portal-api/internal/domain/entity"
	"github.com/oksasatya/job-portal-api/internal/domain/repository"
)

type JobRepository struct {
	s *Store
}

// detail must be called with the store lock held.
func (r *JobRepository) detail(j *entity.Job) entity.JobDetail {
	d := entity.JobDetail{Job: *j.Clone()}
	if c, ok := r.s.companies[j.CompanyID]; ok {
		d.Company = c.Summary()
	}
	return d
}

func (r *JobRepository) Create(ctx context.Context, j *entity.Job) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.companies[j.CompanyID]; !ok {
		return repository.ErrNotFound
	}
	j.ID = newID()
	j.CreatedAt = r.s.now()
	j.UpdatedAt = j.CreatedAt
	r.s.jobs[j.ID] = j.Clone()
	r.s.jobOrder = append(r.s.jobOrder, j.ID)
	return nil
}

func (r *JobRepository) GetByID(ctx context.Context, id string) (*entity.JobDetail, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	j, ok := r.s.jobs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	d := r.detail(j)
	return &d, nil
}

// newestFirst walks jobs in reverse insertion order.
func (r *JobRepository) newestFirst(keep func(d entity.JobDetail) bool) []entity.JobDetail {
	out := make([]entity.JobDetail, 0)
	for i := len(r.s.jobOrder) - 1; i >= 0; i-- {
		d := r.detail(r.s.jobs[r.s.jobOrder[i]])
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}

func (r *JobRepository) Search(ctx context.Context, keyword string) ([]entity.JobDetail, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	kw := strings.ToLower(strings.TrimSpace(keyword))
	return r.newestFirst(func(d entity.JobDetail) bool {
		if kw == "" {
			return true
		}
		return strings.Contains(strings.ToLower(d.Title), kw) ||
			strings.Contains(strings.ToLower(d.Description), kw) ||
			strings.Contains(strings.ToLower(d.Company.Name), kw)
	}), nil
}

func (r *JobRepository) ListByIDs(ctx context.Context, ids []string) ([]entity.JobDetail, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.JobDetail, 0, len(ids))
	for _, id := range ids {
		if j, ok := r.s.jobs[id]; ok {
			out = append(out, r.detail(j))
		}
	}
	return out, nil
}

func (r *JobRepository) ListByCompanyOwner(ctx context.Context, ownerID string) ([]entity.JobDetail, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.newestFirst(func(d entity.JobDetail) bool {
		c, ok := r.s.companies[d.CompanyID]
		return ok && c.OwnerID == ownerID
	}), nil
}

var _ repository.JobRepository = (*JobRepository)(nil)
