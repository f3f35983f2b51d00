package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/oksasatya/job-portal-api/internal/domain/entity"
	"github.com/oksasatya/job-portal-api/internal/domain/repository"
)

type CompanyRepository struct {
	s *Store
}

func (r *CompanyRepository) nameTaken(name, exceptID string) bool {
	for _, c := range r.s.companies {
		if c.ID != exceptID && strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}

func (r *CompanyRepository) Create(ctx context.Context, c *entity.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.nameTaken(c.Name, "") {
		return &repository.DuplicateError{Constraint: repository.ConstraintCompanyName}
	}
	c.ID = newID()
	c.CreatedAt = r.s.now()
	c.UpdatedAt = c.CreatedAt
	cp := *c
	r.s.companies[c.ID] = &cp
	return nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.companies[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *CompanyRepository) GetByName(ctx context.Context, name string) (*entity.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.companies {
		if strings.EqualFold(c.Name, name) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *CompanyRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.Company, 0)
	for _, c := range r.s.companies {
		if c.OwnerID == ownerID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *CompanyRepository) Update(ctx context.Context, c *entity.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.companies[c.ID]
	if !ok {
		return repository.ErrNotFound
	}
	if r.nameTaken(c.Name, c.ID) {
		return &repository.DuplicateError{Constraint: repository.ConstraintCompanyName}
	}
	c.UpdatedAt = r.s.now()
	cp := *c
	cp.OwnerID = existing.OwnerID
	cp.CreatedAt = existing.CreatedAt
	r.s.companies[c.ID] = &cp
	return nil
}

var _ repository.CompanyRepository = (*CompanyRepository)(nil)
