package memory

import (
	"context"
	"strings"

	"github.com/oksasatya/job-portal-api/internal/domain/entity"
	"github.com/oksasatya/job-portal-api/internal/domain/repository"
)

type UserRepository struct {
	s *Store
}

// conflict reports the unique constraint u would violate, ignoring the row with u.ID.
func (r *UserRepository) conflict(u *entity.User) string {
	for _, existing := range r.s.users {
		if existing.ID == u.ID {
			continue
		}
		if strings.EqualFold(existing.Email, u.Email) {
			return repository.ConstraintUserEmail
		}
		if existing.PhoneNumber == u.PhoneNumber {
			return repository.ConstraintUserPhone
		}
	}
	return ""
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c := r.conflict(u); c != "" {
		return &repository.DuplicateError{Constraint: c}
	}
	u.ID = newID()
	u.CreatedAt = r.s.now()
	u.UpdatedAt = u.CreatedAt
	r.s.users[u.ID] = u.Clone()
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u.Clone(), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			return u.Clone(), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.PhoneNumber == phone {
			return u.Clone(), nil
		}
	}
	return nil, repository.ErrNotFound
}

// Update keeps the stored role; it is immutable after creation.
func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.users[u.ID]
	if !ok {
		return repository.ErrNotFound
	}
	if c := r.conflict(u); c != "" {
		return &repository.DuplicateError{Constraint: c}
	}
	u.UpdatedAt = r.s.now()
	stored := u.Clone()
	stored.Role = existing.Role
	stored.CreatedAt = existing.CreatedAt
	r.s.users[u.ID] = stored
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
