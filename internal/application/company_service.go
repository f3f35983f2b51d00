package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/job-portal-api/internal/domain/entity"
	repo "github.com/oksasatya/job-portal-api/internal/domain/repository"
)

type CompanyService struct {
	Repo     repo.CompanyRepository
	Sync     *JobSync
	Uploader Uploader
	Logger   *logrus.Logger
}

func NewCompanyService(repo repo.CompanyRepository, jobSync *JobSync, uploader Uploader, logger *logrus.Logger) *CompanyService {
	return &CompanyService{Repo: repo, Sync: jobSync, Uploader: uploader, Logger: logger}
}

// Register creates a company owned by the calling recruiter. Names are unique, ignoring case.
func (s *CompanyService) Register(ctx context.Context, caller Caller, name string) (*entity.Company, error) {
	if err := caller.recruiter(); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("companyName", "is required")
	}
	if _, err := s.Repo.GetByName(ctx, name); err == nil {
		return nil, ErrDuplicateCompany
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	c := &entity.Company{Name: name, OwnerID: caller.UserID}
	if err := s.Repo.Create(ctx, c); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrDuplicateCompany
		}
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"company_id": c.ID, "owner_id": c.OwnerID}).Info("company registered")
	}
	return c, nil
}

// List returns the caller's own companies.
func (s *CompanyService) List(ctx context.Context, caller Caller) ([]entity.Company, error) {
	if err := caller.authenticated(); err != nil {
		return nil, err
	}
	return s.Repo.ListByOwner(ctx, caller.UserID)
}

func (s *CompanyService) Get(ctx context.Context, id string) (*entity.Company, error) {
	c, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, notFound("company")
		}
		return nil, err
	}
	return c, nil
}

// UpdateCompanyInput: nil fields are left unchanged.
type UpdateCompanyInput struct {
	Name        *string
	Description *string
	Website     *string
	Location    *string
	Logo        *Upload
}

func (s *CompanyService) Update(ctx context.Context, caller Caller, id string, in UpdateCompanyInput) (*entity.Company, error) {
	if err := caller.recruiter(); err != nil {
		return nil, err
	}
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.OwnerID != caller.UserID {
		return nil, ErrForbidden
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, invalid("name", "is required")
		}
		if !strings.EqualFold(name, c.Name) {
			if other, err := s.Repo.GetByName(ctx, name); err == nil && other.ID != c.ID {
				return nil, ErrDuplicateCompany
			} else if err != nil && !errors.Is(err, repo.ErrNotFound) {
				return nil, err
			}
		}
		c.Name = name
	}
	if in.Description != nil {
		c.Description = strings.TrimSpace(*in.Description)
	}
	if in.Website != nil {
		c.Website = strings.TrimSpace(*in.Website)
	}
	if in.Location != nil {
		c.Location = strings.TrimSpace(*in.Location)
	}
	if in.Logo != nil {
		url, err := uploadFile(ctx, s.Uploader, "logos", c.ID, in.Logo)
		if err != nil {
			return nil, err
		}
		c.LogoURL = url
	}

	if err := s.Repo.Update(ctx, c); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrDuplicateCompany
		}
		return nil, err
	}
	// jobs carry the company summary in the index and the detail cache
	s.Sync.CompanyChanged(ctx, c)
	return c, nil
}
