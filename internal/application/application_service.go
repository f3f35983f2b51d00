package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/job-portal-api/internal/domain/entity"
	repo "github.com/oksasatya/job-portal-api/internal/domain/repository"
	"github.com/oksasatya/job-portal-api/pkg/export"
)

type ApplicationService struct {
	Apps      repo.ApplicationRepository
	Jobs      repo.JobRepository
	Companies repo.CompanyRepository
	Users     repo.UserRepository
	Notifier  *Notifier
	// StrictTransitions makes accepted and rejected final.
	StrictTransitions bool
	Logger            *logrus.Logger
}

func NewApplicationService(apps repo.ApplicationRepository, jobs repo.JobRepository, companies repo.CompanyRepository, users repo.UserRepository, notifier *Notifier, strict bool, logger *logrus.Logger) *ApplicationService {
	return &ApplicationService{
		Apps:              apps,
		Jobs:              jobs,
		Companies:         companies,
		Users:             users,
		Notifier:          notifier,
		StrictTransitions: strict,
		Logger:            logger,
	}
}

func (s *ApplicationService) job(ctx context.Context, jobID string) (*entity.JobDetail, error) {
	j, err := s.Jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, notFound("job")
		}
		return nil, err
	}
	return j, nil
}

// ownedJob loads a job and checks that the caller owns its company.
func (s *ApplicationService) ownedJob(ctx context.Context, caller Caller, jobID string) (*entity.JobDetail, *entity.Company, error) {
	if err := caller.recruiter(); err != nil {
		return nil, nil, err
	}
	j, err := s.job(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}
	c, err := s.Companies.GetByID(ctx, j.CompanyID)
	if err != nil {
		// nobody owns a job whose company is gone
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil, ErrForbidden
		}
		return nil, nil, err
	}
	if c.OwnerID != caller.UserID {
		return nil, nil, ErrForbidden
	}
	return j, c, nil
}

// Apply records a pending application of the calling student. The storage
// unique constraint on (job, applicant) is what rejects concurrent duplicates.
func (s *ApplicationService) Apply(ctx context.Context, caller Caller, jobID string) (*entity.Application, error) {
	if err := caller.student(); err != nil {
		return nil, err
	}
	j, err := s.job(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if _, err := s.Apps.FindByJobAndApplicant(ctx, j.ID, caller.UserID); err == nil {
		return nil, ErrDuplicateApplication
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	a := &entity.Application{JobID: j.ID, ApplicantID: caller.UserID, Status: entity.StatusPending}
	if err := s.Apps.Create(ctx, a); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrDuplicateApplication
		}
		if errors.Is(err, repo.ErrNotFound) {
			return nil, notFound("job")
		}
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"application_id": a.ID, "job_id": a.JobID, "applicant_id": a.ApplicantID}).Info("application created")
	}
	s.notifyReceived(ctx, j, a)
	return a, nil
}

func (s *ApplicationService) notifyReceived(ctx context.Context, j *entity.JobDetail, a *entity.Application) {
	if !s.Notifier.enabled() {
		return
	}
	c, err := s.Companies.GetByID(ctx, j.CompanyID)
	if err != nil {
		return
	}
	owner, err := s.Users.GetByID(ctx, c.OwnerID)
	if err != nil {
		return
	}
	applicant, err := s.Users.GetByID(ctx, a.ApplicantID)
	if err != nil {
		return
	}
	s.Notifier.ApplicationReceived(ctx, owner, applicant, j, a.CreatedAt)
}

// ListMine returns the caller's applications with job and company, newest first.
func (s *ApplicationService) ListMine(ctx context.Context, caller Caller) ([]entity.ApplicationDetail, error) {
	if err := caller.authenticated(); err != nil {
		return nil, err
	}
	return s.Apps.ListByApplicant(ctx, caller.UserID)
}

// Applicants lists applications of a job owned by the calling recruiter.
func (s *ApplicationService) Applicants(ctx context.Context, caller Caller, jobID string) (*entity.JobDetail, []entity.Applicant, error) {
	j, _, err := s.ownedJob(ctx, caller, jobID)
	if err != nil {
		return nil, nil, err
	}
	list, err := s.Apps.ListApplicants(ctx, j.ID)
	if err != nil {
		return nil, nil, err
	}
	return j, list, nil
}

// ExportApplicants renders the applicant list as an xlsx workbook.
func (s *ApplicationService) ExportApplicants(ctx context.Context, caller Caller, jobID string) ([]byte, string, error) {
	j, list, err := s.Applicants(ctx, caller, jobID)
	if err != nil {
		return nil, "", err
	}
	data, err := export.ApplicantsWorkbook(j, list)
	if err != nil {
		return nil, "", err
	}
	return data, export.ApplicantsFilename(j), nil
}

// UpdateStatus sets the status of an application on a job the caller owns.
// Setting the current status again succeeds without writing.
func (s *ApplicationService) UpdateStatus(ctx context.Context, caller Caller, applicationID, status string) (*entity.Application, error) {
	if err := caller.recruiter(); err != nil {
		return nil, err
	}
	next, err := entity.ParseApplicationStatus(status)
	if err != nil {
		return nil, invalid("status", "must be one of: pending, accepted, rejected")
	}
	a, err := s.Apps.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, notFound("application")
		}
		return nil, err
	}
	j, _, err := s.ownedJob(ctx, caller, a.JobID)
	if err != nil {
		return nil, err
	}

	if a.Status == next {
		return a, nil
	}
	if !a.Status.CanTransitionTo(next, s.StrictTransitions) {
		return nil, invalid("status", "invalid status transition from "+string(a.Status))
	}
	updated, err := s.Apps.UpdateStatus(ctx, a.ID, next)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, notFound("application")
		}
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"application_id": a.ID, "from": a.Status, "to": next}).Info("application status changed")
	}
	if s.Notifier.enabled() {
		if student, err := s.Users.GetByID(ctx, a.ApplicantID); err == nil {
			s.Notifier.ApplicationStatus(ctx, student, j, next, time.Now())
		}
	}
	return updated, nil
}
