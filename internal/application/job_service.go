package application

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/job-portal-api/internal/domain/entity"
	repo "github.com/oksasatya/job-portal-api/internal/domain/repository"
	"github.com/oksasatya/job-portal-api/pkg/helpers"
)

const jobCacheTTL = 5 * time.Minute

func jobCacheKey(id string) string { return "job:detail:" + id }

type JobService struct {
	Jobs      repo.JobRepository
	Companies repo.CompanyRepository
	Sync      *JobSync
	Redis     *redis.Client
	Logger    *logrus.Logger
}

func NewJobService(jobs repo.JobRepository, companies repo.CompanyRepository, jobSync *JobSync, rdb *redis.Client, logger *logrus.Logger) *JobService {
	return &JobService{Jobs: jobs, Companies: companies, Sync: jobSync, Redis: rdb, Logger: logger}
}

type PostJobInput struct {
	Title           string
	Description     string
	Requirements    []string
	Salary          float64
	Location        string
	JobType         string
	Position        int
	ExperienceLevel int
	CompanyID       string
}

func (in PostJobInput) validate() error {
	fe := fieldErrors{}
	fe.required("title", in.Title)
	fe.required("description", in.Description)
	fe.required("location", in.Location)
	fe.required("jobType", in.JobType)
	fe.required("companyId", in.CompanyID)
	if in.Salary < 0 {
		fe.add("salary", "must be greater than or equal to 0")
	}
	if in.Position < 0 {
		fe.add("position", "must be greater than or equal to 0")
	}
	if in.ExperienceLevel < 0 {
		fe.add("experience", "must be greater than or equal to 0")
	}
	return fe.Err()
}

// Post creates a job for a company the caller owns. A company that is missing
// or owned by someone else yields ErrForbidden and nothing is written.
func (s *JobService) Post(ctx context.Context, caller Caller, in PostJobInput) (*entity.JobDetail, error) {
	if err := caller.recruiter(); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	company, err := s.Companies.GetByID(ctx, strings.TrimSpace(in.CompanyID))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}
	if company.OwnerID != caller.UserID {
		return nil, ErrForbidden
	}

	j := &entity.Job{
		Title:           strings.TrimSpace(in.Title),
		Description:     strings.TrimSpace(in.Description),
		Requirements:    cleanList(in.Requirements),
		Salary:          in.Salary,
		Location:        strings.TrimSpace(in.Location),
		JobType:         strings.TrimSpace(in.JobType),
		Position:        in.Position,
		ExperienceLevel: in.ExperienceLevel,
		CompanyID:       company.ID,
		CreatedBy:       caller.UserID,
	}
	if err := s.Jobs.Create(ctx, j); err != nil {
		return nil, err
	}
	detail := &entity.JobDetail{Job: *j, Company: company.Summary()}
	s.Sync.Put(ctx, *detail)
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"job_id": j.ID, "company_id": j.CompanyID}).Info("job posted")
	}
	return detail, nil
}

// List returns jobs matching keyword (all when empty), newest first.
// The search index is used only while it is complete; otherwise, and on
// any index error, storage search answers.
func (s *JobService) List(ctx context.Context, keyword string) ([]entity.JobDetail, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword != "" && s.Sync.Ready(ctx) {
		ids, err := s.Sync.Index.Search(ctx, keyword)
		if err == nil {
			jobs, err := s.Jobs.ListByIDs(ctx, ids)
			if err != nil {
				return nil, err
			}
			sort.SliceStable(jobs, func(i, k int) bool { return jobs[i].CreatedAt.After(jobs[k].CreatedAt) })
			return jobs, nil
		}
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("job index search failed, falling back to storage")
		}
	}
	return s.Jobs.Search(ctx, keyword)
}

func (s *JobService) Get(ctx context.Context, id string) (*entity.JobDetail, error) {
	if s.Redis != nil {
		var cached entity.JobDetail
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, jobCacheKey(id), &cached); err == nil && ok {
			return &cached, nil
		}
	}
	j, err := s.Jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, notFound("job")
		}
		return nil, err
	}
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, jobCacheKey(id), j, jobCacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("job_id", id).Warn("cache job failed")
		}
	}
	return j, nil
}

// AdminJobs returns jobs of every company the calling recruiter owns.
func (s *JobService) AdminJobs(ctx context.Context, caller Caller) ([]entity.JobDetail, error) {
	if err := caller.recruiter(); err != nil {
		return nil, err
	}
	return s.Jobs.ListByCompanyOwner(ctx, caller.UserID)
}
