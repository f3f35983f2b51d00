package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/oksasatya/job-portal-api/config"
	"github.com/oksasatya/job-portal-api/internal/application"
	"github.com/oksasatya/job-portal-api/internal/domain/entity"
	"github.com/oksasatya/job-portal-api/internal/domain/repository"
	pginfra "github.com/oksasatya/job-portal-api/internal/infrastructure/postgres"
	"github.com/oksasatya/job-portal-api/internal/infrastructure/search"
	"github.com/oksasatya/job-portal-api/pkg/helpers"
)

const seedPassword = "password123"

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()
	if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	users := pginfra.NewUserRepository(pool)
	companies := pginfra.NewCompanyRepository(pool)
	jobs := pginfra.NewJobRepository(pool)

	var index application.JobIndex
	if addrs := cfg.ESAddrs(); len(addrs) > 0 {
		if es, err := helpers.NewESClient(addrs, cfg.ElasticsearchUser, cfg.ElasticsearchPass); err == nil {
			index = search.NewJobIndex(es, cfg.ESJobsIndex)
		} else {
			logger.WithError(err).Warn("elasticsearch unavailable; seeded jobs will not be indexed")
		}
	}

	// no notifier: seeding never sends email
	userSvc := application.NewUserService(users, helpers.NewJWTManager(cfg.JWTAccessSecret, cfg.AccessTTL), nil, cfg.SessionTTL, nil, nil, logger)
	jobSync := application.NewJobSync(index, jobs, nil, logger)
	companySvc := application.NewCompanyService(companies, jobSync, nil, logger)
	jobSvc := application.NewJobService(jobs, companies, jobSync, nil, logger)

	recruiter := ensureUser(ctx, userSvc, users, application.RegisterInput{
		Fullname: "Demo Recruiter", Email: "recruiter@example.com", PhoneNumber: "081200000001",
		Password: seedPassword, Role: string(entity.RoleRecruiter),
	})
	student := ensureUser(ctx, userSvc, users, application.RegisterInput{
		Fullname: "Demo Student", Email: "student@example.com", PhoneNumber: "081200000002",
		Password: seedPassword, Role: string(entity.RoleStudent),
	})
	caller := application.Caller{UserID: recruiter.ID, Role: recruiter.Role}

	company, err := companySvc.Register(ctx, caller, "Demo Corp")
	if errors.Is(err, application.ErrDuplicateCompany) {
		company, err = companies.GetByName(ctx, "Demo Corp")
	}
	if err != nil {
		log.Fatalf("failed to seed company: %v", err)
	}
	fmt.Printf("seeded company: id=%s name=%s\n", company.ID, company.Name)

	owned, err := jobs.ListByCompanyOwner(ctx, recruiter.ID)
	if err != nil {
		log.Fatalf("failed to list jobs: %v", err)
	}
	if len(owned) > 0 {
		fmt.Printf("jobs already seeded (%d)\n", len(owned))
	} else {
		for _, in := range demoJobs(company.ID) {
			j, err := jobSvc.Post(ctx, caller, in)
			if err != nil {
				log.Fatalf("failed to seed job %q: %v", in.Title, err)
			}
			fmt.Printf("seeded job: id=%s title=%s\n", j.ID, j.Title)
		}
	}

	fmt.Printf("login with %s / %s (Recruiter) or %s / %s (Student)\n", recruiter.Email, seedPassword, student.Email, seedPassword)
}

func ensureUser(ctx context.Context, svc *application.UserService, users repository.UserRepository, in application.RegisterInput) *entity.User {
	u, err := svc.Register(ctx, in)
	if errors.Is(err, application.ErrDuplicateIdentity) {
		u, err = users.GetByEmail(ctx, in.Email)
	}
	if err != nil {
		log.Fatalf("failed to seed user %s: %v", in.Email, err)
	}
	fmt.Printf("seeded user: id=%s email=%s role=%s\n", u.ID, u.Email, u.Role)
	return u
}

func demoJobs(companyID string) []application.PostJobInput {
	return []application.PostJobInput{
		{
			Title:           "Backend Engineer",
			Description:     "Design and run Go services behind our hiring platform.",
			Requirements:    []string{"Go", "PostgreSQL", "Redis"},
			Salary:          18,
			Location:        "Jakarta",
			JobType:         "Full-time",
			Position:        2,
			ExperienceLevel: 3,
			CompanyID:       companyID,
		},
		{
			Title:           "Frontend Intern",
			Description:     "Help build the candidate dashboard.",
			Requirements:    []string{"React", "TypeScript"},
			Salary:          4,
			Location:        "Remote",
			JobType:         "Internship",
			Position:        1,
			ExperienceLevel: 0,
			CompanyID:       companyID,
		},
	}
}
