package router

import (
	"github.com/oksasatya/job-portal-api/internal/application"
	"github.com/oksasatya/job-portal-api/internal/container"
	"github.com/oksasatya/job-portal-api/internal/domain/repository"
	"github.com/oksasatya/job-portal-api/internal/infrastructure/memory"
	pginfra "github.com/oksasatya/job-portal-api/internal/infrastructure/postgres"
	"github.com/oksasatya/job-portal-api/internal/infrastructure/search"
	handlers "github.com/oksasatya/job-portal-api/internal/interface/http"
	"github.com/oksasatya/job-portal-api/internal/router/modules"
	"github.com/oksasatya/job-portal-api/pkg/helpers"
)

type Repositories struct {
	Users        repository.UserRepository
	Companies    repository.CompanyRepository
	Jobs         repository.JobRepository
	Applications repository.ApplicationRepository
}

type Handlers struct {
	User        *handlers.UserHandler
	Company     *handlers.CompanyHandler
	Job         *handlers.JobHandler
	Application *handlers.ApplicationHandler
}

func buildRepositories() Repositories {
	if container.GetConfig().StorageDriver == "memory" {
		store := memory.NewStore()
		return Repositories{
			Users:        store.Users(),
			Companies:    store.Companies(),
			Jobs:         store.Jobs(),
			Applications: store.Applications(),
		}
	}
	pool := container.GetPGPool()
	return Repositories{
		Users:        pginfra.NewUserRepository(pool),
		Companies:    pginfra.NewCompanyRepository(pool),
		Jobs:         pginfra.NewJobRepository(pool),
		Applications: pginfra.NewApplicationRepository(pool),
	}
}

// optional clients are only boxed into interfaces when present, so services
// see a true nil instead of a nil pointer.

func buildUploader() application.Uploader {
	cfg := container.GetConfig()
	if container.GetGCS() == nil || cfg.GCSBucket == "" {
		return nil
	}
	return &helpers.GCSUploader{Client: container.GetGCS(), Bucket: cfg.GCSBucket}
}

func buildIndex() application.JobIndex {
	if container.GetES() == nil {
		return nil
	}
	return search.NewJobIndex(container.GetES(), container.GetConfig().ESJobsIndex)
}

func buildPublisher() application.EmailPublisher {
	if container.GetRabbitPub() == nil {
		return nil
	}
	return container.GetRabbitPub()
}

func buildHandlers(repos Repositories) Handlers {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	rdb := container.GetRedis()
	uploader := buildUploader()
	notifier := application.NewNotifier(buildPublisher(), cfg, logger)

	userSvc := application.NewUserService(repos.Users, container.GetJWT(), rdb, cfg.SessionTTL, uploader, notifier, logger)
	jobSync := application.NewJobSync(buildIndex(), repos.Jobs, rdb, logger)
	companySvc := application.NewCompanyService(repos.Companies, jobSync, uploader, logger)
	jobSvc := application.NewJobService(repos.Jobs, repos.Companies, jobSync, rdb, logger)
	appSvc := application.NewApplicationService(repos.Applications, repos.Jobs, repos.Companies, repos.Users, notifier, cfg.StrictStatusTransitions, logger)

	return Handlers{
		User:        handlers.NewUserHandler(userSvc, logger, cfg.CookieDomain, cfg.CookieSecure, cfg.UploadMaxBytes),
		Company:     handlers.NewCompanyHandler(companySvc, logger, cfg.UploadMaxBytes),
		Job:         handlers.NewJobHandler(jobSvc, logger),
		Application: handlers.NewApplicationHandler(appSvc, logger),
	}
}

// InitModules initializes all application modules and registers them with the router registry.
// Call once during startup, after the container is populated.
func InitModules(r *Registry) {
	h := buildHandlers(buildRepositories())
	rdb := container.GetRedis()
	jwt := container.GetJWT()

	r.Add(modules.NewUserModule(h.User, rdb, jwt))
	r.Add(modules.NewCompanyModule(h.Company, rdb, jwt))
	r.Add(modules.NewJobModule(h.Job, rdb, jwt))
	r.Add(modules.NewApplicationModule(h.Application, rdb, jwt))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(rdb))
	}
}
