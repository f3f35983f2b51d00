package application

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/job-portal-api/config"
	"github.com/oksasatya/job-portal-api/internal/domain/entity"
	"github.com/oksasatya/job-portal-api/internal/infrastructure/memory"
	"github.com/oksasatya/job-portal-api/pkg/helpers"
	"github.com/oksasatya/job-portal-api/pkg/mailer"
)

type fakePublisher struct {
	mu   sync.Mutex
	jobs []mailer.EmailJob
	err  error
}

func (p *fakePublisher) PublishEmail(_ context.Context, job mailer.EmailJob) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.jobs = append(p.jobs, job)
	return nil
}

func (p *fakePublisher) templates() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.jobs))
	for _, j := range p.jobs {
		out = append(out, j.Template)
	}
	return out
}

type fakeUploader struct {
	paths []string
}

func (u *fakeUploader) Upload(_ context.Context, objectPath, _ string, r io.Reader) (string, error) {
	if _, err := io.ReadAll(r); err != nil {
		return "", err
	}
	u.paths = append(u.paths, objectPath)
	return "https://files.test/" + objectPath, nil
}

// fakeIndex matches keywords as case-insensitive substrings of the indexed
// title, description and company name. ids, when set, overrides matching.
type fakeIndex struct {
	docs     map[string]entity.JobDetail
	ids      []string
	err      error
	indexErr error
}

func (f *fakeIndex) Index(_ context.Context, j entity.JobDetail) error {
	if f.indexErr != nil {
		return f.indexErr
	}
	if f.docs == nil {
		f.docs = map[string]entity.JobDetail{}
	}
	f.docs[j.ID] = j
	return nil
}

func (f *fakeIndex) Search(_ context.Context, keyword string) ([]string, error) {
	if f.err != nil || f.ids != nil {
		return f.ids, f.err
	}
	kw := strings.ToLower(keyword)
	out := []string{}
	for id, d := range f.docs {
		if strings.Contains(strings.ToLower(d.Title+"\x00"+d.Description+"\x00"+d.Company.Name), kw) {
			out = append(out, id)
		}
	}
	return out, nil
}

type env struct {
	store     *memory.Store
	redis     *redis.Client
	mr        *miniredis.Miniredis
	pub       *fakePublisher
	uploads   *fakeUploader
	jobSync   *JobSync
	users     *UserService
	companies *CompanyService
	jobs      *JobService
	apps      *ApplicationService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := helpers.NewRedisClient(mr.Addr(), "", 0)
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store := memory.NewStore()
	pub := &fakePublisher{}
	up := &fakeUploader{}
	notifier := NewNotifier(pub, &config.Config{AppName: "jobs", MailSendEnabled: true}, logger)
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	jobSync := NewJobSync(nil, store.Jobs(), rdb, logger)

	return &env{
		store:     store,
		redis:     rdb,
		mr:        mr,
		pub:       pub,
		uploads:   up,
		jobSync:   jobSync,
		users:     NewUserService(store.Users(), jwt, rdb, time.Hour, up, notifier, logger),
		companies: NewCompanyService(store.Companies(), jobSync, up, logger),
		jobs:      NewJobService(store.Jobs(), store.Companies(), jobSync, rdb, logger),
		apps:      NewApplicationService(store.Applications(), store.Jobs(), store.Companies(), store.Users(), notifier, false, logger),
	}
}

func (e *env) register(t *testing.T, name, email, phone string, role entity.Role) Caller {
	t.Helper()
	u, err := e.users.Register(context.Background(), RegisterInput{
		Fullname: name, Email: email, PhoneNumber: phone, Password: "secret123", Role: role.String(),
	})
	if err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
	return Caller{UserID: u.ID, Role: u.Role}
}

func (e *env) company(t *testing.T, owner Caller, name string) *entity.Company {
	t.Helper()
	c, err := e.companies.Register(context.Background(), owner, name)
	if err != nil {
		t.Fatalf("register company: %v", err)
	}
	return c
}

func (e *env) post(t *testing.T, owner Caller, companyID, title string) *entity.JobDetail {
	t.Helper()
	j, err := e.jobs.Post(context.Background(), owner, PostJobInput{
		Title: title, Description: "build services", Location: "Remote", JobType: "Full-time",
		Salary: 1000, Position: 2, ExperienceLevel: 1, CompanyID: companyID,
	})
	if err != nil {
		t.Fatalf("post job: %v", err)
	}
	return j
}

func wantErr(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("got error %v, want %v", err, target)
	}
}
