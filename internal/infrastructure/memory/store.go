// Package memory is a process-local storage driver. It enforces the same
// unique constraints as the Postgres schema and is used for local runs and tests.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/job-portal-api/internal/domain/entity"
)

// Store holds every table behind one lock so joins see a consistent snapshot.
type Store struct {
	mu           sync.RWMutex
	users        map[string]*entity.User
	companies    map[string]*entity.Company
	jobs         map[string]*entity.Job
	applications map[string]*entity.Application
	// insertion order, used for newest-first listings
	jobOrder []string
	appOrder []string
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:        make(map[string]*entity.User),
		companies:    make(map[string]*entity.Company),
		jobs:         make(map[string]*entity.Job),
		applications: make(map[string]*entity.Application),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) Users() *UserRepository               { return &UserRepository{s: s} }
func (s *Store) Companies() *CompanyRepository         { return &CompanyRepository{s: s} }
func (s *Store) Jobs() *JobRepository                  { return &JobRepository{s: s} }
func (s *Store) Applications() *ApplicationRepository { return &ApplicationRepository{s: s} }

func newID() string { return uuid.NewString() }
