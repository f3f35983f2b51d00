package application

import (
	"context"
	"errors"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/job-portal-api/internal/domain/entity"
	repo "github.com/oksasatya/job-portal-api/internal/domain/repository"
)

// pendingIndexKey is a Redis set of job ids whose index write failed.
const pendingIndexKey = "job:index:pending"

// JobSync keeps the search index and the job detail cache in line with
// storage. A nil *JobSync, or one without an Index, does nothing.
type JobSync struct {
	Index  JobIndex
	Jobs   repo.JobRepository
	Redis  *redis.Client
	Logger *logrus.Logger

	mu      sync.Mutex
	pending map[string]struct{}
}

func NewJobSync(index JobIndex, jobs repo.JobRepository, rdb *redis.Client, logger *logrus.Logger) *JobSync {
	return &JobSync{Index: index, Jobs: jobs, Redis: rdb, Logger: logger, pending: map[string]struct{}{}}
}

func (s *JobSync) indexed() bool { return s != nil && s.Index != nil }

// Put writes j to the index. On failure the id is kept as pending so Ready
// can retry it before the index is trusted again.
func (s *JobSync) Put(ctx context.Context, j entity.JobDetail) {
	if !s.indexed() {
		return
	}
	if err := s.Index.Index(ctx, j); err != nil {
		s.markPending(ctx, j.ID)
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("job_id", j.ID).Warn("index job failed, queued for retry")
		}
		return
	}
	s.clearPending(ctx, j.ID)
}

func (s *JobSync) markPending(ctx context.Context, id string) {
	s.mu.Lock()
	if s.pending == nil {
		s.pending = map[string]struct{}{}
	}
	s.pending[id] = struct{}{}
	s.mu.Unlock()
	if s.Redis != nil {
		_ = s.Redis.SAdd(ctx, pendingIndexKey, id).Err()
	}
}

func (s *JobSync) clearPending(ctx context.Context, id string) {
	s.mu.Lock()
	delete(s.pending, id)
	s.mu.Unlock()
	if s.Redis != nil {
		_ = s.Redis.SRem(ctx, pendingIndexKey, id).Err()
	}
}

func (s *JobSync) pendingIDs(ctx context.Context) []string {
	s.mu.Lock()
	ids := make(map[string]struct{}, len(s.pending))
	for id := range s.pending {
		ids[id] = struct{}{}
	}
	s.mu.Unlock()
	if s.Redis != nil {
		if shared, err := s.Redis.SMembers(ctx, pendingIndexKey).Result(); err == nil {
			for _, id := range shared {
				ids[id] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(ids))
	for id := range ids {
		out = append(out, id)
	}
	return out
}

// Ready retries pending index writes and reports whether the index now
// holds every job. Jobs that no longer exist are dropped from the queue.
func (s *JobSync) Ready(ctx context.Context) bool {
	if !s.indexed() {
		return false
	}
	ready := true
	for _, id := range s.pendingIDs(ctx) {
		j, err := s.Jobs.GetByID(ctx, id)
		if errors.Is(err, repo.ErrNotFound) {
			s.clearPending(ctx, id)
			continue
		}
		if err != nil {
			ready = false
			continue
		}
		if err := s.Index.Index(ctx, *j); err != nil {
			ready = false
			continue
		}
		s.clearPending(ctx, id)
	}
	return ready
}

// CompanyChanged refreshes every job of c: the cached detail is evicted and
// the index entry rewritten with the new company summary.
func (s *JobSync) CompanyChanged(ctx context.Context, c *entity.Company) {
	if s == nil || s.Jobs == nil || (s.Index == nil && s.Redis == nil) {
		return
	}
	jobs, err := s.Jobs.ListByCompanyOwner(ctx, c.OwnerID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("company_id", c.ID).Warn("list company jobs for refresh failed")
		}
		return
	}
	for _, j := range jobs {
		if j.CompanyID != c.ID {
			continue
		}
		if s.Redis != nil {
			if err := s.Redis.Del(ctx, jobCacheKey(j.ID)).Err(); err != nil && s.Logger != nil {
				s.Logger.WithError(err).WithField("job_id", j.ID).Warn("evict job cache failed")
			}
		}
		j.Company = c.Summary()
		s.Put(ctx, j)
	}
}
