package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/oksasatya/job-portal-api/internal/domain/entity"
	"github.com/oksasatya/job-portal-api/internal/domain/repository"
)

func seed(t *testing.T, s *Store) (recruiter, student *entity.User, job *entity.Job) {
	t.Helper()
	ctx := context.Background()
	recruiter = &entity.User{Fullname: "R", Email: "r@x.com", PhoneNumber: "1", Role: entity.RoleRecruiter}
	student = &entity.User{Fullname: "S", Email: "s@x.com", PhoneNumber: "2", Role: entity.RoleStudent}
	for _, u := range []*entity.User{recruiter, student} {
		if err := s.Users().Create(ctx, u); err != nil {
			t.Fatalf("create user: %v", err)
		}
	}
	company := &entity.Company{Name: "Acme", OwnerID: recruiter.ID}
	if err := s.Companies().Create(ctx, company); err != nil {
		t.Fatalf("create company: %v", err)
	}
	job = &entity.Job{Title: "Go Developer", Description: "backend", CompanyID: company.ID, CreatedBy: recruiter.ID}
	if err := s.Jobs().Create(ctx, job); err != nil {
		t.Fatalf("create job: %v", err)
	}
	return recruiter, student, job
}

func TestUserUniqueConstraints(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	if err := s.Users().Create(ctx, &entity.User{Email: "a@x.com", PhoneNumber: "100"}); err != nil {
		t.Fatal(err)
	}
	err := s.Users().Create(ctx, &entity.User{Email: "A@X.com", PhoneNumber: "200"})
	if !errors.Is(err, repository.ErrDuplicate) || repository.ConstraintOf(err) != repository.ConstraintUserEmail {
		t.Fatalf("expected email duplicate, got %v", err)
	}
	err = s.Users().Create(ctx, &entity.User{Email: "b@x.com", PhoneNumber: "100"})
	if repository.ConstraintOf(err) != repository.ConstraintUserPhone {
		t.Fatalf("expected phone duplicate, got %v", err)
	}
}

func TestUserUpdateKeepsRole(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	u := &entity.User{Email: "a@x.com", PhoneNumber: "1", Role: entity.RoleStudent}
	if err := s.Users().Create(ctx, u); err != nil {
		t.Fatal(err)
	}
	u.Role = entity.RoleRecruiter
	u.Fullname = "changed"
	if err := s.Users().Update(ctx, u); err != nil {
		t.Fatal(err)
	}
	got, _ := s.Users().GetByID(ctx, u.ID)
	if got.Role != entity.RoleStudent || got.Fullname != "changed" {
		t.Fatalf("unexpected stored user %+v", got)
	}
}

func TestConcurrentDuplicateApplies(t *testing.T) {
	s := NewStore()
	_, student, job := seed(t, s)

	var wg sync.WaitGroup
	var mu sync.Mutex
	created, duplicates := 0, 0
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Applications().Create(context.Background(), &entity.Application{JobID: job.ID, ApplicantID: student.ID})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, repository.ErrDuplicate):
				duplicates++
			default:
				t.Errorf("unexpected error %v", err)
			}
		}()
	}
	wg.Wait()
	if created != 1 || duplicates != 15 {
		t.Fatalf("created=%d duplicates=%d", created, duplicates)
	}
}

func TestJobSearchMatchesCompanyName(t *testing.T) {
	s := NewStore()
	seed(t, s)
	ctx := context.Background()
	for _, kw := range []string{"acme", "GO DEV", "Backend", ""} {
		got, err := s.Jobs().Search(ctx, kw)
		if err != nil || len(got) != 1 {
			t.Fatalf("Search(%q) = %d results, err %v", kw, len(got), err)
		}
		if got[0].Company.Name != "Acme" {
			t.Errorf("company not joined: %+v", got[0].Company)
		}
	}
	if got, _ := s.Jobs().Search(ctx, "rust"); len(got) != 0 {
		t.Fatalf("expected no results, got %d", len(got))
	}
}

func TestApplicantListingJoinsUser(t *testing.T) {
	s := NewStore()
	_, student, job := seed(t, s)
	ctx := context.Background()
	if err := s.Applications().Create(ctx, &entity.Application{JobID: job.ID, ApplicantID: student.ID}); err != nil {
		t.Fatal(err)
	}
	list, err := s.Applications().ListApplicants(ctx, job.ID)
	if err != nil || len(list) != 1 {
		t.Fatalf("list = %v, %v", list, err)
	}
	if list[0].Applicant.Email != "s@x.com" || list[0].Status != entity.StatusPending {
		t.Fatalf("unexpected applicant %+v", list[0])
	}
	mine, _ := s.Applications().ListByApplicant(ctx, student.ID)
	if len(mine) != 1 || mine[0].Job.Title != "Go Developer" || mine[0].Company.Name != "Acme" {
		t.Fatalf("unexpected detail %+v", mine)
	}
}
