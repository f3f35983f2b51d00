package application

import (
	"context"
	"errors"
	"testing"

	"github.com/oksasatya/job-portal-api/internal/domain/entity"
)

func TestJobPostOwnership(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.register(t, "R", "r@x.com", "1", entity.RoleRecruiter)
	other := e.register(t, "O", "o@x.com", "2", entity.RoleRecruiter)
	stu := e.register(t, "S", "s@x.com", "3", entity.RoleStudent)
	acme := e.company(t, owner, "Acme")

	in := PostJobInput{Title: "Go", Description: "d", Location: "l", JobType: "t", CompanyID: acme.ID}
	for name, caller := range map[string]Caller{"other recruiter": other, "student": stu} {
		t.Run(name, func(t *testing.T) {
			_, err := e.jobs.Post(ctx, caller, in)
			wantErr(t, err, ErrForbidden)
		})
	}
	missing := in
	missing.CompanyID = "does-not-exist"
	_, err := e.jobs.Post(ctx, owner, missing)
	wantErr(t, err, ErrForbidden)

	if all, _ := e.jobs.List(ctx, ""); len(all) != 0 {
		t.Fatalf("forbidden posts created jobs: %d", len(all))
	}
}

func TestJobPostValidation(t *testing.T) {
	e := newEnv(t)
	owner := e.register(t, "R", "r@x.com", "1", entity.RoleRecruiter)
	acme := e.company(t, owner, "Acme")
	_, err := e.jobs.Post(context.Background(), owner, PostJobInput{
		Title: "Go", Description: "d", Location: "l", JobType: "t", CompanyID: acme.ID,
		Salary: -1, Position: -2, ExperienceLevel: -3,
	})
	wantErr(t, err, ErrValidation)
	fields := err.(*ValidationError).Fields
	if len(fields) != 3 {
		t.Fatalf("fields = %v", fields)
	}
}

func TestJobListAndAdminJobs(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	r1 := e.register(t, "R1", "r1@x.com", "1", entity.RoleRecruiter)
	r2 := e.register(t, "R2", "r2@x.com", "2", entity.RoleRecruiter)
	acme := e.company(t, r1, "Acme")
	globex := e.company(t, r2, "Globex")
	first := e.post(t, r1, acme.ID, "Backend Engineer")
	second := e.post(t, r1, acme.ID, "Frontend Engineer")
	e.post(t, r2, globex.ID, "Data Analyst")

	all, _ := e.jobs.List(ctx, "")
	if len(all) != 3 {
		t.Fatalf("all = %d", len(all))
	}
	eng, _ := e.jobs.List(ctx, "ENGINEER")
	if len(eng) != 2 || eng[0].ID != second.ID || eng[1].ID != first.ID {
		t.Fatalf("engineer results not newest first: %+v", eng)
	}
	byCompany, _ := e.jobs.List(ctx, "globex")
	if len(byCompany) != 1 || byCompany[0].Company.Name != "Globex" {
		t.Fatalf("company name search: %+v", byCompany)
	}

	admin, err := e.jobs.AdminJobs(ctx, r1)
	if err != nil || len(admin) != 2 {
		t.Fatalf("admin jobs = %d, %v", len(admin), err)
	}
	stu := e.register(t, "S", "s@x.com", "3", entity.RoleStudent)
	_, err = e.jobs.AdminJobs(ctx, stu)
	wantErr(t, err, ErrForbidden)
}

func TestJobListUsesIndexWithFallback(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	r := e.register(t, "R", "r@x.com", "1", entity.RoleRecruiter)
	acme := e.company(t, r, "Acme")
	idx := &fakeIndex{}
	e.jobSync.Index = idx
	j := e.post(t, r, acme.ID, "Go Developer")
	e.post(t, r, acme.ID, "Rust Developer")

	if _, ok := idx.docs[j.ID]; !ok {
		t.Fatal("posted job not indexed")
	}
	idx.ids = []string{j.ID}
	got, _ := e.jobs.List(ctx, "anything")
	if len(got) != 1 || got[0].ID != j.ID {
		t.Fatalf("index results not used: %+v", got)
	}

	idx.err = errors.New("es down")
	got, _ = e.jobs.List(ctx, "developer")
	if len(got) != 2 {
		t.Fatalf("fallback returned %d", len(got))
	}
}

func TestJobGetCached(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	r := e.register(t, "R", "r@x.com", "1", entity.RoleRecruiter)
	acme := e.company(t, r, "Acme")
	j := e.post(t, r, acme.ID, "Go Developer")

	got, err := e.jobs.Get(ctx, j.ID)
	if err != nil || got.Title != "Go Developer" || got.Company.Name != "Acme" {
		t.Fatalf("get = %+v, %v", got, err)
	}
	if !e.mr.Exists(jobCacheKey(j.ID)) {
		t.Fatal("job detail not cached")
	}
	if ttl := e.mr.TTL(jobCacheKey(j.ID)); ttl <= 0 || ttl > jobCacheTTL {
		t.Fatalf("cache ttl = %v", ttl)
	}
	cached, err := e.jobs.Get(ctx, j.ID)
	if err != nil || cached.ID != j.ID || cached.Company.Name != "Acme" {
		t.Fatalf("cached = %+v, %v", cached, err)
	}

	_, err = e.jobs.Get(ctx, "missing")
	wantErr(t, err, ErrNotFound)
}

func TestCompanyRenameRefreshesIndex(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	r := e.register(t, "R", "r@x.com", "1", entity.RoleRecruiter)
	acme := e.company(t, r, "Acme")
	idx := &fakeIndex{}
	e.jobSync.Index = idx
	j := e.post(t, r, acme.ID, "Go Developer")

	name := "Globex"
	if _, err := e.companies.Update(ctx, r, acme.ID, UpdateCompanyInput{Name: &name}); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if got := idx.docs[j.ID].Company.Name; got != "Globex" {
		t.Fatalf("indexed company name = %q, want Globex", got)
	}
	got, err := e.jobs.List(ctx, "globex")
	if err != nil || len(got) != 1 || got[0].ID != j.ID {
		t.Fatalf("search by new name = %+v, %v", got, err)
	}
	got, _ = e.jobs.List(ctx, "acme")
	if len(got) != 0 {
		t.Fatalf("search by old name = %+v", got)
	}
}

func TestCompanyRenameEvictsJobCache(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	r := e.register(t, "R", "r@x.com", "1", entity.RoleRecruiter)
	acme := e.company(t, r, "Acme")
	beta := e.company(t, r, "Beta")
	j := e.post(t, r, acme.ID, "Go Developer")
	other := e.post(t, r, beta.ID, "Designer")

	for _, id := range []string{j.ID, other.ID} {
		if _, err := e.jobs.Get(ctx, id); err != nil {
			t.Fatalf("get %s: %v", id, err)
		}
	}
	name := "Globex"
	if _, err := e.companies.Update(ctx, r, acme.ID, UpdateCompanyInput{Name: &name}); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if e.mr.Exists(jobCacheKey(j.ID)) {
		t.Fatal("renamed company's job still cached")
	}
	if !e.mr.Exists(jobCacheKey(other.ID)) {
		t.Fatal("unrelated job evicted")
	}
	got, err := e.jobs.Get(ctx, j.ID)
	if err != nil || got.Company.Name != "Globex" {
		t.Fatalf("get after rename = %+v, %v", got, err)
	}
}

func TestJobListSkipsIndexUntilWritesCatchUp(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	r := e.register(t, "R", "r@x.com", "1", entity.RoleRecruiter)
	acme := e.company(t, r, "Acme")
	idx := &fakeIndex{indexErr: errors.New("es down")}
	e.jobSync.Index = idx
	j := e.post(t, r, acme.ID, "Go Developer")

	if pending, _ := e.mr.IsMember(pendingIndexKey, j.ID); !pending {
		t.Fatal("failed index write not queued")
	}
	got, err := e.jobs.List(ctx, "developer")
	if err != nil || len(got) != 1 || got[0].ID != j.ID {
		t.Fatalf("job missing while index is behind: %+v, %v", got, err)
	}

	idx.indexErr = nil
	got, err = e.jobs.List(ctx, "developer")
	if err != nil || len(got) != 1 || got[0].ID != j.ID {
		t.Fatalf("list after recovery = %+v, %v", got, err)
	}
	if _, ok := idx.docs[j.ID]; !ok {
		t.Fatal("pending job not reindexed")
	}
	if pending, _ := e.mr.IsMember(pendingIndexKey, j.ID); pending {
		t.Fatal("pending set not drained")
	}
}
