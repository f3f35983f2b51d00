package application

import (
	"context"
	"strings"
	"testing"

	"github.com/oksasatya/job-portal-api/internal/domain/entity"
)

func TestCompanyRegister(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	rec := e.register(t, "R", "r@x.com", "1", entity.RoleRecruiter)
	stu := e.register(t, "S", "s@x.com", "2", entity.RoleStudent)

	_, err := e.companies.Register(ctx, stu, "Acme")
	wantErr(t, err, ErrForbidden)

	_, err = e.companies.Register(ctx, rec, "  ")
	wantErr(t, err, ErrValidation)

	c := e.company(t, rec, "Acme")
	if c.OwnerID != rec.UserID {
		t.Fatalf("owner = %s", c.OwnerID)
	}
	_, err = e.companies.Register(ctx, rec, "acme")
	wantErr(t, err, ErrDuplicateCompany)

	list, err := e.companies.List(ctx, rec)
	if err != nil || len(list) != 1 {
		t.Fatalf("list = %v, %v", list, err)
	}
	if list, _ := e.companies.List(ctx, stu); len(list) != 0 {
		t.Fatalf("student sees companies: %v", list)
	}

	_, err = e.companies.Get(ctx, "missing")
	wantErr(t, err, ErrNotFound)
}

func TestCompanyUpdate(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.register(t, "R", "r@x.com", "1", entity.RoleRecruiter)
	other := e.register(t, "O", "o@x.com", "2", entity.RoleRecruiter)
	c := e.company(t, owner, "Acme")
	e.company(t, other, "Globex")

	desc := "rockets"
	_, err := e.companies.Update(ctx, other, c.ID, UpdateCompanyInput{Description: &desc})
	wantErr(t, err, ErrForbidden)

	taken := "GLOBEX"
	_, err = e.companies.Update(ctx, owner, c.ID, UpdateCompanyInput{Name: &taken})
	wantErr(t, err, ErrDuplicateCompany)

	site, loc := "https://acme.test", "Jakarta"
	got, err := e.companies.Update(ctx, owner, c.ID, UpdateCompanyInput{
		Description: &desc, Website: &site, Location: &loc,
		Logo: &Upload{Filename: "logo.png", ContentType: "image/png", Reader: strings.NewReader("png")},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Description != "rockets" || got.Location != "Jakarta" || !strings.Contains(got.LogoURL, "logos/"+c.ID+"/") {
		t.Fatalf("unexpected company %+v", got)
	}
	stored, _ := e.companies.Get(ctx, c.ID)
	if stored.Website != site || stored.OwnerID != owner.UserID {
		t.Fatalf("not persisted: %+v", stored)
	}
}
