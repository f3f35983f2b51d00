package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/job-portal-api/config"
	"github.com/oksasatya/job-portal-api/internal/container"
	"github.com/oksasatya/job-portal-api/internal/interface/middleware"
	"github.com/oksasatya/job-portal-api/internal/router"
	"github.com/oksasatya/job-portal-api/pkg/helpers"
	"github.com/oksasatya/job-portal-api/pkg/validation"
)

// newServer runs the real API on memory storage and miniredis.
func newServer(t *testing.T) *HTTPClient {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()
	mr := miniredis.RunT(t)
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	container.Reset()
	t.Cleanup(container.Reset)
	container.SetConfig(&config.Config{
		StorageDriver:   "memory",
		JWTAccessSecret: "client-test",
		AccessTTL:       time.Hour,
		SessionTTL:      time.Hour,
		CookieDomain:    "localhost",
		UploadMaxBytes:  1 << 20,
	})
	container.SetLogger(logger)
	container.SetRedis(helpers.NewRedisClient(mr.Addr(), "", 0))

	engine := gin.New()
	engine.Use(middleware.RequestIDMiddleware())
	reg := router.NewRegistry(engine)
	router.InitModules(reg)
	reg.RegisterAll()

	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL + router.BasePath)
}

func TestClientEndToEnd(t *testing.T) {
	ctx := context.Background()
	api := newServer(t)

	recruiter := NewSession(api, nil)
	if _, err := recruiter.Register(ctx, RegisterRequest{
		Fullname: "Rita Recruiter", Email: "r@x.com", PhoneNumber: "082222222", Password: "secret1", Role: "Recruiter",
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := recruiter.Login(ctx, "r@x.com", "secret1", "Recruiter"); err != nil {
		t.Fatal(err)
	}
	company, err := api.RegisterCompany(ctx, recruiter.Token(), "Acme")
	if err != nil {
		t.Fatal(err)
	}
	job, err := api.PostJob(ctx, recruiter.Token(), JobInput{
		Title: "Go Developer", Description: "APIs", Salary: 10, Location: "Remote",
		JobType: "Full-time", Experience: 1, Position: 2, CompanyID: company.ID,
	})
	if err != nil {
		t.Fatal(err)
	}
	if job.Company.Name != "Acme" {
		t.Fatalf("job company = %+v", job.Company)
	}

	student := NewSession(api, NewMemoryStorage())
	if _, err := student.Register(ctx, RegisterRequest{
		Fullname: "Sam Student", Email: "a@x.com", PhoneNumber: "081111111", Password: "secret1", Role: "Student",
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := student.Login(ctx, "a@x.com", "secret1", "Student"); err != nil {
		t.Fatal(err)
	}

	found, err := api.Jobs(ctx, student.Token(), "developer")
	if err != nil || len(found) != 1 || found[0].ID != job.ID {
		t.Fatalf("search = %+v, %v", found, err)
	}
	if _, err := api.Apply(ctx, student.Token(), job.ID); err != nil {
		t.Fatal(err)
	}
	_, err = api.Apply(ctx, student.Token(), job.ID)
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusConflict {
		t.Fatalf("second apply: %v", err)
	}

	applicants, err := api.Applicants(ctx, recruiter.Token(), job.ID)
	if err != nil || len(applicants.Applications) != 1 {
		t.Fatalf("applicants = %+v, %v", applicants, err)
	}
	if applicants.Applications[0].User.Email != "a@x.com" {
		t.Fatalf("applicant = %+v", applicants.Applications[0].User)
	}
	if _, err := api.UpdateStatus(ctx, recruiter.Token(), applicants.Applications[0].ID, "rejected"); err != nil {
		t.Fatal(err)
	}

	mine, err := api.AppliedJobs(ctx, student.Token())
	if err != nil || len(mine) != 1 || mine[0].Status != "rejected" || mine[0].Job.Title != "Go Developer" {
		t.Fatalf("applied jobs = %+v, %v", mine, err)
	}

	bio := "gopher"
	u, err := student.UpdateProfile(ctx, ProfileUpdate{Bio: &bio})
	if err != nil || u.Profile.Bio != "gopher" || student.User().Profile.Bio != "gopher" {
		t.Fatalf("update profile = %+v, %v", u, err)
	}

	if err := student.Logout(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := api.Profile(ctx, ""); !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("profile without token: %v", err)
	}
}

func TestClientValidationDetails(t *testing.T) {
	api := newServer(t)
	_, err := api.Register(context.Background(), RegisterRequest{Fullname: "x", Email: "nope", PhoneNumber: "1", Password: "1", Role: "Student"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if _, ok := apiErr.Details["email"]; !ok {
		t.Fatalf("details = %v", apiErr.Details)
	}
}
