package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/oksasatya/job-portal-api/internal/domain/entity"
)

func TestApplicantsWorkbook(t *testing.T) {
	job := &entity.JobDetail{
		Job:     entity.Job{ID: "j1", Title: "Go Developer (Remote)"},
		Company: entity.CompanySummary{Name: "Acme"},
	}
	applied := time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC)
	applicants := []entity.Applicant{
		{
			Application: entity.Application{ID: "a1", Status: entity.StatusAccepted, CreatedAt: applied},
			Applicant:   entity.ApplicantSummary{Fullname: "Sam", Email: "sam@x.com", Skills: []string{"go", "sql"}},
		},
		{
			Application: entity.Application{ID: "a2", Status: entity.StatusPending, CreatedAt: applied},
			Applicant:   entity.ApplicantSummary{Fullname: "Ana", Email: "ana@x.com"},
		},
	}

	data, err := ApplicantsWorkbook(job, applicants)
	if err != nil {
		t.Fatalf("workbook: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(applicantsSheet)
	if err != nil {
		t.Fatal(err)
	}
	// title, blank, header, two applicants
	if len(rows) != 5 {
		t.Fatalf("rows = %d, want 5: %v", len(rows), rows)
	}
	if rows[0][0] != "Go Developer (Remote) at Acme" {
		t.Errorf("title = %q", rows[0][0])
	}
	if rows[3][0] != "Sam" || rows[3][3] != "accepted" || rows[3][5] != "go, sql" {
		t.Errorf("first applicant row = %v", rows[3])
	}
	if rows[4][1] != "ana@x.com" || rows[4][4] != "2024-03-02T09:30:00Z" {
		t.Errorf("second applicant row = %v", rows[4])
	}
	if got := ApplicantsFilename(job); got != "applicants-go-developer-remote.xlsx" {
		t.Errorf("filename = %q", got)
	}
}
