// Package export renders recruiter-facing spreadsheets.
package export

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/oksasatya/job-portal-api/internal/domain/entity"
)

const applicantsSheet = "Applicants"

var applicantHeaders = []string{"Name", "Email", "Phone", "Status", "Applied At", "Skills", "Resume"}

// ApplicantsWorkbook writes one row per applicant of job, in the given order.
func ApplicantsWorkbook(job *entity.JobDetail, applicants []entity.Applicant) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", applicantsSheet); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(applicantsSheet, "A1", fmt.Sprintf("%s at %s", job.Title, job.Company.Name)); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	headers := make([]any, len(applicantHeaders))
	for i, h := range applicantHeaders {
		headers[i] = h
	}
	if err := f.SetSheetRow(applicantsSheet, "A3", &headers); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(applicantsSheet, "A3", "G3", bold); err != nil {
		return nil, err
	}

	for i, a := range applicants {
		cell, err := excelize.CoordinatesToCellName(1, i+4)
		if err != nil {
			return nil, err
		}
		row := []any{
			a.Applicant.Fullname,
			a.Applicant.Email,
			a.Applicant.PhoneNumber,
			string(a.Status),
			a.CreatedAt.UTC().Format(time.RFC3339),
			strings.Join(a.Applicant.Skills, ", "),
			a.Applicant.ResumeURL,
		}
		if err := f.SetSheetRow(applicantsSheet, cell, &row); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(applicantsSheet, "A", "G", 22); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9]+`)

// ApplicantsFilename is a download name derived from the job title.
func ApplicantsFilename(job *entity.JobDetail) string {
	slug := strings.Trim(unsafeName.ReplaceAllString(strings.ToLower(job.Title), "-"), "-")
	if slug == "" {
		slug = "job"
	}
	return fmt.Sprintf("applicants-%s.xlsx", slug)
}
