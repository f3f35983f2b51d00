package entity

import "time"

type Job struct {
	ID              string
	Title           string
	Description     string
	Requirements    []string
	Salary          float64
	Location        string
	JobType         string
	Position        int
	ExperienceLevel int
	CompanyID       string
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// JobDetail is a job together with its company, as shown to students.
type JobDetail struct {
	Job
	Company CompanySummary
}

func (j *Job) Clone() *Job {
	if j == nil {
		return nil
	}
	c := *j
	c.Requirements = append([]string(nil), j.Requirements...)
	return &c
}
