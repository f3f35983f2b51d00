package entity

import (
	"fmt"
	"strings"
	"time"
)

// ApplicationStatus is the closed set of application states.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusAccepted ApplicationStatus = "accepted"
	StatusRejected ApplicationStatus = "rejected"
)

// ParseApplicationStatus is case-insensitive.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	st := ApplicationStatus(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("unknown application status %q", s)
	}
	return st, nil
}

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

// Terminal reports whether no further change is allowed under strict transitions.
func (s ApplicationStatus) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// CanTransitionTo reports whether next may follow s. Setting the same status
// is always allowed. In permissive mode any known status may be set.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus, strict bool) bool {
	if !next.Valid() {
		return false
	}
	if s == next {
		return true
	}
	if !strict {
		return true
	}
	return s == StatusPending
}

// Application links a student to a job.
type Application struct {
	ID          string
	JobID       string
	ApplicantID string
	Status      ApplicationStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ApplicationDetail is what a student sees in their applied-jobs list.
type ApplicationDetail struct {
	Application
	Job     Job
	Company CompanySummary
}

// ApplicantSummary is the public part of a student account shown to recruiters.
type ApplicantSummary struct {
	ID                 string
	Fullname           string
	Email              string
	PhoneNumber        string
	Bio                string
	Skills             []string
	ResumeURL          string
	ResumeOriginalName string
	PhotoURL           string
}

// Applicant is an application with the student who made it.
type Applicant struct {
	Application
	Applicant ApplicantSummary
}

func SummarizeApplicant(u *User) ApplicantSummary {
	return ApplicantSummary{
		ID:                 u.ID,
		Fullname:           u.Fullname,
		Email:              u.Email,
		PhoneNumber:        u.PhoneNumber,
		Bio:                u.Profile.Bio,
		Skills:             append([]string(nil), u.Profile.Skills...),
		ResumeURL:          u.Profile.ResumeURL,
		ResumeOriginalName: u.Profile.ResumeOriginalName,
		PhotoURL:           u.Profile.PhotoURL,
	}
}
