package client

import (
	"fmt"
	"time"
)

type Profile struct {
	Bio                string   `json:"bio"`
	Skills             []string `json:"skills"`
	Resume             string   `json:"resume,omitempty"`
	ResumeOriginalName string   `json:"resumeOriginalName,omitempty"`
	Company            string   `json:"company,omitempty"`
	ProfilePhoto       string   `json:"profilePhoto,omitempty"`
}

type User struct {
	ID          string    `json:"id"`
	Fullname    string    `json:"fullname"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Role        string    `json:"role"`
	Profile     Profile   `json:"profile"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Company struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Website     string    `json:"website,omitempty"`
	Location    string    `json:"location,omitempty"`
	Logo        string    `json:"logo,omitempty"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CompanySummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	Logo     string `json:"logo,omitempty"`
}

type Job struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Requirements    []string       `json:"requirements"`
	Salary          float64        `json:"salary"`
	Location        string         `json:"location"`
	JobType         string         `json:"jobType"`
	Position        int            `json:"position"`
	ExperienceLevel int            `json:"experienceLevel"`
	Company         CompanySummary `json:"company"`
	CreatedBy       string         `json:"created_by"`
	CreatedAt       time.Time      `json:"createdAt"`
}

type Application struct {
	ID          string    `json:"id"`
	JobID       string    `json:"jobId"`
	ApplicantID string    `json:"applicantId"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AppliedJob is one entry of the student's application list.
type AppliedJob struct {
	Application
	Job Job `json:"job"`
}

type ApplicantUser struct {
	ID                 string   `json:"id"`
	Fullname           string   `json:"fullname"`
	Email              string   `json:"email"`
	PhoneNumber        string   `json:"phoneNumber"`
	Bio                string   `json:"bio"`
	Skills             []string `json:"skills"`
	Resume             string   `json:"resume,omitempty"`
	ResumeOriginalName string   `json:"resumeOriginalName,omitempty"`
	ProfilePhoto       string   `json:"profilePhoto,omitempty"`
}

type Applicant struct {
	Application
	User ApplicantUser `json:"applicant"`
}

// Applicants is a job together with everyone who applied to it.
type Applicants struct {
	Job          Job         `json:"job"`
	Applications []Applicant `json:"applications"`
}

type RegisterRequest struct {
	Fullname    string `json:"fullname"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
	Role        string `json:"role"`
}

type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ProfileUpdate sends only the non-nil fields. Skills is comma-separated.
type ProfileUpdate struct {
	Fullname    *string `json:"fullname,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	Skills      *string `json:"skills,omitempty"`
}

type CompanyUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Website     *string `json:"website,omitempty"`
	Location    *string `json:"location,omitempty"`
}

type JobInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements,omitempty"`
	Salary       float64  `json:"salary"`
	Location     string   `json:"location"`
	JobType      string   `json:"jobType"`
	Experience   int      `json:"experience"`
	Position     int      `json:"position"`
	CompanyID    string   `json:"companyId"`
}

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Code    string
	Message string
	Details map[string]string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}
