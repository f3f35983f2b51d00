package handlers

import (
	"time"

	"github.com/oksasatya/job-portal-api/internal/domain/entity"
)

type profileView struct {
	Bio                string   `json:"bio"`
	Skills             []string `json:"skills"`
	Resume             string   `json:"resume,omitempty"`
	ResumeOriginalName string   `json:"resumeOriginalName,omitempty"`
	Company            string   `json:"company,omitempty"`
	ProfilePhoto       string   `json:"profilePhoto,omitempty"`
}

type userView struct {
	ID          string      `json:"id"`
	Fullname    string      `json:"fullname"`
	Email       string      `json:"email"`
	PhoneNumber string      `json:"phoneNumber"`
	Role        string      `json:"role"`
	Profile     profileView `json:"profile"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func toUserView(u *entity.User) userView {
	skills := u.Profile.Skills
	if skills == nil {
		skills = []string{}
	}
	return userView{
		ID:          u.ID,
		Fullname:    u.Fullname,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role.String(),
		Profile: profileView{
			Bio:                u.Profile.Bio,
			Skills:             skills,
			Resume:             u.Profile.ResumeURL,
			ResumeOriginalName: u.Profile.ResumeOriginalName,
			Company:            u.Profile.CompanyID,
			ProfilePhoto:       u.Profile.PhotoURL,
		},
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type companyView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Website     string    `json:"website"`
	Location    string    `json:"location"`
	Logo        string    `json:"logo"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toCompanyView(c *entity.Company) companyView {
	return companyView{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Website:     c.Website,
		Location:    c.Location,
		Logo:        c.LogoURL,
		UserID:      c.OwnerID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toCompanyViews(list []entity.Company) []companyView {
	out := make([]companyView, 0, len(list))
	for i := range list {
		out = append(out, toCompanyView(&list[i]))
	}
	return out
}

type companySummaryView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	Logo     string `json:"logo,omitempty"`
}

type jobView struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	Requirements    []string           `json:"requirements"`
	Salary          float64            `json:"salary"`
	Location        string             `json:"location"`
	JobType         string             `json:"jobType"`
	Position        int                `json:"position"`
	ExperienceLevel int                `json:"experienceLevel"`
	Company         companySummaryView `json:"company"`
	CreatedBy       string             `json:"created_by"`
	CreatedAt       time.Time          `json:"createdAt"`
}

func toJobView(j *entity.Job, c entity.CompanySummary) jobView {
	reqs := j.Requirements
	if reqs == nil {
		reqs = []string{}
	}
	return jobView{
		ID:              j.ID,
		Title:           j.Title,
		Description:     j.Description,
		Requirements:    reqs,
		Salary:          j.Salary,
		Location:        j.Location,
		JobType:         j.JobType,
		Position:        j.Position,
		ExperienceLevel: j.ExperienceLevel,
		Company:         companySummaryView{ID: c.ID, Name: c.Name, Location: c.Location, Logo: c.LogoURL},
		CreatedBy:       j.CreatedBy,
		CreatedAt:       j.CreatedAt,
	}
}

func toJobViews(list []entity.JobDetail) []jobView {
	out := make([]jobView, 0, len(list))
	for i := range list {
		out = append(out, toJobView(&list[i].Job, list[i].Company))
	}
	return out
}

type applicationView struct {
	ID        string    `json:"id"`
	JobID     string    `json:"jobId"`
	Applicant string    `json:"applicantId"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toApplicationView(a *entity.Application) applicationView {
	return applicationView{
		ID:        a.ID,
		JobID:     a.JobID,
		Applicant: a.ApplicantID,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

type appliedJobView struct {
	applicationView
	Job jobView `json:"job"`
}

func toAppliedJobViews(list []entity.ApplicationDetail) []appliedJobView {
	out := make([]appliedJobView, 0, len(list))
	for i := range list {
		d := &list[i]
		out = append(out, appliedJobView{
			applicationView: toApplicationView(&d.Application),
			Job:             toJobView(&d.Job, d.Company),
		})
	}
	return out
}

type applicantView struct {
	applicationView
	User applicantUserView `json:"applicant"`
}

type applicantUserView struct {
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

func toApplicantViews(list []entity.Applicant) []applicantView {
	out := make([]applicantView, 0, len(list))
	for i := range list {
		a := &list[i]
		skills := a.Applicant.Skills
		if skills == nil {
			skills = []string{}
		}
		out = append(out, applicantView{
			applicationView: toApplicationView(&a.Application),
			User: applicantUserView{
				ID:                 a.Applicant.ID,
				Fullname:           a.Applicant.Fullname,
				Email:              a.Applicant.Email,
				PhoneNumber:        a.Applicant.PhoneNumber,
				Bio:                a.Applicant.Bio,
				Skills:             skills,
				Resume:             a.Applicant.ResumeURL,
				ResumeOriginalName: a.Applicant.ResumeOriginalName,
				ProfilePhoto:       a.Applicant.PhotoURL,
			},
		})
	}
	return out
}
