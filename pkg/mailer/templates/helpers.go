package templates

import (
	"time"

	"github.com/oksasatya/job-portal-api/config"
)

// Option pattern
type Option func(*EmailData)

func WithTime(t time.Time) Option {
	return func(d *EmailData) { d.Time = t.UTC().Format("02 January 2006, 15:04") }
}

func WithJob(title, company string) Option {
	return func(d *EmailData) {
		d.JobTitle = title
		d.CompanyName = company
	}
}

func WithApplicant(name string) Option { return func(d *EmailData) { d.ApplicantName = name } }
func WithStatus(status string) Option  { return func(d *EmailData) { d.Status = status } }

// NewBaseEmailData fills the common fields from config, then applies opts.
func NewBaseEmailData(cfg *config.Config, typ, name, email string, opts ...Option) EmailData {
	d := EmailData{
		Name:           name,
		Email:          email,
		RecipientEmail: email,
		Type:           typ,
		AppName:        cfg.AppName,
		LogoURL:        cfg.LogoURL,
		SupportURL:     cfg.SupportURL,
		PortalURL:      cfg.PortalURL,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func NewWelcomeData(cfg *config.Config, name, email, role string) map[string]any {
	d := NewBaseEmailData(cfg, Welcome, name, email, WithStatus(role))
	return ToMap(d)
}

func NewApplicationReceivedData(cfg *config.Config, ownerName, ownerEmail, applicant, jobTitle, company string, at time.Time) map[string]any {
	d := NewBaseEmailData(cfg, ApplicationReceived, ownerName, ownerEmail,
		WithApplicant(applicant), WithJob(jobTitle, company), WithTime(at))
	return ToMap(d)
}

func NewApplicationStatusData(cfg *config.Config, name, email, jobTitle, company, status string, at time.Time) map[string]any {
	d := NewBaseEmailData(cfg, ApplicationStatus, name, email,
		WithJob(jobTitle, company), WithStatus(status), WithTime(at))
	return ToMap(d)
}
