package entity

import "time"

// Company is owned by the recruiter that registered it.
type Company struct {
	ID          string
	Name        string
	Description string
	Website     string
	Location    string
	LogoURL     string
	OwnerID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CompanySummary is the slice of a company embedded in job views.
type CompanySummary struct {
	ID       string
	Name     string
	Location string
	LogoURL  string
}

func (c *Company) Summary() CompanySummary {
	return CompanySummary{ID: c.ID, Name: c.Name, Location: c.Location, LogoURL: c.LogoURL}
}
