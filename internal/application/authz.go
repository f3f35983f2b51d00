package application

import "github.com/oksasatya/job-portal-api/internal/domain/entity"

// Caller is the authenticated identity behind a request.
type Caller struct {
	UserID string
	Role   entity.Role
}

// canOwnCompanies covers company registration and update, job posting and
// applicant management.
func canOwnCompanies(r entity.Role) bool {
	switch r {
	case entity.RoleRecruiter:
		return true
	case entity.RoleStudent:
		return false
	}
	return false
}

func canApply(r entity.Role) bool {
	switch r {
	case entity.RoleStudent:
		return true
	case entity.RoleRecruiter:
		return false
	}
	return false
}

func (c Caller) authenticated() error {
	if c.UserID == "" || !c.Role.Valid() {
		return ErrUnauthenticated
	}
	return nil
}

func (c Caller) recruiter() error {
	if err := c.authenticated(); err != nil {
		return err
	}
	if !canOwnCompanies(c.Role) {
		return ErrForbidden
	}
	return nil
}

func (c Caller) student() error {
	if err := c.authenticated(); err != nil {
		return err
	}
	if !canApply(c.Role) {
		return ErrForbidden
	}
	return nil
}
