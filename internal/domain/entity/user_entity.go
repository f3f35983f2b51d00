package entity

import (
	"time"
)

// User is the account aggregate. Password holds a bcrypt hash.
type User struct {
	ID          string
	Fullname    string
	Email       string
	PhoneNumber string
	Password    string
	Role        Role
	Profile     Profile
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Profile is embedded in User and only edited through profile updates.
type Profile struct {
	Bio                string
	Skills             []string
	ResumeURL          string
	ResumeOriginalName string
	CompanyID          string
	PhotoURL           string
}

// Clone returns a deep copy so callers can mutate without aliasing skills.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Profile.Skills = append([]string(nil), u.Profile.Skills...)
	return &c
}
