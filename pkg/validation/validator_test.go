package validation

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
)

type registerReq struct {
	Fullname string   `json:"fullname" binding:"required" validate:"required"`
	Email    string   `json:"email" validate:"required,email"`
	Phone    string   `json:"phoneNumber" validate:"required,phone"`
	Password string   `json:"password" validate:"required,pwd"`
	Role     string   `json:"role" validate:"required,role"`
	Salary   float64  `json:"salary" validate:"gte=0"`
	Skills   []string `json:"skills" validate:"max=3"`
}

func TestToDetailsFieldMessages(t *testing.T) {
	v := validator.New()
	Register(v)

	err := v.Struct(registerReq{
		Email:    "nope",
		Phone:    "12ab",
		Password: "123",
		Role:     "admin",
		Salary:   -1,
	})
	details := ToDetails(err)

	want := map[string]string{
		"fullname":    "is required",
		"email":       "must be a valid email",
		"phoneNumber": "must be a valid phone number",
		"password":    "must be between 6 and 72 characters long",
		"role":        "must be one of: Student, Recruiter",
		"salary":      "must be greater than or equal to 0",
	}
	for field, msg := range want {
		if details[field] != msg {
			t.Errorf("%s: got %q, want %q", field, details[field], msg)
		}
	}
}

func TestRoleTagIsCaseInsensitive(t *testing.T) {
	v := validator.New()
	Register(v)
	ok := registerReq{Fullname: "A", Email: "a@x.com", Phone: "0812345", Password: "secret1", Role: "recruiter"}
	if err := v.Struct(ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestToDetailsJSONErrors(t *testing.T) {
	var dst struct {
		Salary float64 `json:"salary"`
	}
	err := json.Unmarshal([]byte(`{"salary":"lots"}`), &dst)
	if got := ToDetails(err); got["salary"] != "must be a float64" {
		t.Errorf("type error details = %v", got)
	}
	err = json.Unmarshal([]byte(`{`), &dst)
	if got := ToDetails(err); got["payload"] == "" {
		t.Errorf("syntax error details = %v", got)
	}
}
