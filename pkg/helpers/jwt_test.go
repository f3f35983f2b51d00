package helpers

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	tok, exp, err := m.GenerateAccessToken("u1", "Student", "s1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Fatalf("expiry in the past: %v", exp)
	}
	claims, err := m.ParseAccessToken(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "u1" || claims.Role != "Student" || claims.SessionID != "s1" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestJWTRejectsBadTokens(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	other := NewJWTManager("other", time.Hour)
	tok, _, _ := other.GenerateAccessToken("u1", "Student", "s1")

	expired := NewJWTManager("secret", -time.Minute)
	old, _, _ := expired.GenerateAccessToken("u1", "Student", "s1")

	for name, in := range map[string]string{"wrong secret": tok, "expired": old, "garbage": "abc.def.ghi"} {
		if _, err := m.ParseAccessToken(in); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestPasswordHash(t *testing.T) {
	h, err := HashPassword("correct horse")
	if err != nil {
		t.Fatal(err)
	}
	if h == "correct horse" {
		t.Fatal("password stored in plain text")
	}
	if !PasswordMatches(h, "correct horse") {
		t.Error("expected match")
	}
	if PasswordMatches(h, "wrong") {
		t.Error("expected mismatch")
	}
	if PasswordMatches("not-a-hash", "correct horse") {
		t.Error("malformed hash matched")
	}
	if _, err := HashPassword(strings.Repeat("a", MaxPasswordBytes+1)); !errors.Is(err, ErrPasswordTooLong) {
		t.Errorf("long password: got %v", err)
	}
}
