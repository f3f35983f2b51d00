package helpers

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Account password limits. bcrypt only reads the first 72 bytes.
const (
	MinPasswordLength = 6
	MaxPasswordBytes  = 72
)

var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

// HashPassword returns the bcrypt hash stored for an account password.
func HashPassword(plain string) (string, error) {
	if len(plain) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// PasswordMatches reports whether plain is the password behind hash. A
// malformed hash never matches.
func PasswordMatches(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
