// utils/auth.go
package utils

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier checks an email/password pair against a credential
// source. The backend ships with a single fixed admin pair; a real identity
// provider can be substituted without touching the login handler.
type CredentialVerifier interface {
	Verify(email, password string) bool
}

// EnvCredentialVerifier verifies against the admin credentials configured in
// the environment. A bcrypt hash is preferred; a plain password is compared
// in constant time as a fallback.
type EnvCredentialVerifier struct {
	email        string
	password     string
	passwordHash string
}

func NewEnvCredentialVerifier(email, password, passwordHash string) *EnvCredentialVerifier {
	return &EnvCredentialVerifier{
		email:        strings.ToLower(strings.TrimSpace(email)),
		password:     password,
		passwordHash: passwordHash,
	}
}

func (v *EnvCredentialVerifier) Verify(email, password string) bool {
	if v.password == "" && v.passwordHash == "" {
		return false
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if subtle.ConstantTimeCompare([]byte(email), []byte(v.email)) != 1 {
		return false
	}

	if v.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(v.passwordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(v.password)) == 1
}
