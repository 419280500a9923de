package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestEnvCredentialVerifier_PlainPassword(t *testing.T) {
	v := NewEnvCredentialVerifier("Admin@Sepnoty.com", "s3cret", "")

	assert.True(t, v.Verify("admin@sepnoty.com", "s3cret"))
	assert.True(t, v.Verify("ADMIN@SEPNOTY.COM", "s3cret"))
	assert.False(t, v.Verify("admin@sepnoty.com", "wrong"))
	assert.False(t, v.Verify("other@sepnoty.com", "s3cret"))
}

func TestEnvCredentialVerifier_BcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	require.NoError(t, err)

	v := NewEnvCredentialVerifier("admin@sepnoty.com", "", string(hash))
	assert.True(t, v.Verify("admin@sepnoty.com", "s3cret"))
	assert.False(t, v.Verify("admin@sepnoty.com", "wrong"))
}

func TestEnvCredentialVerifier_NoCredentialsConfigured(t *testing.T) {
	v := NewEnvCredentialVerifier("admin@sepnoty.com", "", "")
	assert.False(t, v.Verify("admin@sepnoty.com", ""))
}
