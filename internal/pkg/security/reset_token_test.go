package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetTokenRoundTrip(t *testing.T) {
	token, err := GenerateResetToken(42, "laura@school.test", "test-secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyResetToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "laura@school.test", claims.Email)
	assert.Equal(t, "password-reset", claims.Subject)
}

func TestResetTokenWrongSecret(t *testing.T) {
	token, err := GenerateResetToken(42, "laura@school.test", "test-secret")
	require.NoError(t, err)

	_, err = VerifyResetToken(token, "other-secret")
	assert.Error(t, err)
}

func TestResetTokenTampered(t *testing.T) {
	token, err := GenerateResetToken(42, "laura@school.test", "test-secret")
	require.NoError(t, err)

	_, err = VerifyResetToken(token+"x", "test-secret")
	assert.Error(t, err)
}

func TestResetTokenRequiresSecret(t *testing.T) {
	_, err := GenerateResetToken(1, "a@b.test", "")
	assert.Error(t, err)

	_, err = VerifyResetToken("anything", "")
	assert.Error(t, err)
}
