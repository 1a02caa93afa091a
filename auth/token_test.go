package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-for-unit-tests"

func TestValidateToken_RoundTrip(t *testing.T) {
	token, err := IssueToken(testSecret, "answer-pipeline", "admin", time.Hour)
	require.NoError(t, err)

	claims, err := NewTokenValidator(testSecret).ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "answer-pipeline", claims.Service)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "answer-pipeline", claims.Subject)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := IssueToken(testSecret, "answer-pipeline", "admin", time.Hour)
	require.NoError(t, err)

	_, err = NewTokenValidator("a-different-secret").ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	token, err := IssueToken(testSecret, "answer-pipeline", "admin", -time.Minute)
	require.NoError(t, err)

	_, err = NewTokenValidator(testSecret).ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := NewTokenValidator(testSecret).ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
