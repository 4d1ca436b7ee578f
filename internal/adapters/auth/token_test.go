package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_Issue_and_Verify(t *testing.T) {
	issuer := NewJWTIssuer("test-secret")
	verifier := NewJWTVerifier("test-secret")

	token, err := issuer.Issue("user-1", "alice@example.com", "attendee", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := verifier.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestJWT_Verify_wrong_secret(t *testing.T) {
	issuer := NewJWTIssuer("test-secret")
	verifier := NewJWTVerifier("other-secret")

	token, err := issuer.Issue("user-1", "alice@example.com", "attendee", time.Hour)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestJWT_Verify_expired(t *testing.T) {
	issuer := NewJWTIssuer("test-secret")
	verifier := NewJWTVerifier("test-secret")

	token, err := issuer.Issue("user-1", "alice@example.com", "attendee", -time.Minute)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestJWT_Verify_garbage(t *testing.T) {
	verifier := NewJWTVerifier("test-secret")

	_, err := verifier.Verify("not.a.jwt")
	assert.Error(t, err)
}
