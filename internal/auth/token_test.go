package auth

import (
	"testing"
	"time"

	"github.com/devboardhq/devboard/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewTokenManager("test-secret")
	user := &models.User{ID: 7, Email: "a@example.com", Role: models.RoleAdmin}

	token, err := m.Issue(user)
	require.NoError(t, err)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-one").Issue(&models.User{ID: 1})
	require.NoError(t, err)

	_, err = NewTokenManager("secret-two").Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyGarbage(t *testing.T) {
	_, err := NewTokenManager("test-secret").Verify("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyExpired(t *testing.T) {
	m := NewTokenManager("test-secret")

	// Hand-roll an already-expired token with the same claims shape.
	claims := Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	require.NoError(t, err)

	// Expiry must be distinguishable from a generally invalid token.
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}
