package helper

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnsmate_backend/internals/configs"
)

func withSecret(t *testing.T, secret string) {
	t.Helper()
	prev, prevTTL := configs.JWTSecret, configs.JWTAccessTTL
	configs.JWTSecret = secret
	configs.JWTAccessTTL = time.Hour
	t.Cleanup(func() {
		configs.JWTSecret = prev
		configs.JWTAccessTTL = prevTTL
	})
}

func TestIssueAndParse(t *testing.T) {
	withSecret(t, "test-secret")

	issued, err := IssueAccessToken(42, "STUDENT", "Kim", time.Now())
	require.NoError(t, err)

	claims, err := ParseAccessToken(issued.AccessToken)
	require.NoError(t, err)
	code, err := claims.Code()
	require.NoError(t, err)
	assert.Equal(t, int64(42), code)
	assert.Equal(t, "STUDENT", claims.Role)
	assert.Equal(t, "Kim", claims.Name)
	assert.NotEmpty(t, claims.ID)
}

func TestParseExpired(t *testing.T) {
	withSecret(t, "test-secret")

	issued, err := IssueAccessToken(1, "ADMIN", "root", time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = ParseAccessToken(issued.AccessToken)
	assert.Error(t, err)
}

func TestParseWrongSecret(t *testing.T) {
	withSecret(t, "one")
	issued, err := IssueAccessToken(1, "ADMIN", "root", time.Now())
	require.NoError(t, err)

	configs.JWTSecret = "two"
	_, err = ParseAccessToken(issued.AccessToken)
	assert.Error(t, err)
}

func TestParseRejectsNonNumericSubject(t *testing.T) {
	withSecret(t, "test-secret")
	claims := Claims{Role: "ADMIN", RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "abc",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ParseAccessToken(raw)
	assert.Error(t, err)
}

func TestIssueWithoutSecret(t *testing.T) {
	withSecret(t, "")
	_, err := IssueAccessToken(1, "ADMIN", "root", time.Now())
	assert.ErrorIs(t, err, ErrMissingSecret)
}
