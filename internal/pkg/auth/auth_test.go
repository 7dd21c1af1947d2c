package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/memitrading/memi/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWT(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{SecretKey: "secret", TokenExp: exp, TokenIssuer: "memi-test"})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestJWT(24 * time.Hour)

	token, expiresAt, err := svc.GenerateToken(42)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "memi-test", claims.Issuer)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestJWT(-time.Minute)

	token, _, err := svc.GenerateToken(1)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := newTestJWT(time.Hour).GenerateToken(1)
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "other", TokenExp: time.Hour})
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestValidateToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := &Claims{UserID: 1, RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newTestJWT(time.Hour).ValidateToken(token)
	assert.True(t, errors.Is(err, apperrors.ErrTokenInvalid))
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := newTestJWT(time.Hour)

	for _, token := range []string{"", "not.a.token", "abc"} {
		_, err := svc.ValidateToken(token)
		assert.ErrorIs(t, err, apperrors.ErrTokenInvalid, token)
	}
}

func TestExtractBearerToken(t *testing.T) {
	assert.Equal(t, "abc", ExtractBearerToken("Bearer abc"))
	assert.Equal(t, "abc", ExtractBearerToken("bearer abc"))
	assert.Equal(t, "", ExtractBearerToken("Basic abc"))
	assert.Equal(t, "", ExtractBearerToken("Bearer"))
	assert.Equal(t, "", ExtractBearerToken(""))
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, CheckPassword(hash, "password123"))
	assert.False(t, CheckPassword(hash, "password124"))
	assert.False(t, CheckPassword("not-a-hash", "password123"))
}
