package auth

import (
	"testing"
	"time"

	"resale/config"
	"resale/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: ttl}}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	tokenSvc, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	token, err := tokenSvc.GenerateToken("a@x.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tokenSvc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "a@x.com", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	jwtSvc := svc.(*jwtService)
	issuedAt := time.Now().Add(-2 * time.Hour)
	jwtSvc.now = func() time.Time { return issuedAt }

	token, err := jwtSvc.GenerateToken("a@x.com")
	require.NoError(t, err)

	jwtSvc.now = time.Now
	claims, err := jwtSvc.ValidateToken(token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestJWTService_MismatchedKey(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("issuer_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("other_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	token, err := issuer.GenerateToken("a@x.com")
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestJWTService_RejectsNonHMACAlgorithm(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &service.Claims{
		Email: "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	// Test invalid token - using clearly non-JWT format
	claims, err := svc.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("", time.Hour))
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_GetTokenDuration(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing", 24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, svc.GetTokenDuration())

	cfg := newTestConfig("test_access_secret_key_very_long_for_testing", 0)
	cfg.Auth = nil
	svc, err = NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, svc.GetTokenDuration())
}
