package auth

import (
	"testing"
	"time"

	"cepcache/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret, issuer string, ttl time.Duration) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			Enabled:  true,
			Secret:   secret,
			Issuer:   issuer,
			TokenTTL: ttl,
		},
	}
	config.ApplyDefaults(cfg)

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing", "cepcache", time.Hour))
	require.NoError(t, err)
	assert.Equal(t, time.Hour, svc.TokenTTL())

	token, err := svc.GenerateToken("billing-service", []string{"addresses:read"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "billing-service", claims.Subject)
	assert.Equal(t, "cepcache", claims.Issuer)
	assert.Equal(t, []string{"addresses:read"}, claims.Scopes)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	issuing, err := NewJWTService(newTestConfig("first_secret_key_for_testing_only", "", time.Hour))
	require.NoError(t, err)
	validating, err := NewJWTService(newTestConfig("second_secret_key_for_testing_only", "", time.Hour))
	require.NoError(t, err)

	token, err := issuing.GenerateToken("billing-service", nil)
	require.NoError(t, err)

	_, err = validating.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing", "", time.Minute))
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.GenerateToken("billing-service", nil)
	require.NoError(t, err)

	impl.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsWrongIssuer(t *testing.T) {
	issuing, err := NewJWTService(newTestConfig("shared_secret_key_for_testing_only", "someone-else", time.Hour))
	require.NoError(t, err)
	validating, err := NewJWTService(newTestConfig("shared_secret_key_for_testing_only", "cepcache", time.Hour))
	require.NoError(t, err)

	token, err := issuing.GenerateToken("billing-service", nil)
	require.NoError(t, err)

	_, err = validating.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing", "", time.Hour))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "billing-service",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(unsigned)
	assert.Error(t, err)
}

func TestNewJWTService_SecretRequiredWhenEnabled(t *testing.T) {
	_, err := NewJWTService(newTestConfig("", "", time.Hour))
	assert.ErrorIs(t, err, ErrSecretMissing)

	cfg := newTestConfig("", "", time.Hour)
	cfg.Auth.Enabled = false
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	_, err = svc.GenerateToken("billing-service", nil)
	assert.ErrorIs(t, err, ErrSecretMissing)
}
