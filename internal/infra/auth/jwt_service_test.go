package auth

import (
	"testing"
	"time"

	"passport/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestNewJWTService_RejectsEmptySecret(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(""))

	require.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret"))
	require.NoError(t, err)

	tokenString, err := svc.IssueAccessToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := svc.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "42", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_DefaultTTLIs24Hours(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret"))
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, svc.AccessTokenTTL())
}

func TestJWTService_ConfiguredTTLOverridesDefault(t *testing.T) {
	cfg := newTestJWTConfig("test-secret")
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: 15 * time.Minute}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, svc.AccessTokenTTL())
}

func TestJWTService_ValidateToken_Garbage(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret"))
	require.NoError(t, err)

	claims, err := svc.ValidateToken("not.a.token")

	require.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig("secret-a"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestJWTConfig("secret-b"))
	require.NoError(t, err)

	tokenString, err := issuer.IssueAccessToken(42)
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(tokenString)

	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	cfg := newTestJWTConfig("test-secret")
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: -time.Minute}

	// A negative TTL in config is ignored, so build the expired token by hand
	// with the same claim shape the service issues.
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "42",
		"iat": now.Add(-2 * time.Hour).Unix(),
		"exp": now.Add(-time.Hour).Unix(),
	})
	tokenString, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tokenString)

	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ValidateToken_RejectsUnexpectedSigningMethod(t *testing.T) {
	// alg=none tokens must never pass verification.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "42",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	svc, err := NewJWTService(newTestJWTConfig("test-secret"))
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tokenString)

	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ValidateToken_NonNumericSubject(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	svc, err := NewJWTService(newTestJWTConfig("test-secret"))
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tokenString)

	require.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "token subject is not a user id")
}
