package auth

import (
	"strings"
	"testing"
	"time"

	"inkwell/config"
	"inkwell/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:  time.Hour,
			RefreshTokenTTL: 7 * 24 * time.Hour,
			Issuer:          "inkwell-test",
		},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func requireValid(t *testing.T, v service.TokenVerification) service.ValidToken {
	t.Helper()

	valid, ok := v.(service.ValidToken)
	require.Truef(t, ok, "expected ValidToken, got %#v", v)

	return valid
}

func requireInvalid(t *testing.T, v service.TokenVerification) service.InvalidToken {
	t.Helper()

	invalid, ok := v.(service.InvalidToken)
	require.Truef(t, ok, "expected InvalidToken, got %#v", v)

	return invalid
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	identityID := uuid.New()

	access, err := svc.IssueAccess(identityID)
	require.NoError(t, err)
	refresh, err := svc.IssueRefresh(identityID)
	require.NoError(t, err)
	assert.NotEqual(t, access, refresh)

	assert.Equal(t, identityID, requireValid(t, svc.VerifyAccess(access)).IdentityID)
	assert.Equal(t, identityID, requireValid(t, svc.VerifyRefresh(refresh)).IdentityID)
}

func TestJWTService_SecretSeparation(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	identityID := uuid.New()
	access, err := svc.IssueAccess(identityID)
	require.NoError(t, err)
	refresh, err := svc.IssueRefresh(identityID)
	require.NoError(t, err)

	assert.Equal(t, service.ReasonSignature, requireInvalid(t, svc.VerifyRefresh(access)).Reason)
	assert.Equal(t, service.ReasonSignature, requireInvalid(t, svc.VerifyAccess(refresh)).Reason)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := newTestConfig()
	issuedAt := time.Now().Add(-2 * time.Hour)

	issuer, err := newJWTService(cfg, func() time.Time { return issuedAt })
	require.NoError(t, err)
	verifier, err := newJWTService(cfg, time.Now)
	require.NoError(t, err)

	token, err := issuer.IssueAccess(uuid.New())
	require.NoError(t, err)

	assert.Equal(t, service.ReasonExpired, requireInvalid(t, verifier.VerifyAccess(token)).Reason)
}

func TestJWTService_ValidJustBeforeExpiry(t *testing.T) {
	cfg := newTestConfig()
	now := time.Now()

	svc, err := newJWTService(cfg, func() time.Time { return now })
	require.NoError(t, err)

	identityID := uuid.New()
	token, err := svc.IssueAccess(identityID)
	require.NoError(t, err)

	svc.now = func() time.Time { return now.Add(59 * time.Minute) }
	valid := requireValid(t, svc.VerifyAccess(token))
	assert.Equal(t, identityID, valid.IdentityID)

	svc.now = func() time.Time { return now.Add(61 * time.Minute) }
	assert.Equal(t, service.ReasonExpired, requireInvalid(t, svc.VerifyAccess(token)).Reason)
}

func TestJWTService_InvalidInputs(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	access, err := svc.IssueAccess(uuid.New())
	require.NoError(t, err)
	parts := strings.Split(access, ".")
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]

	tests := []struct {
		name   string
		token  string
		reason service.InvalidTokenReason
	}{
		{name: "empty", token: "", reason: service.ReasonMalformed},
		{name: "garbage", token: "clearly-not-a-jwt-token-format", reason: service.ReasonMalformed},
		{name: "tampered signature", token: tampered, reason: service.ReasonSignature},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.reason, requireInvalid(t, svc.VerifyAccess(tt.token)).Reason)
		})
	}
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	cfg := newTestConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	identityID := uuid.New()
	c := claims{
		IdentityID: identityID.String(),
		Kind:       service.TokenKindAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identityID.String(),
			Issuer:    cfg.Auth.Issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, c).SignedString([]byte(cfg.SecretKey.Access))
	require.NoError(t, err)

	requireInvalid(t, svc.VerifyAccess(token))
}

func TestJWTService_WrongKindWithSharedSecret(t *testing.T) {
	cfg := newTestConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	identityID := uuid.New()
	c := claims{
		IdentityID: identityID.String(),
		Kind:       service.TokenKindRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identityID.String(),
			Issuer:    cfg.Auth.Issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(cfg.SecretKey.Access))
	require.NoError(t, err)

	assert.Equal(t, service.ReasonWrongKind, requireInvalid(t, svc.VerifyAccess(token)).Reason)
}

func TestNewJWTService_ConfigErrors(t *testing.T) {
	cfg := newTestConfig()
	cfg.SecretKey.Refresh = ""
	_, err := NewJWTService(cfg)
	assert.Error(t, err)

	cfg = newTestConfig()
	cfg.SecretKey.Refresh = cfg.SecretKey.Access
	_, err = NewJWTService(cfg)
	assert.Error(t, err)
}

func TestNewJWTService_DefaultTTLs(t *testing.T) {
	cfg := newTestConfig()
	cfg.Auth = nil

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	assert.Equal(t, time.Hour, svc.AccessTTL())
	assert.Equal(t, 7*24*time.Hour, svc.RefreshTTL())
}
