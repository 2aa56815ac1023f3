// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"inkwell/config"
	"inkwell/internal/domain/service"
)

// claims is the token payload. Kind keeps the two classes apart even if
// both secrets were ever configured to the same value.
type claims struct {
	IdentityID string            `json:"identityId"`
	Kind       service.TokenKind `json:"kind"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	issuer        string
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return newJWTService(cfg, time.Now)
}

func newJWTService(cfg *config.Config, now func() time.Time) (*jwtService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.SecretKey.Access == cfg.SecretKey.Refresh {
		return nil, errors.New("access and refresh secrets must differ")
	}

	svc := &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     time.Hour,
		refreshTTL:    7 * 24 * time.Hour,
		now:           now,
	}
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			svc.accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			svc.refreshTTL = cfg.Auth.RefreshTokenTTL
		}
		svc.issuer = cfg.Auth.Issuer
	}

	return svc, nil
}

func (s *jwtService) IssueAccess(identityID uuid.UUID) (string, error) {
	return s.issue(identityID, service.TokenKindAccess, s.accessSecret, s.accessTTL)
}

func (s *jwtService) IssueRefresh(identityID uuid.UUID) (string, error) {
	return s.issue(identityID, service.TokenKindRefresh, s.refreshSecret, s.refreshTTL)
}

func (s *jwtService) VerifyAccess(token string) service.TokenVerification {
	return s.verify(token, service.TokenKindAccess, s.accessSecret)
}

func (s *jwtService) VerifyRefresh(token string) service.TokenVerification {
	return s.verify(token, service.TokenKindRefresh, s.refreshSecret)
}

func (s *jwtService) AccessTTL() time.Duration {
	return s.accessTTL
}

func (s *jwtService) RefreshTTL() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) issue(identityID uuid.UUID, kind service.TokenKind, secret []byte, ttl time.Duration) (string, error) {
	now := s.now()
	c := claims{
		IdentityID: identityID.String(),
		Kind:       kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identityID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(secret)
}

func (s *jwtService) verify(token string, kind service.TokenKind, secret []byte) service.TokenVerification {
	if token == "" {
		return service.InvalidToken{Reason: service.ReasonMalformed}
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	var c claims
	_, err := jwt.NewParser(opts...).ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return secret, nil
	})
	if err != nil {
		return service.InvalidToken{Reason: reasonFor(err)}
	}

	if c.Kind != kind {
		return service.InvalidToken{Reason: service.ReasonWrongKind}
	}

	identityID, err := uuid.Parse(c.IdentityID)
	if err != nil || c.Subject != c.IdentityID {
		return service.InvalidToken{Reason: service.ReasonMalformed}
	}

	return service.ValidToken{
		IdentityID: identityID,
		IssuedAt:   c.IssuedAt.Time,
		ExpiresAt:  c.ExpiresAt.Time,
	}
}

func reasonFor(err error) service.InvalidTokenReason {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return service.ReasonExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return service.ReasonSignature
	default:
		return service.ReasonMalformed
	}
}
