package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenKind separates the two token classes; each is signed with its own secret.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// InvalidTokenReason explains why a token was rejected.
type InvalidTokenReason string

const (
	ReasonMalformed InvalidTokenReason = "malformed"
	ReasonExpired   InvalidTokenReason = "expired"
	ReasonSignature InvalidTokenReason = "signature"
	ReasonWrongKind InvalidTokenReason = "wrong_kind"
)

// TokenVerification is the outcome of verifying a token: either ValidToken
// or InvalidToken. Callers switch on the concrete type.
type TokenVerification interface {
	isTokenVerification()
}

// ValidToken carries the identity a token was issued for.
type ValidToken struct {
	IdentityID uuid.UUID
	IssuedAt   time.Time
	ExpiresAt  time.Time
}

// InvalidToken is returned for malformed, expired or mis-signed tokens.
type InvalidToken struct {
	Reason InvalidTokenReason
}

func (ValidToken) isTokenVerification()   {}
func (InvalidToken) isTokenVerification() {}

// TokenService mints and verifies access and refresh tokens.
type TokenService interface {
	IssueAccess(identityID uuid.UUID) (string, error)
	IssueRefresh(identityID uuid.UUID) (string, error)

	// VerifyAccess never fails; a bad token yields InvalidToken.
	VerifyAccess(token string) TokenVerification
	VerifyRefresh(token string) TokenVerification

	AccessTTL() time.Duration
	RefreshTTL() time.Duration
}
