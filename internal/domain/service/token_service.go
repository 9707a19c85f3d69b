package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the verified contents of an access token.
type Claims struct {
	UserID int64
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating signed,
// time-bound session tokens. Tokens are stateless: the issuer keeps no record
// of them, and expiry is self-contained in the token.
type TokenService interface {
	// IssueAccessToken creates a signed token carrying the user identity claim
	// and an expiration of now plus the configured validity window.
	IssueAccessToken(userID int64) (string, error)

	// ValidateToken checks the signature and expiry of a token string and
	// returns its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenTTL returns the configured validity window.
	AccessTokenTTL() time.Duration
}
