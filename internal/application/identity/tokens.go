package identity

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jetcongo/backend/internal/domain/identity"
)

// TokenPair carries an access/refresh token pair
type TokenPair struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// TokenClaims is the authenticated identity carried inside a token
type TokenClaims struct {
	TokenID   string
	UserID    uuid.UUID
	Role      identity.UserRole
	Name      string
	ExpiresAt time.Time
}

// TokenManager issues and validates signed token pairs
type TokenManager interface {
	// GeneratePair issues a fresh access/refresh pair for a user
	GeneratePair(user *identity.User) (*TokenPair, error)
	// ValidateAccessToken parses and verifies an access token
	ValidateAccessToken(token string) (*TokenClaims, error)
	// ValidateRefreshToken parses and verifies a refresh token
	ValidateRefreshToken(token string) (*TokenClaims, error)
}

// TokenBlacklist revokes token IDs until their natural expiry
type TokenBlacklist interface {
	// Revoke marks a token ID as unusable for the given duration
	Revoke(ctx context.Context, tokenID string, until time.Duration) error
	// IsRevoked reports whether a token ID has been revoked
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
