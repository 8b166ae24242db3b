package ports

import (
	"context"
	"time"

	"github.com/careledger/clinic-api/internal/core/domain"
)

// Credential is an issued bearer token.
type Credential struct {
	Token     string
	ExpiresAt time.Time
}

// TokenClaims is what the gateway learns from a valid credential.
type TokenClaims struct {
	Username  string
	UserID    int64
	TokenID   string
	ExpiresAt time.Time
}

// TokenManager issues and parses credentials for an identity.
type TokenManager interface {
	Issue(identity domain.Identity) (*Credential, error)
	Parse(token string) (*TokenClaims, error)
}

// TokenRevoker tracks credentials invalidated before their expiry.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthService is the credential store plus credential issuance.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Authenticate returns domain.ErrInvalidCredentials for both unknown
	// usernames and wrong passwords.
	Authenticate(ctx context.Context, username, password string) (*domain.Identity, error)
	Login(ctx context.Context, username, password string) (*Credential, error)
	Logout(ctx context.Context, claims TokenClaims) error
}
