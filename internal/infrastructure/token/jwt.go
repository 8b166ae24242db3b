// Package token issues and validates the HS256 bearer credentials handed out
// on login.
package token

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/careledger/clinic-api/internal/core/domain"
	"github.com/careledger/clinic-api/internal/core/ports"
)

const defaultIssuer = "clinic-api"

type claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// Manager signs and parses access tokens.
type Manager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithIssuer overrides the iss claim.
func WithIssuer(issuer string) Option {
	return func(m *Manager) { m.issuer = issuer }
}

// WithClock replaces time.Now. Tests only.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func NewManager(secret string, ttl time.Duration, opts ...Option) *Manager {
	m := &Manager{
		secret: []byte(secret),
		issuer: defaultIssuer,
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// Issue creates a signed token for identity with a fresh jti.
func (m *Manager) Issue(identity domain.Identity) (*ports.Credential, error) {
	now := m.now()
	expires := now.Add(m.ttl)

	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(identity.UserID, 10),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
		Username: identity.Username,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &ports.Credential{Token: signed, ExpiresAt: expires.Truncate(time.Second)}, nil
}

// Parse validates signature, algorithm, issuer and expiry. Every failure
// wraps domain.ErrUnauthorized.
func (m *Manager) Parse(raw string) (*ports.TokenClaims, error) {
	if raw == "" {
		return nil, fmt.Errorf("empty token: %w", domain.ErrUnauthorized)
	}

	var c claims
	_, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("parse token: %v: %w", err, domain.ErrUnauthorized)
	}

	if c.Username == "" {
		return nil, fmt.Errorf("token without username: %w", domain.ErrUnauthorized)
	}

	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid subject %q: %w", c.Subject, domain.ErrUnauthorized)
	}

	return &ports.TokenClaims{
		Username:  c.Username,
		UserID:    userID,
		TokenID:   c.ID,
		ExpiresAt: c.ExpiresAt.Time,
	}, nil
}
