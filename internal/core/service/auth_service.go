package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/careledger/clinic-api/internal/core/domain"
	"github.com/careledger/clinic-api/internal/core/ports"
)

// AuthService implements registration, authentication and credential issuance.
type AuthService struct {
	repo    ports.UserRepository
	tokens  ports.TokenManager
	revoker ports.TokenRevoker
	log     zerolog.Logger

	cost int
	// dummyHash is compared against when the username is unknown so both
	// failure paths do the same bcrypt work.
	dummyHash []byte
}

// AuthOption configures an AuthService.
type AuthOption func(*AuthService)

// WithBcryptCost overrides bcrypt.DefaultCost.
func WithBcryptCost(cost int) AuthOption {
	return func(s *AuthService) {
		s.cost = cost
	}
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenManager, revoker ports.TokenRevoker, log zerolog.Logger, opts ...AuthOption) *AuthService {
	s := &AuthService{
		repo:    repo,
		tokens:  tokens,
		revoker: revoker,
		log:     log,
		cost:    bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("placeholder-password"), s.cost)
	if err != nil {
		panic(fmt.Sprintf("auth service: bcrypt cost %d: %v", s.cost, err))
	}
	s.dummyHash = hash

	return s
}

// Register stores a new user with a salted bcrypt hash of password.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	username = domain.NormalizeUsername(username)
	if err := domain.ValidateCredentials(username, password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Authenticate verifies a username/password pair.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.Identity, error) {
	username = domain.NormalizeUsername(username)
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		// A username the store cannot even hold is just another unknown user.
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidInput) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return &domain.Identity{UserID: user.ID, Username: user.Username}, nil
}

// Login authenticates and issues a bearer credential for the identity.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.Credential, error) {
	identity, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	cred, err := s.tokens.Issue(*identity)
	if err != nil {
		return nil, fmt.Errorf("issue credential: %w", err)
	}

	s.log.Info().Str("username", identity.Username).Msg("user logged in")
	return cred, nil
}

// Logout revokes the credential until it would have expired anyway.
func (s *AuthService) Logout(ctx context.Context, claims ports.TokenClaims) error {
	ttl := time.Until(claims.ExpiresAt)
	if claims.TokenID == "" || ttl <= 0 {
		return nil
	}

	if err := s.revoker.Revoke(ctx, claims.TokenID, ttl); err != nil {
		return fmt.Errorf("revoke credential: %w", err)
	}

	s.log.Info().Str("username", claims.Username).Msg("user logged out")
	return nil
}
