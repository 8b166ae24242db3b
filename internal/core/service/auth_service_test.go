package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/careledger/clinic-api/internal/core/domain"
	"github.com/careledger/clinic-api/internal/core/ports"
)

type stubTokens struct {
	issued []domain.Identity
	err    error
}

func (s *stubTokens) Issue(identity domain.Identity) (*ports.Credential, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.issued = append(s.issued, identity)
	return &ports.Credential{Token: "token-" + identity.Username, ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (s *stubTokens) Parse(string) (*ports.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

type stubRevoker struct {
	revoked map[string]time.Duration
	err     error
}

func newStubRevoker() *stubRevoker {
	return &stubRevoker{revoked: make(map[string]time.Duration)}
}

func (r *stubRevoker) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if r.err != nil {
		return r.err
	}
	r.revoked[tokenID] = ttl
	return nil
}

func (r *stubRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := r.revoked[tokenID]
	return ok, r.err
}

func newAuthSvc(store *memStore, tokens *stubTokens, revoker *stubRevoker) *AuthService {
	return NewAuthService(memUsers{store}, tokens, revoker, zerolog.Nop(), WithBcryptCost(bcrypt.MinCost))
}

func TestAuthService_Register_Success(t *testing.T) {
	store := newMemStore()
	svc := newAuthSvc(store, &stubTokens{}, newStubRevoker())

	user, err := svc.Register(context.Background(), " alice ", "pass123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == 0 || user.Username != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_SaltedHashes(t *testing.T) {
	store := newMemStore()
	svc := newAuthSvc(store, &stubTokens{}, newStubRevoker())

	a, _ := svc.Register(context.Background(), "alice", "same-password")
	b, _ := svc.Register(context.Background(), "bob", "same-password")
	if a.PasswordHash == b.PasswordHash {
		t.Fatalf("identical passwords must not produce identical hashes")
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	long := make([]byte, domain.MaxPasswordBytes+1)
	for i := range long {
		long[i] = 'x'
	}

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "empty username", username: "", password: "pass"},
		{name: "blank username", username: "  ", password: "pass"},
		{name: "empty password", username: "bob", password: ""},
		{name: "password too long", username: "bob", password: string(long)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			svc := newAuthSvc(store, &stubTokens{}, newStubRevoker())

			if _, err := svc.Register(context.Background(), tt.username, tt.password); !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if len(store.users) != 0 {
				t.Fatalf("expected no stored users")
			}
		})
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := newAuthSvc(newMemStore(), &stubTokens{}, newStubRevoker())

	_, _ = svc.Register(context.Background(), "bob", "pass")
	if _, err := svc.Register(context.Background(), "bob", "pass2"); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	svc := newAuthSvc(newMemStore(), &stubTokens{}, newStubRevoker())
	registered, err := svc.Register(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	identity, err := svc.Authenticate(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if identity.UserID != registered.ID || identity.Username != "carol" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestAuthService_Authenticate_UndifferentiatedFailure(t *testing.T) {
	svc := newAuthSvc(newMemStore(), &stubTokens{}, newStubRevoker())
	_, _ = svc.Register(context.Background(), "dave", "goodpass")

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "dave", password: "badpass"},
		{name: "unknown user", username: "ghost", password: "goodpass"},
		{name: "empty password", username: "dave", password: ""},
		{name: "empty username", username: "", password: "goodpass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Authenticate(context.Background(), tt.username, tt.password)
			if err != domain.ErrInvalidCredentials {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestAuthService_Login_IssuesCredential(t *testing.T) {
	tokens := &stubTokens{}
	svc := newAuthSvc(newMemStore(), tokens, newStubRevoker())
	_, _ = svc.Register(context.Background(), "erin", "pw")

	cred, err := svc.Login(context.Background(), "erin", "pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if cred.Token != "token-erin" {
		t.Fatalf("unexpected token %q", cred.Token)
	}
	if len(tokens.issued) != 1 || tokens.issued[0].Username != "erin" {
		t.Fatalf("expected one credential for erin, got %+v", tokens.issued)
	}
}

func TestAuthService_Login_InvalidCredentialsIssuesNothing(t *testing.T) {
	tokens := &stubTokens{}
	svc := newAuthSvc(newMemStore(), tokens, newStubRevoker())

	if _, err := svc.Login(context.Background(), "ghost", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(tokens.issued) != 0 {
		t.Fatalf("no credential should be issued")
	}
}

func TestAuthService_Login_IssueError(t *testing.T) {
	tokens := &stubTokens{err: errors.New("signing failed")}
	svc := newAuthSvc(newMemStore(), tokens, newStubRevoker())
	_, _ = svc.Register(context.Background(), "erin", "pw")

	_, err := svc.Login(context.Background(), "erin", "pw")
	if err == nil || errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestAuthService_Logout(t *testing.T) {
	revoker := newStubRevoker()
	svc := newAuthSvc(newMemStore(), &stubTokens{}, revoker)

	err := svc.Logout(context.Background(), ports.TokenClaims{
		Username:  "erin",
		TokenID:   "jti-1",
		ExpiresAt: time.Now().Add(30 * time.Minute),
	})
	if err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	ttl, ok := revoker.revoked["jti-1"]
	if !ok {
		t.Fatalf("expected token to be revoked")
	}
	if ttl <= 0 || ttl > 30*time.Minute {
		t.Fatalf("unexpected ttl %s", ttl)
	}
}

func TestAuthService_Logout_ExpiredTokenIsNoop(t *testing.T) {
	revoker := newStubRevoker()
	svc := newAuthSvc(newMemStore(), &stubTokens{}, revoker)

	err := svc.Logout(context.Background(), ports.TokenClaims{TokenID: "jti-2", ExpiresAt: time.Now().Add(-time.Minute)})
	if err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if len(revoker.revoked) != 0 {
		t.Fatalf("expired token should not be stored")
	}
}

func TestAuthService_Logout_RevokerError(t *testing.T) {
	revoker := newStubRevoker()
	revoker.err = errStoreDown
	svc := newAuthSvc(newMemStore(), &stubTokens{}, revoker)

	err := svc.Logout(context.Background(), ports.TokenClaims{TokenID: "jti-3", ExpiresAt: time.Now().Add(time.Hour)})
	if !errors.Is(err, errStoreDown) {
		t.Fatalf("expected revoker error, got %v", err)
	}
}

type rejectingUsers struct{ memUsers }

func (rejectingUsers) FindByUsername(context.Context, string) (*domain.User, error) {
	return nil, fmt.Errorf("find user: %w", domain.ErrInvalidInput)
}

func TestAuthService_Authenticate_UnstorableUsername(t *testing.T) {
	svc := NewAuthService(rejectingUsers{memUsers{newMemStore()}}, &stubTokens{}, newStubRevoker(), zerolog.Nop(), WithBcryptCost(bcrypt.MinCost))

	_, err := svc.Authenticate(context.Background(), "da\x00ve", "goodpass")
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
