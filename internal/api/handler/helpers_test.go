package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/careledger/clinic-api/internal/api/middleware"
	"github.com/careledger/clinic-api/internal/core/domain"
	"github.com/careledger/clinic-api/internal/core/ports"
)

// newContext builds an echo context for a JSON request. When username is not
// empty the context carries the identity the Auth middleware would set.
func newContext(t *testing.T, method, target, body, username string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if username != "" {
		c.Set(middleware.UsernameKey, username)
		c.Set(middleware.ClaimsKey, &ports.TokenClaims{Username: username, UserID: 1, TokenID: "jti-1"})
	}
	return c, rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v (%s)", err, rec.Body.String())
	}
	return out
}

func assertHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != code {
		t.Fatalf("expected %d, got %d", code, he.Code)
	}
}

func assertValidationError(t *testing.T, err error, field string) {
	t.Helper()
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, fe := range ve.Errors {
		if fe.Field == field {
			return
		}
	}
	t.Fatalf("expected error on field %q, got %+v", field, ve.Errors)
}

// --- stubs ---

type stubAuthService struct {
	registerFn func(ctx context.Context, username, password string) (*domain.User, error)
	loginFn    func(ctx context.Context, username, password string) (*ports.Credential, error)
	logoutFn   func(ctx context.Context, claims ports.TokenClaims) error
}

func (s *stubAuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	return s.registerFn(ctx, username, password)
}

func (s *stubAuthService) Authenticate(context.Context, string, string) (*domain.Identity, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*ports.Credential, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Logout(ctx context.Context, claims ports.TokenClaims) error {
	return s.logoutFn(ctx, claims)
}

type stubRegistry struct {
	createClientFn  func(ctx context.Context, name string, age int) (*domain.Client, error)
	getClientFn     func(ctx context.Context, id int64) (*domain.ClientView, error)
	listClientsFn   func(ctx context.Context) ([]domain.Client, error)
	createProgramFn func(ctx context.Context, name string) (*domain.Program, error)
	listProgramsFn  func(ctx context.Context) ([]domain.Program, error)
	enrollFn        func(ctx context.Context, in ports.EnrollInput) (*domain.EnrollmentResult, error)
}

func (s *stubRegistry) CreateClient(ctx context.Context, name string, age int) (*domain.Client, error) {
	return s.createClientFn(ctx, name, age)
}

func (s *stubRegistry) GetClient(ctx context.Context, id int64) (*domain.ClientView, error) {
	return s.getClientFn(ctx, id)
}

func (s *stubRegistry) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.listClientsFn(ctx)
}

func (s *stubRegistry) CreateProgram(ctx context.Context, name string) (*domain.Program, error) {
	return s.createProgramFn(ctx, name)
}

func (s *stubRegistry) ListPrograms(ctx context.Context) ([]domain.Program, error) {
	return s.listProgramsFn(ctx)
}

func (s *stubRegistry) Enroll(ctx context.Context, in ports.EnrollInput) (*domain.EnrollmentResult, error) {
	return s.enrollFn(ctx, in)
}

type stubOutcomes struct {
	addFn func(ctx context.Context, in ports.AddOutcomeInput) (*domain.ProgramOutcome, error)
}

func (s *stubOutcomes) AddOutcome(ctx context.Context, in ports.AddOutcomeInput) (*domain.ProgramOutcome, error) {
	return s.addFn(ctx, in)
}

type stubActivity struct {
	entries []domain.ActivityLog
	err     error
}

func (s *stubActivity) List(context.Context) ([]domain.ActivityLog, error) {
	return s.entries, s.err
}
