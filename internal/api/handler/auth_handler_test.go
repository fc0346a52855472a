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

	"github.com/bookstore/bookstore-api/internal/core/domain"
	"github.com/bookstore/bookstore-api/internal/core/ports"
)

type stubUserService struct {
	registerFn       func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error)
	findByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	findByIDFn       func(ctx context.Context, id string) (*domain.User, error)
	findAllFn        func(ctx context.Context) ([]*domain.User, error)
	updateFn         func(ctx context.Context, user *domain.User) error
	deleteByIDFn     func(ctx context.Context, id string) error
}

func (s *stubUserService) Register(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubUserService) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.findByUsernameFn(ctx, username)
}

func (s *stubUserService) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubUserService) FindAll(ctx context.Context) ([]*domain.User, error) {
	return s.findAllFn(ctx)
}

func (s *stubUserService) Update(ctx context.Context, user *domain.User) error {
	return s.updateFn(ctx, user)
}

func (s *stubUserService) DeleteByID(ctx context.Context, id string) error {
	return s.deleteByIDFn(ctx, id)
}

type stubAuthService struct {
	loginFn  func(ctx context.Context, username, password string) (string, *domain.User, error)
	logoutFn func(ctx context.Context, token string) error
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Logout(ctx context.Context, token string) error {
	return s.logoutFn(ctx, token)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
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
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	users := &stubUserService{
		registerFn: func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
			if input.Username != "alice" || input.Password != "secret" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{ID: "u1", Username: "alice", Roles: []string{domain.RoleUser}}, nil
		},
	}
	h := NewAuthHandler(users, &stubAuthService{})

	c, rec := newTestContext(t, http.MethodPost, "/register", `{"username":"alice","password":"secret"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["username"] != "alice" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, exposed := resp["password"]; exposed {
		t.Fatalf("password leaked in response")
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	users := &stubUserService{
		registerFn: func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(users, &stubAuthService{})

	c, _ := newTestContext(t, http.MethodPost, "/register", `{"username":"alice","password":"secret"}`)
	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	users := &stubUserService{
		registerFn: func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(users, &stubAuthService{})

	c, _ := newTestContext(t, http.MethodPost, "/register", "not-json")
	err := h.Register(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	auth := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (string, *domain.User, error) {
			return "tok-123", &domain.User{Username: username, Roles: []string{domain.RoleUser}}, nil
		},
	}
	h := NewAuthHandler(&stubUserService{}, auth)

	c, rec := newTestContext(t, http.MethodPost, "/login", `{"username":"alice","password":"pw"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "tok-123" {
		t.Fatalf("token missing from response: %+v", resp)
	}
}

func TestAuthHandler_Login_FailureIsOpaque(t *testing.T) {
	auth := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrUserNotFound
		},
	}
	h := NewAuthHandler(&stubUserService{}, auth)

	c, _ := newTestContext(t, http.MethodPost, "/login", `{"username":"ghost","password":"pw"}`)
	err := h.Login(c)
	// A missing account must be indistinguishable from a wrong password.
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
