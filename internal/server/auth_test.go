package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authdomain "github.com/uniguide/uniguide/internal/auth/domain"
	"github.com/uniguide/uniguide/internal/auth/session"
	"github.com/uniguide/uniguide/internal/config"
)

type fakeAuthService struct {
	signupCalls int
	loginCalls  int
	loginErr    error
	claims      *authdomain.Claims
	authErr     error
}

func (f *fakeAuthService) Signup(ctx context.Context, req authdomain.SignupRequest) (*authdomain.User, error) {
	f.signupCalls++
	return &authdomain.User{
		ID:    snowflake.ID(200),
		Email: req.Email,
		Role:  authdomain.RoleUser,
	}, nil
}

func (f *fakeAuthService) VerifyEmail(ctx context.Context, req authdomain.VerifyEmailRequest) (*authdomain.LoginResult, error) {
	return &authdomain.LoginResult{
		User:      &authdomain.User{ID: snowflake.ID(200), Email: req.Email, EmailVerified: true},
		RawToken:  "session-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil
}

func (f *fakeAuthService) Login(ctx context.Context, req authdomain.LoginRequest) (*authdomain.LoginResult, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &authdomain.LoginResult{
		User:      &authdomain.User{ID: snowflake.ID(200), Email: req.Email, Role: authdomain.RoleUser},
		RawToken:  "session-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil
}

func (f *fakeAuthService) RequestPasswordReset(ctx context.Context, email string) error {
	return nil
}

func (f *fakeAuthService) ResetPassword(ctx context.Context, req authdomain.ResetPasswordRequest) error {
	return nil
}

func (f *fakeAuthService) Authenticate(ctx context.Context, rawToken string) (*authdomain.Claims, error) {
	if f.authErr != nil {
		return nil, f.authErr
	}
	return f.claims, nil
}

func (f *fakeAuthService) CurrentUser(ctx context.Context, userID snowflake.ID) (*authdomain.User, error) {
	return &authdomain.User{ID: userID, Email: "student@campus.edu", Role: authdomain.RoleUser}, nil
}

func (f *fakeAuthService) ListUsers(ctx context.Context, req authdomain.ListUsersRequest) (authdomain.ListUsersResponse, error) {
	return authdomain.ListUsersResponse{}, nil
}

func (f *fakeAuthService) UpdateRole(ctx context.Context, userID snowflake.ID, role string) (*authdomain.User, error) {
	return &authdomain.User{ID: userID, Role: role}, nil
}

func (f *fakeAuthService) DeleteUser(ctx context.Context, userID snowflake.ID) error {
	return nil
}

func newTestServer(authsvc authdomain.Service) *Server {
	return &Server{
		cfg:      config.Config{},
		log:      zap.NewNop(),
		authsvc:  authsvc,
		sessions: session.NewManager(config.Config{}),
	}
}

func TestSignupHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	authsvc := &fakeAuthService{}
	srv := newTestServer(authsvc)

	router := gin.New()
	router.Use(ErrorHandlingMiddleware())
	router.POST("/auth/signup", srv.Signup)

	body, _ := json.Marshal(SignupRequest{
		Email:    "student@campus.edu",
		Name:     "Student",
		Password: "correct-horse",
	})
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if authsvc.signupCalls != 1 {
		t.Errorf("signup calls = %d, want 1", authsvc.signupCalls)
	}
}

func TestSignupHandlerRejectsMalformedJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)

	srv := newTestServer(&fakeAuthService{})
	router := gin.New()
	router.Use(ErrorHandlingMiddleware())
	router.POST("/auth/signup", srv.Signup)

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader("{broken"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "validation_error") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestLoginHandlerSetsSessionCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	srv := newTestServer(&fakeAuthService{})
	router := gin.New()
	router.Use(ErrorHandlingMiddleware())
	router.POST("/auth/login", srv.Login)

	body, _ := json.Marshal(LoginRequest{Email: "student@campus.edu", Password: "correct-horse"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	cookieSet := false
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == session.DefaultCookieName && cookie.Value == "session-token" {
			cookieSet = true
		}
	}
	if !cookieSet {
		t.Error("session cookie not set")
	}
}

func TestLoginHandlerBadCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)

	srv := newTestServer(&fakeAuthService{loginErr: authdomain.ErrInvalidCredentials})
	router := gin.New()
	router.Use(ErrorHandlingMiddleware())
	router.POST("/auth/login", srv.Login)

	body, _ := json.Marshal(LoginRequest{Email: "student@campus.edu", Password: "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuthRequiredClearsBadToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	srv := newTestServer(&fakeAuthService{authErr: authdomain.ErrInvalidToken})
	router := gin.New()
	router.Use(ErrorHandlingMiddleware())
	router.GET("/auth/me", srv.AuthRequired(), srv.Me)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: session.DefaultCookieName, Value: "tampered"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}

	cleared := false
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == session.DefaultCookieName && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("tampered session cookie was not cleared")
	}
}

func TestRequireAreaRedirectsUserFromAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	srv := newTestServer(&fakeAuthService{
		claims: &authdomain.Claims{UserID: snowflake.ID(200), Role: authdomain.RoleUser},
	})
	router := gin.New()
	router.Use(ErrorHandlingMiddleware())
	router.GET("/admin/users", srv.AuthRequired(), srv.RequireArea(), srv.ListUsers)

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	req.AddCookie(&http.Cookie{Name: session.DefaultCookieName, Value: "session-token"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}

	var resp struct {
		Redirect string `json:"redirect"`
		Notice   string `json:"notice"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Redirect != "/services" {
		t.Errorf("redirect = %q, want /services", resp.Redirect)
	}
	if resp.Notice == "" {
		t.Error("expected a denial notice")
	}
}

func TestRequireAreaPermitsAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	srv := newTestServer(&fakeAuthService{
		claims: &authdomain.Claims{UserID: snowflake.ID(1), Role: authdomain.RoleAdmin},
	})
	router := gin.New()
	router.Use(ErrorHandlingMiddleware())
	router.GET("/admin/users", srv.AuthRequired(), srv.RequireArea(), srv.ListUsers)

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	req.AddCookie(&http.Cookie{Name: session.DefaultCookieName, Value: "session-token"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body = %s", w.Code, w.Body.String())
	}
}
