package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafflehq/raffle-sales-api/internal/config"
	"github.com/rafflehq/raffle-sales-api/internal/domain"
	"github.com/rafflehq/raffle-sales-api/internal/service"
)

type stubAuthService struct {
	user      domain.User
	signupErr error
	loginErr  error
}

func (s *stubAuthService) Signup(ctx context.Context, user domain.User) (domain.User, error) {
	return s.user, s.signupErr
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	return s.user, s.loginErr
}

func newAuthTestRouter(t *testing.T, svc AuthService) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewAuthHandler(&config.APIConfig{JWTSigningKey: testSigningKey}, svc)
	router.POST("/api/v1/auth/signup", handler.HandleSignup)
	router.POST("/api/v1/auth/login", handler.HandleLogin)

	return router
}

func TestHandleSignup_Created(t *testing.T) {
	svc := &stubAuthService{user: domain.User{ID: 1, Email: "seller@example.com", Name: "Sam"}}
	router := newAuthTestRouter(t, svc)

	body, _ := json.Marshal(map[string]string{
		"email":            "seller@example.com",
		"name":             "Sam",
		"password":         "hunter2hunter2",
		"confirm_password": "hunter2hunter2",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandleSignup_WeakPassword(t *testing.T) {
	router := newAuthTestRouter(t, &stubAuthService{})

	body, _ := json.Marshal(map[string]string{
		"email":            "seller@example.com",
		"name":             "Sam",
		"password":         "short1",
		"confirm_password": "short1",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSignup_EmailExists(t *testing.T) {
	router := newAuthTestRouter(t, &stubAuthService{signupErr: service.ErrUserEmailExists})

	body, _ := json.Marshal(map[string]string{
		"email":            "taken@example.com",
		"name":             "Sam",
		"password":         "hunter2hunter2",
		"confirm_password": "hunter2hunter2",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleLogin_ReturnsToken(t *testing.T) {
	svc := &stubAuthService{user: domain.User{ID: 1, Email: "seller@example.com"}}
	router := newAuthTestRouter(t, svc)

	body, _ := json.Marshal(map[string]string{
		"email":    "seller@example.com",
		"password": "hunter2hunter2",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
}

func TestHandleLogin_WrongCredentials(t *testing.T) {
	router := newAuthTestRouter(t, &stubAuthService{loginErr: service.ErrWrongPassword})

	body, _ := json.Marshal(map[string]string{
		"email":    "seller@example.com",
		"password": "wrong-password1",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
