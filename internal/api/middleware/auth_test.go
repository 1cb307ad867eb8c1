package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafflehq/raffle-sales-api/internal/pkg/jwthelper"
)

func newAuthTestRouter(t *testing.T, signingKey string) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", NewAuthenticator(signingKey).VerifyJWT(), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"email": ctx.GetString(ContextKeyEmail)})
	})

	return router
}

func TestVerifyJWT_ValidToken(t *testing.T) {
	router := newAuthTestRouter(t, "secret")

	token, err := jwthelper.GenerateToken([]byte("secret"), "seller@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"email":"seller@example.com"}`, rec.Body.String())
}

func TestVerifyJWT_MissingHeader(t *testing.T) {
	router := newAuthTestRouter(t, "secret")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyJWT_MalformedToken(t *testing.T) {
	router := newAuthTestRouter(t, "secret")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyJWT_WrongSigningKey(t *testing.T) {
	router := newAuthTestRouter(t, "secret")

	token, err := jwthelper.GenerateToken([]byte("other-key"), "seller@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
