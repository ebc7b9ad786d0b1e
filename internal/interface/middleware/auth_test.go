package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playtube/playtube-api/pkg/helpers"
)

func authTestRouter(jwt *helpers.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(jwt), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(CtxUserIDKey))
	})
	r.GET("/open", OptionalAuth(jwt), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(CtxUserIDKey))
	})
	return r
}

func TestRequireAuth_CookieToken(t *testing.T) {
	jwt := helpers.NewJWTManager("a-secret", "r-secret", time.Minute, time.Hour)
	r := authTestRouter(jwt)

	tok, _, err := jwt.GenerateAccessToken("user-42")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: tok})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-42", w.Body.String())
}

func TestRequireAuth_BearerFallback(t *testing.T) {
	jwt := helpers.NewJWTManager("a-secret", "r-secret", time.Minute, time.Hour)
	r := authTestRouter(jwt)

	tok, _, err := jwt.GenerateAccessToken("user-42")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-42", w.Body.String())
}

func TestRequireAuth_MissingTokenIs401(t *testing.T) {
	jwt := helpers.NewJWTManager("a-secret", "r-secret", time.Minute, time.Hour)
	r := authTestRouter(jwt)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_RefreshTokenDoesNotGrantAccess(t *testing.T) {
	jwt := helpers.NewJWTManager("a-secret", "r-secret", time.Minute, time.Hour)
	r := authTestRouter(jwt)

	refresh, _, err := jwt.GenerateRefreshToken("user-42")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: refresh})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuth_InvalidTokenIsSilent(t *testing.T) {
	jwt := helpers.NewJWTManager("a-secret", "r-secret", time.Minute, time.Hour)
	r := authTestRouter(jwt)

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: "garbage"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}
