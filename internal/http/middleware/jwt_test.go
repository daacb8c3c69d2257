package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", JWTMiddleware(secret), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT(42, "secret")
	require.NoError(t, err)

	userID, err := parseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, 42, userID)

	_, err = parseToken(token, "other-secret")
	assert.Error(t, err)
}

func TestJWTMiddlewareRejectsBadHeaders(t *testing.T) {
	r := protectedRouter("secret")

	for _, header := range []string{"", "Token abc", "Bearer not-a-token"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestJWTMiddlewareRequiresConfiguredStore(t *testing.T) {
	SetStore(nil)
	r := protectedRouter("secret")

	token, err := GenerateJWT(1, "secret")
	require.NoError(t, err)

	// A valid token with no store wired is a server bug, not an auth
	// failure; it must surface as 500 instead of touching a nil store.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
