package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var authTestKey = []byte("auth-middleware-test-key")

func newAuthRouter(key []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware(key))
	r.GET("/client", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/account", func(c *gin.Context) {
		id, ok := c.Get("clerk_id")
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"clerk_id": id})
	})
	return r
}

func signToken(t *testing.T, key []byte, clerkID int, expiresIn time.Duration) string {
	t.Helper()
	claims := &Claims{
		ClerkID: clerkID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	require.NoError(t, err)
	return signed
}

func getWithAuth(r *gin.Engine, path, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPublicPathSkipsAuth(t *testing.T) {
	r := newAuthRouter(authTestKey)
	w := getWithAuth(r, "/client", "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestProtectedPathRequiresToken(t *testing.T) {
	r := newAuthRouter(authTestKey)

	w := getWithAuth(r, "/account", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = getWithAuth(r, "/account", "Bearer")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = getWithAuth(r, "/account", "Token abc")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidTokenSetsClerkID(t *testing.T) {
	r := newAuthRouter(authTestKey)
	token := signToken(t, authTestKey, 42, 15*time.Minute)

	w := getWithAuth(r, "/account", "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"clerk_id":42`)
}

func TestTokenSignedWithWrongKeyIsRejected(t *testing.T) {
	r := newAuthRouter(authTestKey)
	token := signToken(t, []byte("some-other-key"), 42, 15*time.Minute)

	w := getWithAuth(r, "/account", "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	r := newAuthRouter(authTestKey)
	// past the parse leeway as well
	token := signToken(t, authTestKey, 42, -10*time.Minute)

	w := getWithAuth(r, "/account", "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
