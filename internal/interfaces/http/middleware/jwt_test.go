package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/invoicegen/backend/internal/infrastructure/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockTokenVerifier is a mock implementation of auth.TokenVerifier
type MockTokenVerifier struct {
	mock.Mock
}

func (m *MockTokenVerifier) ValidateToken(tokenString string) (*auth.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Claims), args.Error(1)
}

func protectedRouter(verifier auth.TokenVerifier) *gin.Engine {
	router := gin.New()
	router.Use(JWTAuth(verifier))
	router.GET("/protected", func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID.String()})
	})
	return router
}

func TestJWTAuth(t *testing.T) {
	userID := uuid.New()
	validClaims := &auth.Claims{UserID: userID.String(), Email: "alice@example.com"}

	t.Run("allows request with valid token", func(t *testing.T) {
		verifier := new(MockTokenVerifier)
		verifier.On("ValidateToken", "good-token").Return(validClaims, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+"good-token")
		protectedRouter(verifier).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), userID.String())
	})

	t.Run("rejects missing header", func(t *testing.T) {
		verifier := new(MockTokenVerifier)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		protectedRouter(verifier).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
		verifier.AssertNotCalled(t, "ValidateToken")
	})

	t.Run("rejects non-bearer header", func(t *testing.T) {
		verifier := new(MockTokenVerifier)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set(AuthHeaderKey, "Basic dXNlcjpwYXNz")
		protectedRouter(verifier).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects invalid token", func(t *testing.T) {
		verifier := new(MockTokenVerifier)
		verifier.On("ValidateToken", "bad-token").Return(nil, auth.ErrInvalidToken)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+"bad-token")
		protectedRouter(verifier).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("reports expired token with dedicated code", func(t *testing.T) {
		verifier := new(MockTokenVerifier)
		verifier.On("ValidateToken", "stale-token").Return(nil, auth.ErrExpiredToken)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+"stale-token")
		protectedRouter(verifier).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_EXPIRED")
	})
}

func TestGetUserID(t *testing.T) {
	t.Run("absent when unauthenticated", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		_, ok := GetUserID(c)
		assert.False(t, ok)
	})

	t.Run("rejects malformed user id", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(JWTUserIDKey, "not-a-uuid")
		_, ok := GetUserID(c)
		assert.False(t, ok)
	})
}
