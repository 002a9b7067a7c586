package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/gradequiz-api/internal/domain/entity"
	"github.com/yourusername/gradequiz-api/pkg/auth"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService, err := auth.NewJWTService("test-secret-key", 1)
	require.NoError(t, err)

	authMiddleware := NewAuthMiddleware(jwtService)

	router := gin.New()
	router.GET("/protected", authMiddleware.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.MustGet("user_id").(uint)})
	})
	return router, jwtService
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	// Arrange
	router, jwtService := setupAuthRouter(t)
	token, err := jwtService.GenerateToken(&entity.User{ID: 42, Name: "Иван"})
	require.NoError(t, err)

	// Act
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	// Arrange
	router, _ := setupAuthRouter(t)

	// Act
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token_missing")
}

func TestAuthMiddleware_BadFormat(t *testing.T) {
	// Arrange
	router, _ := setupAuthRouter(t)

	// Act: заголовок без префикса Bearer
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc123")
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token_format")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	// Arrange
	router, _ := setupAuthRouter(t)

	// Act
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token_invalid")
}
