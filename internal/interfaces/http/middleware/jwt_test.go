package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-at-least-32-chars!!",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 168 * time.Hour,
		Issuer:                 "storefront-test",
	})
}

func protectedRouter(jwtService *auth.JWTService) (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	var seenUserID string

	router := gin.New()
	router.Use(JWTAuth(jwtService, zap.NewNop()))
	router.GET("/protected", func(c *gin.Context) {
		if userID, ok := GetUserID(c); ok {
			seenUserID = userID.String()
		}
		c.Status(http.StatusOK)
	})
	return router, &seenUserID
}

func TestJWTAuth_ValidToken(t *testing.T) {
	jwtService := newTestJWTService()
	accountID := uuid.New()

	pair, err := jwtService.IssuePair(accountID, "thandi@example.com")
	require.NoError(t, err)

	router, seenUserID := protectedRouter(jwtService)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, accountID.String(), *seenUserID)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	router, _ := protectedRouter(newTestJWTService())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	router, _ := protectedRouter(newTestJWTService())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_RefreshTokenRejected(t *testing.T) {
	jwtService := newTestJWTService()

	pair, err := jwtService.IssuePair(uuid.New(), "thandi@example.com")
	require.NoError(t, err)

	router, _ := protectedRouter(jwtService)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.RefreshToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
