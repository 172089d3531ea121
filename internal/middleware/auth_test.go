package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homevista/realtor-api/internal/config"
	"github.com/homevista/realtor-api/internal/middleware"
	"github.com/homevista/realtor-api/internal/models"
	"github.com/homevista/realtor-api/internal/token"
)

func protectedRouter(cfg *config.Config, roles ...models.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	group := r.Group("/", middleware.AuthMiddleware(cfg))
	if len(roles) > 0 {
		group.Use(middleware.RequireRole(roles...))
	}
	group.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.MustGet(middleware.ContextUserID),
			"name":    c.MustGet(middleware.ContextUserName),
		})
	})
	return r
}

func get(r *gin.Engine, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWTSecret: "mw-secret"}
	r := protectedRouter(cfg)

	assert.Equal(t, http.StatusUnauthorized, get(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "not-a-token").Code)

	signer := token.NewSigner("mw-secret", time.Hour)
	signed, err := signer.Sign(&models.User{ID: 12, Name: "Jane", Role: models.RoleRealtor})
	require.NoError(t, err)

	w := get(r, signed)
	assert.Equal(t, http.StatusOK, w.Code)

	// Token signed with a different secret is rejected.
	other, err := token.NewSigner("other-secret", time.Hour).
		Sign(&models.User{ID: 12, Name: "Jane"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(r, other).Code)

	// Expired token is rejected.
	expired, err := token.NewSigner("mw-secret", -time.Hour).
		Sign(&models.User{ID: 12, Name: "Jane"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(r, expired).Code)
}

func TestRequireRole(t *testing.T) {
	cfg := &config.Config{JWTSecret: "mw-secret"}
	r := protectedRouter(cfg, models.RoleAdmin)

	signer := token.NewSigner("mw-secret", time.Hour)

	buyerTok, err := signer.Sign(&models.User{ID: 1, Name: "Bob", Role: models.RoleBuyer})
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, get(r, buyerTok).Code)

	adminTok, err := signer.Sign(&models.User{ID: 2, Name: "Ada", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, get(r, adminTok).Code)
}
