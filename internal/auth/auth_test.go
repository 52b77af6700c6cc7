package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"maturity-tracker-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser(role models.UserRole) *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Username:  "testuser",
		Email:     "test@example.com",
		Role:      role,
	}
}

func TestNewTokenService(t *testing.T) {
	_, err := NewTokenService("", time.Hour)
	assert.Error(t, err)

	service, err := NewTokenService("secret", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultTokenTTL, service.ttl)
}

func TestJWTOperations(t *testing.T) {
	service, err := NewTokenService("test-signing-key-for-jwt-operations", time.Hour)
	require.NoError(t, err)

	user := testUser(models.UserRoleTeamOwner)

	token, err := service.GenerateToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, models.UserRoleTeamOwner, claims.Role)
	assert.Equal(t, user.ID.String(), claims.Subject)

	principal := claims.Principal()
	assert.Equal(t, user.ID, principal.ID)
	assert.False(t, principal.IsAdmin())

	// Test invalid token
	_, err = service.ValidateToken("invalid-token")
	assert.Error(t, err)

	// Token signed with another secret
	other, err := NewTokenService("another-secret", time.Hour)
	require.NoError(t, err)
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTExpiration(t *testing.T) {
	service, err := NewTokenService("test-secret", time.Hour)
	require.NoError(t, err)

	past := time.Now().Add(-2 * time.Hour)
	claims := &Claims{
		UserID:   uuid.New(),
		Username: "expired",
		Role:     models.UserRoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(past),
			Issuer:    tokenIssuer,
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsUnknownRole(t *testing.T) {
	service, err := NewTokenService("test-secret", time.Hour)
	require.NoError(t, err)

	token, err := service.GenerateToken(testUser(models.UserRole("superuser")))
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func newAuthRouter(t *testing.T, roles ...models.UserRole) (*gin.Engine, *TokenService) {
	gin.SetMode(gin.TestMode)
	service, err := NewTokenService("middleware-secret", time.Hour)
	require.NoError(t, err)

	router := gin.New()
	chain := []gin.HandlerFunc{NewAuthMiddleware(service).RequireAuth()}
	if len(roles) > 0 {
		chain = append(chain, RequireRole(roles...))
	}
	chain = append(chain, func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		require.True(t, ok)
		id, ok := GetUserID(c)
		require.True(t, ok)
		assert.Equal(t, principal.ID, id)
		assert.Equal(t, principal.Username, c.GetString("username"))
		c.JSON(http.StatusOK, gin.H{"username": principal.Username})
	})
	router.GET("/protected", chain...)
	return router, service
}

func TestRequireAuth(t *testing.T) {
	router, service := newAuthRouter(t)

	t.Run("MissingHeader", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("MalformedHeader", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("InvalidToken", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("ValidToken", func(t *testing.T) {
		token, err := service.GenerateToken(testUser(models.UserRoleTeamMember))
		require.NoError(t, err)

		recorder := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "testuser")
	})
}

func TestRequireRole(t *testing.T) {
	router, service := newAuthRouter(t, models.UserRoleAdmin, models.UserRoleTeamOwner)

	tests := []struct {
		name     string
		role     models.UserRole
		expected int
	}{
		{"Admin", models.UserRoleAdmin, http.StatusOK},
		{"TeamOwner", models.UserRoleTeamOwner, http.StatusOK},
		{"TeamMember", models.UserRoleTeamMember, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.GenerateToken(testUser(tt.role))
			require.NoError(t, err)

			recorder := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			router.ServeHTTP(recorder, req)
			assert.Equal(t, tt.expected, recorder.Code)
		})
	}
}

func TestRequireRoleWithoutPrincipal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin", RequireRole(models.UserRoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin", nil)
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
