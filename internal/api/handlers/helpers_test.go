package handlers_test

import (
	"maturity-tracker-backend/internal/auth"
	"maturity-tracker-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// asUser stands in for the auth middleware
func asUser(role models.UserRole) (uuid.UUID, gin.HandlerFunc) {
	principal := &auth.Principal{
		ID:       uuid.New(),
		Username: "tester",
		Email:    "tester@example.com",
		Role:     role,
	}
	return principal.ID, func(c *gin.Context) {
		auth.SetPrincipal(c, principal)
		c.Next()
	}
}
