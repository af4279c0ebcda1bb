package middleware

import (
	"context"
	"net/http"
	"strings"

	"flowerdecor/models"

	"github.com/gin-gonic/gin"
)

// AdminAuthenticator resolves a bearer token to an admin account.
type AdminAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*models.Admin, error)
}

// JWTAuthAdminMiddleware guards dashboard routes. A missing bearer token yields
// 401 "No token"; any token that does not resolve to an admin yields 401 "Invalid token".
func JWTAuthAdminMiddleware(auth AdminAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if !strings.HasPrefix(authHeader, "Bearer ") || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token"})
			return
		}

		admin, err := auth.Authenticate(c.Request.Context(), tokenString)
		if err != nil || admin == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("adminID", admin.ID.Hex())
		c.Set("adminUsername", admin.Username)
		c.Next()
	}
}
