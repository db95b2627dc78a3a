package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/patriciamaedppuaso/Elective4-ETR/internal/auth"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/utils"
)

const RoleAdmin = "admin"

// Identity resolves the session token, if any, and stores the identity in
// the request context. It never rejects; the Require* guards do that.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := auth.ExtractAccessToken(c.Request)
		if tokenStr == "" {
			c.Next()
			return
		}

		claims, err := auth.ParseJWT(tokenStr)
		if err != nil {
			c.Next()
			return
		}

		ctx := utils.SetUserContext(c.Request.Context(), claims.UserID, claims.Email, claims.Role)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireUser redirects to the login page when no valid session is present.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := utils.GetUserIDFromContext(c.Request.Context()); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin checks the admin role per request, not globally cached.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := utils.GetUserIDFromContext(c.Request.Context()); !ok {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		if utils.GetUserRoleFromContext(c.Request.Context()) != RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "unauthorized access"})
			c.Abort()
			return
		}
		c.Next()
	}
}
