package middleware

import (
	"net/http"
	"strings"

	"rentadmin/internal/pkg/response"

	jwtsvc "rentadmin/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// Auth validates the Bearer token and stores user_id/role in the context.
// A ?token= query parameter is accepted as a fallback for websocket
// clients, which cannot set request headers.
func Auth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		h := c.GetHeader("Authorization")
		switch {
		case strings.HasPrefix(h, "Bearer "):
			tokenStr = strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		case h == "":
			tokenStr = c.Query("token")
		default:
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
			c.Abort()
			return
		}

		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing token")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}
