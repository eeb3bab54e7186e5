package middleware

import (
	"net/http"
	"strings"

	"portfolio-backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AuthCookieName is the HTTP-only cookie the login handler sets.
const AuthCookieName = "auth_token"

// tokenFromRequest pulls the admin token from the auth cookie, falling back to
// a bearer Authorization header for non-browser clients.
func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(AuthCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}

	return ""
}

// AuthMiddleware gates mutating routes. A missing, invalid or expired token
// aborts with 401 before the handler runs, so no side effect is possible.
func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("admin_email", claims.Email)
		c.Next()
	}
}

// OptionalAuthMiddleware never rejects: it only records whether the caller is
// the authenticated admin, so read handlers can decide what to expose.
func OptionalAuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := tokenFromRequest(c); token != "" {
			if claims, err := jwtService.ValidateToken(token); err == nil {
				c.Set("admin_email", claims.Email)
			}
		}
		c.Next()
	}
}

// IsAuthenticated reports whether AuthMiddleware or OptionalAuthMiddleware
// verified an admin token on this request.
func IsAuthenticated(c *gin.Context) bool {
	return c.GetString("admin_email") != ""
}
