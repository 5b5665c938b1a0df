package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resourcely-be/internal/jwt"
)

// AuthMiddleware returns a Gin middleware that verifies the token in the
// Authorization header before the handler runs. The header carries the
// raw token, no "Bearer " prefix. Missing, malformed, tampered and
// expired tokens all terminate the request with 401.
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "No token provided",
			})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "Invalid token",
			})
			c.Abort()
			return
		}

		// Make the verified identity available to handlers
		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}
