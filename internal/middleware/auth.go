package middleware

import (
	"net/http"
	"strings"

	"talentscout-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func JWTAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		recruiterID, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set("recruiter_id", recruiterID)
		c.Next()
	}
}

// RunToken pulls the applicant's run token out of the X-Run-Token header.
// Handlers that need an active run read it via c.GetString("run_token").
func RunToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Run-Token")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "X-Run-Token header required"})
			return
		}
		c.Set("run_token", token)
		c.Next()
	}
}
