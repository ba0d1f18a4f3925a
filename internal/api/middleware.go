package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware - проверка админ-доступа по ключу из окружения
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		expected := os.Getenv("ADMIN_API_KEY")
		if expected == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "ADMIN_API_KEY not configured"})
			c.Abort()
			return
		}

		if c.GetHeader("X-Admin-Key") != expected {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Next()
	}
}
