package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	BearerPrefix = "Bearer "
	BearerKey    = "bearer"
)

// RequireBearer отклоняет запрос без заголовка "Authorization: Bearer ...".
// Сам токен проверяет сервис.
func RequireBearer() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if len(authHeader) <= len(BearerPrefix) || !strings.EqualFold(authHeader[:len(BearerPrefix)], BearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":      "error",
				"description": "authorization header required",
			})
			return
		}

		c.Set(BearerKey, authHeader)
		c.Next()
	}
}

// GetBearer возвращает исходное значение заголовка Authorization
func GetBearer(c *gin.Context) (string, bool) {
	v, exists := c.Get(BearerKey)
	if !exists {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
