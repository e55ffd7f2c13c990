package middleware

import (
	"github.com/gin-gonic/gin"
)

func PublicBaseURLMiddleware(base string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("public_base_url", base)
		c.Next()
	}
}

func GetPublicBaseURL(c *gin.Context) string {
	base, exists := c.Get("public_base_url")
	if !exists {
		return ""
	}
	return base.(string)
}
