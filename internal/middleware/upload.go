package middleware

import (
	"github.com/arkamaulana/eventhub/internal/upload"
	"github.com/gin-gonic/gin"
)

func UploadMiddleware(p *upload.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("uploader", p)
		c.Next()
	}
}

func GetUploader(c *gin.Context) *upload.Pipeline {
	p, exists := c.Get("uploader")
	if !exists {
		return nil
	}
	return p.(*upload.Pipeline)
}
