package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		log.Printf("[%s] ip=%s path=%s query=%s code=%d bytes=%d latency=%v",
			c.Request.Method,
			c.ClientIP(),
			path,
			query,
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start),
		)
	}
}
