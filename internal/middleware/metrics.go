package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

type RequestRecorder interface {
	RecordHTTPRequest(method, route, statusCode string)
}

// Metrics labels requests by matched route pattern, not raw path, to keep
// label cardinality bounded.
func Metrics(recorder RequestRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		recorder.RecordHTTPRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()))
	}
}
