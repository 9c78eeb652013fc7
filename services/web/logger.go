package web

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-Id"

// Logger logs every inbound request before it reaches its handler and
// reports the outcome once the handler chain returns.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)

		l := log.WithFields(log.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"request_id": id,
		})
		l.Infof("%v %v", c.Request.Method, c.Request.URL.Path)

		start := time.Now()
		c.Next()

		size := c.Writer.Size()
		if size < 0 {
			size = 0
		}
		l.WithFields(log.Fields{
			"status":  c.Writer.Status(),
			"latency": time.Since(start),
			"size":    humanize.Bytes(uint64(size)),
		}).Info("request completed")
	}
}
