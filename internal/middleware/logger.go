package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestLogger logs every request, recovers from handler panics, and
// stamps a request id when the proxy did not supply one.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set("request_id", reqID)
		c.Writer.Header().Set("X-Request-ID", reqID)

		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				logRequest(c, start, reqID, "panic", err.Error())
				log.Printf("panic_stack request_id=%s stack=%s", reqID, debug.Stack())
				c.String(http.StatusInternalServerError, "internal server error")
				c.Abort()
				return
			}

			errMsg := ""
			if len(c.Errors) > 0 {
				errMsg = c.Errors.String()
			}
			logRequest(c, start, reqID, "request", errMsg)
		}()

		c.Next()
	}
}

func logRequest(c *gin.Context, start time.Time, reqID, kind, errMsg string) {
	role := ""
	if sess := CurrentSession(c); sess != nil {
		role = sess.User.Role
	}
	log.Printf(
		"%s status=%d method=%s path=%s client_ip=%s role=%s request_id=%s latency=%s error=%q",
		kind,
		c.Writer.Status(),
		c.Request.Method,
		c.Request.URL.Path,
		c.ClientIP(),
		role,
		reqID,
		time.Since(start),
		errMsg,
	)
}
