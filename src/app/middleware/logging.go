package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"socialid/src/infra/logger"
)

// maxLoggedBody bounds the request and response bodies copied into the
// access log.
const maxLoggedBody = 2048

// Logging writes one access log entry per request, tagged with the request
// ID. Bodies are included at debug level only.
func Logging(log *slog.Logger) gin.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery
		debug := log.Enabled(c.Request.Context(), slog.LevelDebug)

		var reqBody []byte
		var rec *responseCapture
		if debug {
			if c.Request.Body != nil {
				reqBody, _ = io.ReadAll(c.Request.Body)
				c.Request.Body = io.NopCloser(bytes.NewReader(reqBody))
			}
			rec = &responseCapture{ResponseWriter: c.Writer}
			c.Writer = rec
		}

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if query != "" {
			attrs = append(attrs, "query", query)
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.String())
		}

		reqLog := logger.WithRequestID(log, GetRequestID(c))
		if debug {
			reqLog.Debug("request body",
				"request", truncate(reqBody),
				"response", truncate(rec.body.Bytes()),
			)
		}

		switch {
		case status >= 500:
			reqLog.Error("request completed", attrs...)
		case status >= 400:
			reqLog.Warn("request completed", attrs...)
		default:
			reqLog.Info("request completed", attrs...)
		}
	}
}

func truncate(b []byte) string {
	if len(b) > maxLoggedBody {
		return string(b[:maxLoggedBody]) + "..."
	}
	return string(b)
}

// responseCapture captures response body while delegating to original writer.
type responseCapture struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (r *responseCapture) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *responseCapture) WriteString(s string) (int, error) {
	r.body.WriteString(s)
	return r.ResponseWriter.WriteString(s)
}
