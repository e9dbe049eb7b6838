package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pageza/brewfinder/backend/internal/types"
)

// AccessLog logs one line per request. 5xx responses log at error level
// and 4xx at warn.
func AccessLog(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := zapcore.InfoLevel
		switch {
		case status >= http.StatusInternalServerError:
			level = zapcore.ErrorLevel
		case status >= http.StatusBadRequest:
			level = zapcore.WarnLevel
		}

		if ce := log.Check(level, "request"); ce != nil {
			ce.Write(
				zap.Int("status", status),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.String("query", c.Request.URL.RawQuery),
				zap.String("ip", c.ClientIP()),
				zap.Duration("latency", time.Since(start)),
				zap.Int("size", c.Writer.Size()),
				zap.String("request_id", requestid.Get(c)),
			)
		}
	}
}

// Recovery turns a panic into a generic 500 error body
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				reqID := requestid.Get(c)
				log.Error("panic recovered",
					zap.Any("error", err),
					zap.String("request_id", reqID),
					zap.String("path", c.Request.URL.Path),
					zap.ByteString("stack", debug.Stack()),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, types.NewErrorResponse(
					types.CodeInternal,
					"An unexpected error occurred",
					reqID,
				))
			}
		}()
		c.Next()
	}
}
