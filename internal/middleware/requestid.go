package middleware

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is echoed on every response. An incoming value is reused.
const RequestIDHeader = "X-Request-ID"

// RequestID assigns a UUID request id to every request that lacks one
func RequestID() gin.HandlerFunc {
	return requestid.New(
		requestid.WithCustomHeaderStrKey(RequestIDHeader),
		requestid.WithGenerator(uuid.NewString),
	)
}
