package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/LuizHNR/NebuloHub-Mongo/common/logger"
)

const RequestIDHeader = "X-Request-ID"

const maxRequestIDLength = 128

// RequestID propagates the caller's X-Request-ID or mints a UUID, echoes it
// on the response and adds it to the log fields of the request context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" || len(rid) > maxRequestIDLength {
			rid = uuid.NewString()
		}

		c.Header(RequestIDHeader, rid)
		ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{RequestID: logger.Ptr(rid)})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
