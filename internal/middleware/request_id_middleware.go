package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader - имя заголовка с идентификатором запроса
const RequestIDHeader = "X-Request-ID"

// RequestID проставляет каждому запросу идентификатор для корреляции логов.
// Если клиент прислал свой X-Request-ID, он сохраняется.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)
		c.Next()
	}
}
