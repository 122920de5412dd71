package response

import (
	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint answers with: candidate
// submissions, matching pages, request mutations, and statistics all share
// it. Data carries the payload on success, Error the detail on failure, and
// RequestID echoes the correlation id the middleware assigned.
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     interface{} `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// Success writes the envelope with the given payload.
func Success(c *gin.Context, code int, message string, data interface{}) {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string)

	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: idStr,
	})
}

// Error writes the envelope for a failed request. err is client-safe
// detail; internal causes never reach here.
func Error(c *gin.Context, code int, message string, err interface{}) {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string)

	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     err,
		RequestID: idStr,
	})
}
