package response

import (
	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON response
type Response struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	MessageID *int64 `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
	Details   string `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// Success sends a success response. messageID is included only when non-nil.
func Success(c *gin.Context, code int, message string, messageID *int64) {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string) // Safe type assertion

	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		MessageID: messageID,
		RequestID: idStr,
	})
}

// Error sends an error response. details is omitted when empty; the error
// middleware only populates it in development mode.
func Error(c *gin.Context, code int, message string, details string) {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string)

	c.JSON(code, Response{
		Success:   false,
		Error:     message,
		Details:   details,
		RequestID: idStr,
	})
}
