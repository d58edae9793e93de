package middleware

import (
	"errors"
	"net/http"

	"go-contact-notifier/config"
	"go-contact-notifier/internal/delivery/http/response"
	"go-contact-notifier/pkg/apperror"
	"go-contact-notifier/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			reqID, _ := c.Get("RequestID")

			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				// Log the wrapped cause server-side. The client sees the raw
				// detail only in development mode, never on the public internet.
				details := ""
				if appErr.Err != nil {
					logger.Log.Error("request failed", "status", appErr.Code, "error", appErr.Err.Error(), "request_id", reqID)
					if cfg.IsDevelopment() {
						details = appErr.Err.Error()
					}
				}
				response.Error(c, appErr.Code, appErr.Message, details)
			} else {
				logger.Log.Error("unexpected error", "error", err.Error(), "request_id", reqID)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", "")
			}
		}
	}
}
