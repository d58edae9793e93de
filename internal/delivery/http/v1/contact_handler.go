package v1

import (
	"errors"
	"net/http"

	"go-contact-notifier/internal/delivery/http/response"
	"go-contact-notifier/internal/domain"
	"go-contact-notifier/internal/usecase"
	"go-contact-notifier/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	// Public Routes - NO authentication required
	public.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validate a contact form submission and forward it as a Telegram notification. This is a public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// The struct carries no binding tags, so any error here is a body
		// that failed to decode. Field checks live in the usecase.
		c.Error(apperror.BadRequest("Invalid JSON in request body"))
		return
	}

	receipt, err := h.contactUC.SendContactMessage(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingFields):
			c.Error(apperror.BadRequest("Missing required fields: name, email, message"))
		case errors.Is(err, usecase.ErrInvalidEmail):
			c.Error(apperror.BadRequest("Invalid email format"))
		case errors.Is(err, usecase.ErrNotConfigured):
			c.Error(apperror.Internal("Telegram bot not configured. Please contact the site administrator.", err))
		case errors.Is(err, usecase.ErrInvalidChatID):
			c.Error(apperror.Internal("Invalid CHAT_ID format. Must be a number.", err))
		default:
			c.Error(apperror.Internal("Failed to send Telegram notification", err))
		}
		return
	}

	response.Success(c, http.StatusOK, "Telegram notification sent successfully", &receipt.MessageID)
}
