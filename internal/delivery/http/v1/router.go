package v1

import (
	"net/http"

	"go-contact-notifier/config"
	"go-contact-notifier/internal/delivery/http/middleware"
	"go-contact-notifier/internal/delivery/http/response"
	"go-contact-notifier/internal/domain"
	"go-contact-notifier/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	if deps.Config.EnableCORS {
		r.Use(middleware.CORSMiddleware()) // CORS must be first!
	}
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler(deps.Config))

	// Anything but POST on a known route answers 405 with a JSON body.
	// When CORS is enabled, OPTIONS never reaches this gate.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.Error(apperror.MethodNotAllowed("Method not allowed. Use POST."))
	})

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Public routes
	NewContactHandler(v1, deps.ContactUC) // Contact form (no auth required)

	return r
}
