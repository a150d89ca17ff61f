package http

import (
	"github.com/gin-gonic/gin"

	"taskflow/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Both endpoints require a bearer token and are rate limited per user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.Auth(), mw.AIRateLimit())

	rg.POST("/parse-task", h.ParseTask)
	rg.POST("/generate-description", h.GenerateDescription)
}
