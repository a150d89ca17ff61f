package http

import (
	"github.com/gin-gonic/gin"

	"taskflow/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Every task route requires a bearer token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.Auth())

	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/stats", h.Stats)
	rg.GET("/:id", h.Detail)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.PATCH("/:id/subtasks/:index", h.ToggleSubtask)
}
