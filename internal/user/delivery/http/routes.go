package http

import (
	"github.com/gin-gonic/gin"

	"taskflow/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Register and login are public; everything else requires a bearer token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/register", h.Register)
	rg.POST("/login", mw.LoginRateLimit(), h.Login)

	rg.GET("/me", mw.Auth(), h.Me)
	rg.PUT("/profile", mw.Auth(), h.UpdateProfile)
	rg.PUT("/password", mw.Auth(), h.UpdatePassword)
	rg.GET("/members", mw.Auth(), h.Members)
}
