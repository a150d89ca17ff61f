package http

import (
	"github.com/gin-gonic/gin"

	"taskflow/internal/model"
	"taskflow/pkg/scope"
)

func (h *handler) processRegisterReq(c *gin.Context) (registerReq, error) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Debugf(c.Request.Context(), "processRegisterReq: %v", err)
		return req, errWrongBody
	}
	return req, nil
}

func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	return req, nil
}

func (h *handler) processUpdateProfileReq(c *gin.Context) (updateProfileReq, error) {
	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	return req, nil
}

func (h *handler) processUpdatePasswordReq(c *gin.Context) (updatePasswordReq, error) {
	var req updatePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	return req, nil
}

// processScope returns the caller set by the Auth middleware.
func (h *handler) processScope(c *gin.Context) (model.Scope, bool) {
	return scope.GetScopeFromContext(c.Request.Context())
}
