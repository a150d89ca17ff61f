package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"taskflow/internal/model"
	"taskflow/pkg/scope"
)

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Debugf(c.Request.Context(), "processCreateReq: %v", err)
		return req, errWrongBody
	}
	return req, nil
}

func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Debugf(c.Request.Context(), "processUpdateReq: %v", err)
		return req, errWrongBody
	}
	return req, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errWrongQuery
	}
	return req, nil
}

func (h *handler) processSubtaskIndex(c *gin.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return 0, errWrongSubtaskIndex
	}
	return index, nil
}

// processScope returns the caller set by the Auth middleware.
func (h *handler) processScope(c *gin.Context) (model.Scope, bool) {
	return scope.GetScopeFromContext(c.Request.Context())
}
