package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow/internal/assist"
)

// ParseTask godoc
// @Summary     Parse a task from free text
// @Description Asks the language model for title, description, priority and due date. Invalid suggestions are dropped and reported in warning.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body parseTaskReq true "Free text, optional reference date and draft"
// @Success     200 {object} parseTaskResp
// @Failure     400 {object} errorResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} errorResp
// @Failure     500 {object} errorResp
// @Router      /api/ai/parse-task [POST]
func (h *handler) ParseTask(c *gin.Context) {
	ctx := c.Request.Context()

	var req parseTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Debugf(ctx, "ParseTask bind: %v", err)
		c.JSON(http.StatusBadRequest, errorResp{Error: msgInputRequired})
		return
	}

	output, err := h.uc.ParseTask(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ParseTask: %v", err)
		status, msg := h.mapParseError(err)
		c.JSON(status, errorResp{Error: msg})
		return
	}

	c.JSON(http.StatusOK, h.newParseTaskResp(output))
}

// GenerateDescription godoc
// @Summary     Draft a description from a title
// @Tags        AI
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body generateDescriptionReq true "Task title"
// @Success     200 {object} generateDescriptionResp
// @Failure     400 {object} descriptionErrorResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} errorResp
// @Failure     500 {object} descriptionErrorResp
// @Router      /api/ai/generate-description [POST]
func (h *handler) GenerateDescription(c *gin.Context) {
	ctx := c.Request.Context()

	var req generateDescriptionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Debugf(ctx, "GenerateDescription bind: %v", err)
		c.JSON(http.StatusBadRequest, descriptionErrorResp{Error: msgTitleRequired})
		return
	}

	output, err := h.uc.GenerateDescription(ctx, req.toInput())
	if errors.Is(err, assist.ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, descriptionErrorResp{Error: msgTitleRequired})
		return
	}
	if err != nil {
		h.l.Warnf(ctx, "uc.GenerateDescription: %v", err)
		c.JSON(http.StatusInternalServerError, descriptionErrorResp{Message: msgDescriptionFailed})
		return
	}

	c.JSON(http.StatusOK, h.newGenerateDescriptionResp(output))
}
