package http

import (
	"github.com/gin-gonic/gin"

	"taskflow/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Creates a task owned by the caller. Markdown checkboxes in the description become subtasks when none are given.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Task data"
// @Success     201  {object} detailResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Router      /api/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, h.newDetailResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Lists the tasks the caller owns or is assigned to. Admins see every task.
// @Tags        Task
// @Produce     json
// @Security    BearerAuth
// @Param       completed query string false "true/false, 1/0 or Yes/No"
// @Param       priority  query string false "Low, Medium or High"
// @Param       due       query string false "today, week or overdue"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Stats godoc
// @Summary     Dashboard statistics
// @Tags        Task
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} statsResp
// @Router      /api/tasks/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Stats(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newStatsResp(output))
}

// Detail godoc
// @Summary     Get a task
// @Tags        Task
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update a task
// @Description Partial update. Omitted or empty fields keep their current value.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to change"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toInput(c.Param("id")))
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Only the owner or an admin may delete.
// @Tags        Task
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// ToggleSubtask godoc
// @Summary     Toggle a subtask
// @Tags        Task
// @Produce     json
// @Security    BearerAuth
// @Param       id    path string true "Task ID"
// @Param       index path int    true "Subtask position, from 0"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/tasks/{id}/subtasks/{index} [PATCH]
func (h *handler) ToggleSubtask(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	index, err := h.processSubtaskIndex(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ToggleSubtask(ctx, sc, c.Param("id"), index)
	if err != nil {
		h.l.Warnf(ctx, "uc.ToggleSubtask: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output))
}
