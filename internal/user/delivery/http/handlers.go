package http

import (
	"github.com/gin-gonic/gin"

	"taskflow/pkg/response"
)

// Register godoc
// @Summary     Register a new user
// @Description Creates a member account. Emails are unique, case-insensitively.
// @Tags        User
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Account data"
// @Success     201  {object} detailResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Conflict - email already registered"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/user/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Register: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, h.newDetailResp(output))
}

// Login godoc
// @Summary     Log in
// @Description Exchanges credentials for a bearer token. Rate limited per client IP.
// @Tags        User
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} loginResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Failure     429 {object} map[string]string "Too many attempts"
// @Router      /api/user/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newLoginResp(output))
}

// Me godoc
// @Summary     Current user
// @Tags        User
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} detailResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/user/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Detail(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// UpdateProfile godoc
// @Summary     Update profile
// @Description Changes name and/or email. Omitted fields are kept.
// @Tags        User
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body updateProfileReq true "Profile fields"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - email already registered"
// @Router      /api/user/profile [PUT]
func (h *handler) UpdateProfile(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdateProfileReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.UpdateProfile(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.UpdateProfile: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// UpdatePassword godoc
// @Summary     Change password
// @Tags        User
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body updatePasswordReq true "Current and new password"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/user/password [PUT]
func (h *handler) UpdatePassword(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdatePasswordReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.UpdatePassword(ctx, sc, req.toInput()); err != nil {
		h.l.Warnf(ctx, "uc.UpdatePassword: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Members godoc
// @Summary     List team members
// @Description Lists the accounts tasks can be assigned to.
// @Tags        User
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} membersResp
// @Router      /api/user/members [GET]
func (h *handler) Members(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.ListMembers(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListMembers: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newMembersResp(output))
}
