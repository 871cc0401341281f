package http

import (
	"github.com/gin-gonic/gin"

	"timetracker/pkg/response"
)

// Status godoc
// @Summary     Session status
// @Description Reports whether a passphrase is set up and the journal is unlocked.
// @Tags        Session
// @Produce     json
// @Success     200 {object} statusResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/session [GET]
func (h *handler) Status(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Status(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Status: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newStatusResp(out))
}

// Setup godoc
// @Summary     Set up the passphrase
// @Description Sets the first passphrase (at least 8 characters) and opens the journal.
// @Tags        Session
// @Accept      json
// @Produce     json
// @Param       body body setupReq true "Passphrase and confirmation"
// @Success     200 {object} unlockResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Already set up"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/session/setup [POST]
func (h *handler) Setup(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := processJSONReq[setupReq](c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Setup(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Setup: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newUnlockResp(out))
}

// Unlock godoc
// @Summary     Unlock the journal
// @Description Loads the stored journal with the passphrase. "load" is "failed" when the stored data could not be read with it; writes then return 409 until reset or a replace import.
// @Tags        Session
// @Accept      json
// @Produce     json
// @Param       body body unlockReq true "Passphrase"
// @Success     200 {object} unlockResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/session/unlock [POST]
func (h *handler) Unlock(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := processJSONReq[unlockReq](c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Unlock(ctx, req.Passphrase)
	if err != nil {
		h.l.Warnf(ctx, "uc.Unlock: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newUnlockResp(out))
}

// Reset godoc
// @Summary     Reset the journal
// @Description Discards the stored journal and the passphrase set-up. Use it when the passphrase is lost.
// @Tags        Session
// @Produce     json
// @Success     200 {object} response.Resp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/session/reset [POST]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Reset(ctx); err != nil {
		h.l.Errorf(ctx, "uc.Reset: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}

// Lock godoc
// @Summary     Lock the journal
// @Tags        Session
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/session/lock [POST]
func (h *handler) Lock(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Lock(ctx); err != nil {
		h.l.Errorf(ctx, "uc.Lock: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}
