package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"timetracker/pkg/response"
)

// Export godoc
// @Summary     Export the journal
// @Description Returns the whole journal sealed with the active passphrase.
// @Tags        Sync
// @Produce     json
// @Success     200 {object} exportResp
// @Failure     423 {object} response.Resp "Locked"
// @Failure     409 {object} response.Resp "Stored journal unreadable"
// @Router      /api/v1/sync/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	blob, err := h.uc.ExportBlob(ctx)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, exportResp{Blob: blob})
}

// Import godoc
// @Summary     Import an exported journal
// @Description Opens the blob (with "passphrase", or the active one) and merges or replaces. A non-empty journal needs "mode".
// @Tags        Sync
// @Accept      json
// @Produce     json
// @Param       body body importReq true "Blob, passphrase and mode"
// @Success     200 {object} importResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Wrong passphrase"
// @Failure     409 {object} response.Resp "Mode required or stored journal unreadable"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/sync/import [POST]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := processJSONReq[importReq](c)
	if err != nil {
		response.Error(c, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	out, err := h.uc.ImportBlob(ctx, input)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, importResp(out))
}

// Backup godoc
// @Summary     Download a backup
// @Description Returns the backup file {version, timestamp, data} as an attachment.
// @Tags        Sync
// @Produce     json
// @Success     200 {object} model.Backup
// @Failure     423 {object} response.Resp "Locked"
// @Failure     409 {object} response.Resp "Stored journal unreadable"
// @Router      /api/v1/sync/backup [GET]
func (h *handler) Backup(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.CreateBackup(ctx)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.FileName))
	c.Data(http.StatusOK, "application/json; charset=utf-8", out.Content)
}

// Restore godoc
// @Summary     Restore a backup
// @Tags        Sync
// @Accept      json
// @Produce     json
// @Param       body body restoreReq true "Backup file contents, passphrase and mode"
// @Success     200 {object} importResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Wrong passphrase"
// @Failure     409 {object} response.Resp "Mode required or stored journal unreadable"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/sync/restore [POST]
func (h *handler) Restore(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := processJSONReq[restoreReq](c)
	if err != nil {
		response.Error(c, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	out, err := h.uc.RestoreBackup(ctx, input)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, importResp(out))
}
