package http

import (
	"github.com/gin-gonic/gin"

	"timetracker/pkg/response"
)

// DraftReview godoc
// @Summary     Draft today's review
// @Description Pre-fills accomplishments and incomplete text from today's tasks.
// @Tags        Reviews
// @Produce     json
// @Success     200 {object} draftResp
// @Failure     423 {object} response.Resp "Locked"
// @Router      /api/v1/reviews/draft [GET]
func (h *handler) DraftReview(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.DraftReview(ctx)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, draftResp(out))
}

// RecordReview godoc
// @Summary     Record today's review
// @Description Appends the review and returns up to five suggestions for tomorrow.
// @Tags        Reviews
// @Accept      json
// @Produce     json
// @Param       body body recordReviewReq true "Review text"
// @Success     200 {object} recordReviewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     423 {object} response.Resp "Locked"
// @Failure     409 {object} response.Resp "Stored journal unreadable"
// @Router      /api/v1/reviews [POST]
func (h *handler) RecordReview(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := processJSONReq[recordReviewReq](c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.RecordReview(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.RecordReview: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newRecordReviewResp(out))
}

// AcceptSuggestions godoc
// @Summary     Accept suggestions
// @Description Creates a task for each selected suggestion.
// @Tags        Reviews
// @Accept      json
// @Produce     json
// @Param       body body acceptSuggestionsReq true "Selected suggestions"
// @Success     200 {object} taskListResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     423 {object} response.Resp "Locked"
// @Failure     409 {object} response.Resp "Stored journal unreadable"
// @Router      /api/v1/suggestions/accept [POST]
func (h *handler) AcceptSuggestions(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := processJSONReq[acceptSuggestionsReq](c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.AcceptSuggestions(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.AcceptSuggestions: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, taskListResp{Tasks: newTaskList(out.Tasks)})
}
