package http

import (
	"github.com/gin-gonic/gin"

	"timetracker/pkg/response"
)

// ListTasks godoc
// @Summary     List tasks
// @Description Lists every task, or only those created on "day" (today, yesterday, "N days ago", YYYY-MM-DD).
// @Tags        Tasks
// @Produce     json
// @Param       day query string false "Day filter"
// @Success     200 {object} taskListResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     423 {object} response.Resp "Locked"
// @Router      /api/v1/tasks [GET]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListTasksReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.ListTasks(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ListTasks: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, taskListResp{Tasks: newTaskList(out.Tasks)})
}

// CreateTask godoc
// @Summary     Add a task
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createTaskReq true "Task"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     423 {object} response.Resp "Locked"
// @Failure     409 {object} response.Resp "Stored journal unreadable"
// @Router      /api/v1/tasks [POST]
func (h *handler) CreateTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := processJSONReq[createTaskReq](c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.AddTask(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.AddTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newTaskResp(t))
}

// CompleteTask godoc
// @Summary     Complete a task
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     423 {object} response.Resp "Locked"
// @Failure     409 {object} response.Resp "Stored journal unreadable"
// @Router      /api/v1/tasks/{id}/complete [POST]
func (h *handler) CompleteTask(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.CompleteTask(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.CompleteTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newTaskResp(t))
}

// FoldElapsed godoc
// @Summary     Record a timer session
// @Description Adds the seconds of a finished timer session to the task.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path int        true "Task ID"
// @Param       body body elapsedReq true "Elapsed seconds"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Stored journal unreadable"
// @Router      /api/v1/tasks/{id}/elapsed [POST]
func (h *handler) FoldElapsed(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processElapsedReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.FoldElapsedSeconds(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.FoldElapsedSeconds: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newTaskResp(t))
}

// DeleteTask godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Stored journal unreadable"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) DeleteTask(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.DeleteTask(ctx, id); err != nil {
		h.l.Warnf(ctx, "uc.DeleteTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}

// Summary godoc
// @Summary     Task summary
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} summaryResp
// @Failure     423 {object} response.Resp "Locked"
// @Router      /api/v1/tasks/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	sum, err := h.uc.Summary(ctx)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, summaryResp(sum))
}
