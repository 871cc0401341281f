package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// processJSONReq binds and validates a JSON request body.
func processJSONReq[T interface{ validate() error }](c *gin.Context) (T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processIDParam parses the :id URI param.
func (h *handler) processIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

func (h *handler) processListTasksReq(c *gin.Context) (listTasksReq, error) {
	var req listTasksReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processElapsedReq(c *gin.Context) (elapsedReq, error) {
	id, err := h.processIDParam(c)
	if err != nil {
		return elapsedReq{}, err
	}
	req, err := processJSONReq[elapsedReq](c)
	req.ID = id
	return req, err
}
