package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"mindlyst/pkg/response"
)

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if _, err := time.Parse(response.DateFormat, req.DueDate); err != nil {
		return req, fmt.Errorf("due_date must be %s formatted", response.DateFormat)
	}
	return req, nil
}

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	if req.Date != "" {
		if _, err := time.Parse(response.DateFormat, req.Date); err != nil {
			return req, fmt.Errorf("date must be %s formatted", response.DateFormat)
		}
	}
	return req, nil
}

// processUpdateReq binds and validates the update request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, fmt.Errorf("id is required")
	}
	if req.DueDate != nil {
		if _, err := time.Parse(response.DateFormat, *req.DueDate); err != nil {
			return req, fmt.Errorf("due_date must be %s formatted", response.DateFormat)
		}
	}
	return req, nil
}
