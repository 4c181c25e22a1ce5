package http

import (
	"github.com/gin-gonic/gin"
)

// processCreatePlanReq binds and validates the plan creation request body.
func (h *handler) processCreatePlanReq(c *gin.Context) (createPlanReq, error) {
	var req createPlanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListReq binds and validates the list tasks query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
