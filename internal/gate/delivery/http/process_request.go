package http

import (
	"github.com/gin-gonic/gin"
)

// processEvaluateReq binds the evaluate request body.
func (h *handler) processEvaluateReq(c *gin.Context) (evaluateReq, error) {
	var req evaluateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processStatusReq binds the issue path parameters.
func (h *handler) processStatusReq(c *gin.Context) (statusReq, error) {
	var req statusReq
	if err := c.ShouldBindUri(&req); err != nil {
		return req, err
	}
	return req, nil
}
