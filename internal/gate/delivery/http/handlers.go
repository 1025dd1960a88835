package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"require-checklist/pkg/response"
)

// Evaluate godoc
// @Summary     Evaluate checklist bodies
// @Description Evaluates the task lists of the given bodies (primary body first, null for absent).
// @Tags        Checklist
// @Accept      json
// @Produce     json
// @Param       body body evaluateReq true "Bodies and options"
// @Success     200  {object} verdictResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/checklist/evaluate [POST]
func (h *handler) Evaluate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEvaluateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Evaluate(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Evaluate: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newVerdictResp(output))
}

// Status godoc
// @Summary     Checklist status of an issue
// @Description Returns the cached verdict for an issue or pull request, checking it when nothing is cached.
// @Tags        Checklist
// @Produce     json
// @Param       owner  path string true "Repository owner"
// @Param       repo   path string true "Repository name"
// @Param       number path int    true "Issue or pull request number"
// @Success     200 {object} verdictResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "GitHub unavailable"
// @Router      /api/v1/checklist/repos/{owner}/{repo}/issues/{number} [GET]
func (h *handler) Status(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStatusReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	ref, err := req.toRef()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Status(ctx, ref)
	if err != nil {
		h.l.Errorf(ctx, "uc.Status %s: %v", ref, err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newVerdictResp(output))
}

func (h *handler) respondError(c *gin.Context, err error) {
	status := h.mapError(err)
	if status == http.StatusInternalServerError {
		response.InternalError(c, err)
		return
	}
	response.ErrorWithStatus(c, status, err, nil)
}
