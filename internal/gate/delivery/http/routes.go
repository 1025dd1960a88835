package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/evaluate", h.Evaluate)
	rg.GET("/repos/:owner/:repo/issues/:number", h.Status)
}
