package controllers

import (
	"FlowAcademy/internal/diagram"
	"FlowAcademy/internal/models"
	"FlowAcademy/pkg/logger"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultCanvasWidth  = 1200
	defaultCanvasHeight = 480
	maxCanvasDimension  = 4000
)

type WorkflowHandler struct {
	log logger.Log
}

func NewWorkflowHandler(log logger.Log) *WorkflowHandler {
	return &WorkflowHandler{log: log}
}

// Render draws the posted workflow as a PNG. Edges pointing at unknown
// nodes are skipped, not rejected.
func (h *WorkflowHandler) Render(c *gin.Context) {
	var workflow models.Workflow
	if err := c.ShouldBindJSON(&workflow); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	width := dimensionQuery(c, "width", defaultCanvasWidth)
	height := dimensionQuery(c, "height", defaultCanvasHeight)

	png, err := diagram.RenderPNG(workflow, width, height)
	if err != nil {
		h.log.ErrorErr("failed to render workflow diagram", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render workflow"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

func dimensionQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 || v > maxCanvasDimension {
		return fallback
	}
	return v
}
