package controllers

import (
	"FlowAcademy/internal/models"
	"net/http"

	"github.com/gin-gonic/gin"
)

type courseCatalog interface {
	Modules() []models.Module
}

type CatalogHandler struct {
	catalog courseCatalog
}

func NewCatalogHandler(catalog courseCatalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) ListModules(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"modules": h.catalog.Modules()})
}
