package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/brewfinder/backend/internal/logger"
	"github.com/pageza/brewfinder/backend/internal/service"
)

// CatalogHandler serves the equipment and tag lists used to build filters
type CatalogHandler struct {
	equipment service.IEquipmentService
	tags      service.ITagService
	logger    *zap.Logger
}

func NewCatalogHandler(equipment service.IEquipmentService, tags service.ITagService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		equipment: equipment,
		tags:      tags,
		logger:    logger.OrNop(log),
	}
}

func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/equipment", h.ListEquipment)
	router.GET("/tags", h.ListTags)
}

func (h *CatalogHandler) ListEquipment(c *gin.Context) {
	groups, err := h.equipment.ListGrouped(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toEquipmentGroups(groups))
}

func (h *CatalogHandler) ListTags(c *gin.Context) {
	tags, err := h.tags.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": toTags(tags)})
}
