package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/brewfinder/backend/internal/service"
)

// Dependencies are the collaborators the HTTP handlers need
type Dependencies struct {
	Recipes   service.IRecipeService
	Equipment service.IEquipmentService
	Tags      service.ITagService
	Ping      Pinger

	// StrictRanges rejects malformed JSON range parameters with a 400.
	StrictRanges bool
	Logger       *zap.Logger
}

// RegisterRoutes registers /health and the /api group. apiMiddleware runs
// only for /api routes.
func RegisterRoutes(router *gin.Engine, deps Dependencies, apiMiddleware ...gin.HandlerFunc) {
	health := NewHealthHandler(deps.Ping, deps.Logger)
	router.GET("/health", health.HealthCheck)

	api := router.Group("/api", apiMiddleware...)
	NewRecipeHandler(deps.Recipes, deps.StrictRanges, deps.Logger).RegisterRoutes(api)
	NewCatalogHandler(deps.Equipment, deps.Tags, deps.Logger).RegisterRoutes(api)
}
