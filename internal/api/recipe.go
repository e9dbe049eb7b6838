package api

import (
	"net/http"
	"strconv"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/brewfinder/backend/internal/filter"
	"github.com/pageza/brewfinder/backend/internal/logger"
	"github.com/pageza/brewfinder/backend/internal/query"
	"github.com/pageza/brewfinder/backend/internal/service"
)

// ViewCountHeader carries the updated view count on recipe detail responses
const ViewCountHeader = "X-View-Count"

type RecipeHandler struct {
	recipes      service.IRecipeService
	strictRanges bool
	logger       *zap.Logger
}

func NewRecipeHandler(recipes service.IRecipeService, strictRanges bool, log *zap.Logger) *RecipeHandler {
	return &RecipeHandler{
		recipes:      recipes,
		strictRanges: strictRanges,
		logger:       logger.OrNop(log),
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
	}
}

// ListRecipes searches published recipes
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	f, err := filter.FromQuery(c.Request.URL.Query(), filter.Options{
		StrictRanges: h.strictRanges,
		Logger:       h.logger.With(zap.String("request_id", requestid.Get(c))),
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	res, err := h.recipes.Search(c.Request.Context(), query.Build(f))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toRecipeList(res))
}

// GetRecipe returns one published recipe and counts the view
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, h.logger, invalidParameter("id", "id must be a positive integer"))
		return
	}

	recipe, err := h.recipes.GetPublishedRecipe(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	views, err := h.recipes.IncrementViewCount(c.Request.Context(), id)
	if err != nil {
		h.logger.Warn("failed to increment view count",
			zap.String("request_id", requestid.Get(c)),
			zap.Int64("recipe_id", id),
			zap.Error(err),
		)
		views = recipe.ViewCount
	}
	recipe.ViewCount = views

	c.Header(ViewCountHeader, strconv.FormatInt(views, 10))
	c.JSON(http.StatusOK, toRecipeDetail(recipe))
}
