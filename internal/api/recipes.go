package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mpaterson/souschef/internal/errs"
	"github.com/mpaterson/souschef/internal/model"
	"github.com/mpaterson/souschef/internal/service"
)

const noMatchesMessage = "No recipes found matching your criteria. " +
	"Try adjusting your filters or adding more ingredients to your pantry."

// RecipeHandler serves the recipe search, suggestion and detail endpoints.
type RecipeHandler struct {
	assistant *service.AssistantService
	ai        service.Analyzer
	logger    *zap.Logger
}

func NewRecipeHandler(assistant *service.AssistantService, ai service.Analyzer, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{assistant: assistant, ai: ai, logger: logger}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/filters", h.ListFilters)
	recipes := router.Group("/recipes")
	{
		recipes.POST("/search", h.Search)
		recipes.GET("/suggestions", h.Suggestions)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("/analyze", h.Analyze)
	}
}

// ListFilters returns the static dietary filter set the UI renders as chips.
func (h *RecipeHandler) ListFilters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"filters": model.DietaryFilters})
}

// Search runs the prompt-and-pantry recipe search. An empty result set is a
// 200 with an informational message, never an error; only a transport
// failure toward the search API produces a 502.
func (h *RecipeHandler) Search(c *gin.Context) {
	var req SearchRecipesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outcome, err := h.assistant.SearchRecipes(c.Request.Context(), req.Prompt, req.Filters)
	if err != nil {
		h.logger.Error("recipe search failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to search recipes. Please try again.",
		})
		return
	}

	resp := gin.H{
		"recipes":  outcome.Recipes,
		"analysis": outcome.Analysis,
	}
	if outcome.NoMatches {
		resp["message"] = noMatchesMessage
	}
	c.JSON(http.StatusOK, resp)
}

// Suggestions returns recipes built around the current pantry alone.
func (h *RecipeHandler) Suggestions(c *gin.Context) {
	recipes, err := h.assistant.SuggestFromPantry(c.Request.Context())
	if err != nil {
		h.logger.Error("pantry suggestions failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to search recipes. Please try again.",
		})
		return
	}

	resp := gin.H{"recipes": recipes}
	if len(recipes) == 0 {
		resp["message"] = noMatchesMessage
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	detail, err := h.assistant.RecipeDetail(c.Request.Context(), id)
	if errors.Is(err, errs.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}
	if err != nil {
		h.logger.Error("recipe detail failed", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to load recipe. Please try again.",
		})
		return
	}

	// Optional AI rewrite of the steps; the plain detail is the fallback.
	if skill := c.Query("skill_level"); skill != "" && h.ai.Enabled() {
		enhanced, err := h.ai.EnhanceInstructions(c.Request.Context(), detail, skill)
		if err != nil {
			h.logger.Warn("instruction enhancement failed", zap.Int("id", id), zap.Error(err))
		} else {
			detail.Instructions = enhanced
		}
	}

	c.JSON(http.StatusOK, detail)
}

// Analyze returns the AI advisory analysis of a recipe request. 503 when the
// generative collaborator has no API key configured.
func (h *RecipeHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	analysis, err := h.ai.AnalyzeRecipeRequest(
		c.Request.Context(),
		req.Prompt,
		h.assistant.Store().IngredientNames(),
		req.Filters,
	)
	if errors.Is(err, errs.ErrUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI analysis is not configured"})
		return
	}
	if err != nil {
		h.logger.Error("ai analysis failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to analyze request. Please try again.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"analysis": analysis})
}
