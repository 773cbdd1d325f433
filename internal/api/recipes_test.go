package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpaterson/souschef/internal/errs"
	"github.com/mpaterson/souschef/internal/model"
	"github.com/mpaterson/souschef/internal/query"
	"github.com/mpaterson/souschef/internal/service"
)

func TestListFilters(t *testing.T) {
	env := setupTestRouter(t)

	w := env.do(t, "GET", "/api/v1/filters", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	filters, ok := resp["filters"].([]interface{})
	require.True(t, ok)
	require.Len(t, filters, 4)
	first := filters[0].(map[string]interface{})
	assert.Equal(t, "vegetarian", first["value"])
}

func TestSearchReturnsRecipes(t *testing.T) {
	env := setupTestRouter(t)
	env.store.AddItem(model.NewPantryItem("0123456789012", model.ProductInfo{Name: "chicken"}))
	env.recipes.searchResp = query.SearchResponse{
		Results: []query.SearchResult{
			{
				ID:             101,
				Title:          "Chicken Stir Fry",
				ReadyInMinutes: 25,
				Servings:       2,
				UsedIngredients: []query.IngredientRef{
					{Name: "chicken", Original: "200g chicken breast"},
				},
			},
		},
	}

	w := env.do(t, "POST", "/api/v1/recipes/search", map[string]interface{}{
		"prompt":  "quick dinner with chicken",
		"filters": []string{"quick"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	recipes := resp["recipes"].([]interface{})
	require.Len(t, recipes, 1)
	assert.Equal(t, "Chicken Stir Fry", recipes[0].(map[string]interface{})["title"])
	assert.NotContains(t, resp, "message")

	// The descriptor reflects the pantry and the explicit filter toggles.
	assert.Equal(t, "chicken", env.recipes.lastSearch.IncludeIngredients)
	require.NotNil(t, env.recipes.lastSearch.MaxReadyTime)
	assert.Equal(t, 30, *env.recipes.lastSearch.MaxReadyTime)
}

func TestSearchNoMatchesIsInformational(t *testing.T) {
	env := setupTestRouter(t)

	w := env.do(t, "POST", "/api/v1/recipes/search", map[string]interface{}{
		"prompt": "unicorn stew",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Empty(t, resp["recipes"])
	assert.Contains(t, resp["message"], "No recipes found")
}

func TestSearchUpstreamFailure(t *testing.T) {
	env := setupTestRouter(t)
	env.recipes.searchErr = errs.ErrUpstream

	w := env.do(t, "POST", "/api/v1/recipes/search", map[string]interface{}{
		"prompt": "dinner",
	})

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestSearchRejectsUnknownFilter(t *testing.T) {
	env := setupTestRouter(t)

	w := env.do(t, "POST", "/api/v1/recipes/search", map[string]interface{}{
		"prompt":  "dinner",
		"filters": []string{"paleo"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSuggestions(t *testing.T) {
	env := setupTestRouter(t)
	env.store.AddItem(model.NewPantryItem("0123456789012", model.ProductInfo{Name: "eggs"}))
	env.recipes.byIngr = []query.ByIngredientsResult{
		{ID: 7, Title: "Omelette"},
	}

	w := env.do(t, "GET", "/api/v1/recipes/suggestions", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	recipes := resp["recipes"].([]interface{})
	require.Len(t, recipes, 1)
	assert.Equal(t, "Omelette", recipes[0].(map[string]interface{})["title"])
}

func TestSuggestionsEmptyPantryYieldsMessage(t *testing.T) {
	env := setupTestRouter(t)

	w := env.do(t, "GET", "/api/v1/recipes/suggestions", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Contains(t, resp["message"], "No recipes found")
}

func TestGetRecipe(t *testing.T) {
	env := setupTestRouter(t)
	env.recipes.information = query.InformationResponse{
		ID:    42,
		Title: "Shakshuka",
		ExtendedIngredients: []query.IngredientRef{
			{Name: "egg", Original: "4 eggs"},
		},
		AnalyzedInstructions: []query.InstructionGroup{
			{Steps: []query.InstructionStep{{Number: 1, Step: "Crack the eggs."}}},
		},
	}

	w := env.do(t, "GET", "/api/v1/recipes/42", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "Shakshuka", resp["title"])
	assert.Equal(t, []interface{}{"4 eggs"}, resp["ingredients"])
	assert.Equal(t, []interface{}{"Crack the eggs."}, resp["instructions"])
}

func TestGetRecipeNotFound(t *testing.T) {
	env := setupTestRouter(t)
	env.recipes.infoErr = errs.ErrNotFound

	w := env.do(t, "GET", "/api/v1/recipes/42", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRecipeInvalidID(t *testing.T) {
	env := setupTestRouter(t)

	w := env.do(t, "GET", "/api/v1/recipes/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRecipeSkillLevelEnhancement(t *testing.T) {
	env := setupTestRouter(t)
	env.recipes.information = query.InformationResponse{
		ID:    42,
		Title: "Shakshuka",
		AnalyzedInstructions: []query.InstructionGroup{
			{Steps: []query.InstructionStep{{Number: 1, Step: "Crack the eggs."}}},
		},
	}
	env.ai.enabled = true
	env.ai.steps = []string{"Gently crack each egg into a small bowl first."}

	w := env.do(t, "GET", "/api/v1/recipes/42?skill_level=beginner", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, []interface{}{"Gently crack each egg into a small bowl first."}, resp["instructions"])
}

func TestGetRecipeEnhancementFailureFallsBack(t *testing.T) {
	env := setupTestRouter(t)
	env.recipes.information = query.InformationResponse{
		ID:    42,
		Title: "Shakshuka",
		AnalyzedInstructions: []query.InstructionGroup{
			{Steps: []query.InstructionStep{{Number: 1, Step: "Crack the eggs."}}},
		},
	}
	env.ai.enabled = true
	env.ai.err = errs.ErrUpstream

	w := env.do(t, "GET", "/api/v1/recipes/42?skill_level=beginner", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, []interface{}{"Crack the eggs."}, resp["instructions"])
}

func TestAnalyze(t *testing.T) {
	env := setupTestRouter(t)
	env.ai.enabled = true
	env.ai.analysis = &service.RecipeAnalysis{
		SuggestedCuisine:  "Italian",
		DietaryInfo:       []string{"vegetarian"},
		CookingDifficulty: "easy",
		EstimatedTime:     25,
	}

	w := env.do(t, "POST", "/api/v1/recipes/analyze", map[string]interface{}{
		"prompt": "something italian tonight",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	analysis := resp["analysis"].(map[string]interface{})
	assert.Equal(t, "Italian", analysis["suggestedCuisine"])
}

func TestAnalyzeUnavailableWithoutKey(t *testing.T) {
	env := setupTestRouter(t)
	env.ai.err = errs.ErrUnavailable

	w := env.do(t, "POST", "/api/v1/recipes/analyze", map[string]interface{}{
		"prompt": "something italian tonight",
	})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestAnalyzeRequiresPrompt(t *testing.T) {
	env := setupTestRouter(t)

	w := env.do(t, "POST", "/api/v1/recipes/analyze", map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
