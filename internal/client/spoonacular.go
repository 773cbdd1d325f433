package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/mpaterson/souschef/internal/query"
)

const defaultSpoonacularURL = "https://api.spoonacular.com/recipes"

// Spoonacular is the recipe search and detail adapter.
type Spoonacular struct {
	apiClient
	apiKey  string
	baseURL string
	logger  *zap.Logger
}

// NewSpoonacular creates the adapter. An empty baseURL falls back to the
// public endpoint.
func NewSpoonacular(apiKey, baseURL string, logger *zap.Logger) *Spoonacular {
	if baseURL == "" {
		baseURL = defaultSpoonacularURL
	}
	return &Spoonacular{
		apiClient: newAPIClient(),
		apiKey:    apiKey,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		logger:    logger,
	}
}

// ComplexSearch executes the built descriptor against the complexSearch
// endpoint. Enrichment flags are always on so results carry ingredient usage
// and instruction data. Parameters the descriptor marks as omitted are left
// off the request entirely.
func (c *Spoonacular) ComplexSearch(ctx context.Context, req query.SearchRequest) (query.SearchResponse, error) {
	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("number", strconv.Itoa(req.Number))
	params.Set("addRecipeInformation", "true")
	params.Set("fillIngredients", "true")
	if req.Query != "" {
		params.Set("query", req.Query)
	}
	if req.IncludeIngredients != "" {
		params.Set("includeIngredients", req.IncludeIngredients)
	}
	if req.Diet != "" {
		params.Set("diet", req.Diet)
	}
	if req.Intolerances != "" {
		params.Set("intolerances", req.Intolerances)
	}
	if req.MaxReadyTime != nil {
		params.Set("maxReadyTime", strconv.Itoa(*req.MaxReadyTime))
	}

	c.logger.Debug("recipe search",
		zap.String("diet", req.Diet),
		zap.Bool("quick", req.MaxReadyTime != nil),
		zap.Bool("with_ingredients", req.IncludeIngredients != ""),
	)

	var resp query.SearchResponse
	if err := c.getJSON(ctx, c.baseURL+"/complexSearch?"+params.Encode(), &resp); err != nil {
		return query.SearchResponse{}, fmt.Errorf("complex search: %w", err)
	}
	return resp, nil
}

// FindByIngredients asks for recipes built around the given ingredients only,
// with no text query or diet constraints.
func (c *Spoonacular) FindByIngredients(ctx context.Context, ingredients []string) ([]query.ByIngredientsResult, error) {
	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("ingredients", strings.Join(ingredients, ","))
	params.Set("number", "5")

	var results []query.ByIngredientsResult
	if err := c.getJSON(ctx, c.baseURL+"/findByIngredients?"+params.Encode(), &results); err != nil {
		return nil, fmt.Errorf("find by ingredients: %w", err)
	}
	return results, nil
}

// GetRecipeInformation fetches the full detail payload for one recipe id.
func (c *Spoonacular) GetRecipeInformation(ctx context.Context, id int) (query.InformationResponse, error) {
	params := url.Values{}
	params.Set("apiKey", c.apiKey)

	var info query.InformationResponse
	u := fmt.Sprintf("%s/%d/information?%s", c.baseURL, id, params.Encode())
	if err := c.getJSON(ctx, u, &info); err != nil {
		return query.InformationResponse{}, fmt.Errorf("recipe information: %w", err)
	}
	return info, nil
}

// GetAnalyzedInstructions fetches the step groups for one recipe id. Used as
// a fallback when the information payload has no instructions.
func (c *Spoonacular) GetAnalyzedInstructions(ctx context.Context, id int) ([]query.InstructionGroup, error) {
	params := url.Values{}
	params.Set("apiKey", c.apiKey)

	var groups []query.InstructionGroup
	u := fmt.Sprintf("%s/%d/analyzedInstructions?%s", c.baseURL, id, params.Encode())
	if err := c.getJSON(ctx, u, &groups); err != nil {
		return nil, fmt.Errorf("analyzed instructions: %w", err)
	}
	return groups, nil
}
