// Package service orchestrates the pantry store, the query builder and the
// external API adapters into the assistant's user-facing operations.
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mpaterson/souschef/internal/model"
	"github.com/mpaterson/souschef/internal/pantry"
	"github.com/mpaterson/souschef/internal/query"
)

// AssistantService ties the in-memory pantry to the recipe and product APIs.
type AssistantService struct {
	store    *pantry.Store
	recipes  RecipeAPI
	products ProductAPI
	logger   *zap.Logger
}

// NewAssistantService wires the service and registers a logging observer on
// the store so every pantry mutation leaves a trace.
func NewAssistantService(store *pantry.Store, recipes RecipeAPI, products ProductAPI, logger *zap.Logger) *AssistantService {
	s := &AssistantService{
		store:    store,
		recipes:  recipes,
		products: products,
		logger:   logger,
	}
	store.Subscribe(func() {
		logger.Debug("pantry changed", zap.Int("items", store.Len()))
	})
	return s
}

// Store exposes the pantry for direct reads and mutations by the API layer.
func (s *AssistantService) Store() *pantry.Store {
	return s.store
}

// Scan resolves a barcode against the product catalogue. The item is not
// added here: the caller confirms the product with the user first. A
// not-found result is a valid negative outcome, distinct from a transport
// failure.
func (s *AssistantService) Scan(ctx context.Context, barcode string) (model.ProductInfo, error) {
	info, err := s.products.Lookup(ctx, barcode)
	if err != nil {
		return model.ProductInfo{}, fmt.Errorf("scan %q: %w", barcode, err)
	}
	return info, nil
}

// AddScanned appends a confirmed scan to the pantry and returns the created
// item. Quantity starts at one per scan event.
func (s *AssistantService) AddScanned(barcode string, product model.ProductInfo) model.PantryItem {
	item := model.NewPantryItem(barcode, product)
	s.store.AddItem(item)
	s.logger.Info("pantry item added",
		zap.String("id", item.ID),
		zap.String("name", item.Name),
	)
	return item
}

// SearchOutcome bundles the normalized recipes with the advisory prompt
// analysis. NoMatches marks the empty result set as an informational
// condition rather than an error.
type SearchOutcome struct {
	Recipes   []model.Recipe
	Analysis  query.PromptAnalysis
	NoMatches bool
}

// SearchRecipes runs the full prompt-and-pantry search flow: project names
// off the current pantry, analyze the prompt for advisory hints, build the
// search descriptor from the explicit filter selection, execute it and
// normalize the payload. The analysis never feeds the descriptor; the user's
// toggles are the only filter input.
func (s *AssistantService) SearchRecipes(ctx context.Context, prompt string, selectedFilters []string) (SearchOutcome, error) {
	ingredients := s.store.IngredientNames()
	analysis := query.AnalyzePrompt(prompt)
	req := query.BuildSearchRequest(prompt, ingredients, selectedFilters)

	resp, err := s.recipes.ComplexSearch(ctx, req)
	if err != nil {
		return SearchOutcome{}, fmt.Errorf("search recipes: %w", err)
	}

	recipes := query.Normalize(resp)
	return SearchOutcome{
		Recipes:   recipes,
		Analysis:  analysis,
		NoMatches: len(recipes) == 0,
	}, nil
}

// SuggestFromPantry finds recipes built around the current pantry contents
// alone, with no prompt or filters.
func (s *AssistantService) SuggestFromPantry(ctx context.Context) ([]model.Recipe, error) {
	ingredients := s.store.IngredientNames()
	results, err := s.recipes.FindByIngredients(ctx, ingredients)
	if err != nil {
		return nil, fmt.Errorf("suggest from pantry: %w", err)
	}
	return query.NormalizeByIngredients(results), nil
}

// RecipeDetail fetches the full recipe view. When the information payload
// carries no instructions the dedicated instructions endpoint is consulted
// before giving up on them.
func (s *AssistantService) RecipeDetail(ctx context.Context, id int) (model.RecipeDetail, error) {
	info, err := s.recipes.GetRecipeInformation(ctx, id)
	if err != nil {
		return model.RecipeDetail{}, fmt.Errorf("recipe detail %d: %w", id, err)
	}

	detail := query.NormalizeInformation(info)
	if len(detail.Instructions) == 0 {
		groups, err := s.recipes.GetAnalyzedInstructions(ctx, id)
		if err != nil {
			// Detail without steps is still useful; log and move on.
			s.logger.Warn("instructions fallback failed", zap.Int("recipe_id", id), zap.Error(err))
		} else {
			detail.Instructions = query.FlattenInstructions(groups)
		}
	}
	return detail, nil
}
