package service

import (
	"context"

	"github.com/mpaterson/souschef/internal/model"
	"github.com/mpaterson/souschef/internal/query"
)

// RecipeAPI is the recipe search and detail collaborator.
type RecipeAPI interface {
	ComplexSearch(ctx context.Context, req query.SearchRequest) (query.SearchResponse, error)
	FindByIngredients(ctx context.Context, ingredients []string) ([]query.ByIngredientsResult, error)
	GetRecipeInformation(ctx context.Context, id int) (query.InformationResponse, error)
	GetAnalyzedInstructions(ctx context.Context, id int) ([]query.InstructionGroup, error)
}

// ProductAPI is the barcode product lookup collaborator.
type ProductAPI interface {
	Lookup(ctx context.Context, barcode string) (model.ProductInfo, error)
}

// Analyzer is the optional generative-AI advisory collaborator.
type Analyzer interface {
	AnalyzeRecipeRequest(ctx context.Context, prompt string, ingredients, dietaryPreferences []string) (*RecipeAnalysis, error)
	EnhanceInstructions(ctx context.Context, detail model.RecipeDetail, skillLevel string) ([]string, error)
	Enabled() bool
}
