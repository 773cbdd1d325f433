// Package query translates pantry contents, a free-text prompt and the
// selected dietary filters into a normalized search descriptor, and maps
// raw search API payloads back into domain records.
package query

import (
	"strings"

	"github.com/mpaterson/souschef/internal/model"
)

// quickMaxReadyTime is the minute cap applied when the quick filter is on.
const quickMaxReadyTime = 30

// resultCount is fixed per call; callers cannot tune it.
const resultCount = 5

// dietOrder is the canonical enumeration order. When more than one diet is
// selected, the first match below wins and the rest are silently dropped:
// the search API accepts at most one diet value per request.
var dietOrder = []string{model.FilterVegetarian, model.FilterVegan, model.FilterGlutenFree}

// SearchRequest is the API-agnostic request descriptor. Empty string fields
// and a nil MaxReadyTime mean "omit the parameter entirely" — for the
// downstream API, an absent parameter is not equivalent to an empty one.
type SearchRequest struct {
	Query              string
	IncludeIngredients string
	Diet               string
	Intolerances       string
	MaxReadyTime       *int
	Number             int
}

// BuildSearchRequest composes the descriptor from the prompt (verbatim, empty
// is a legal "no text filter"), the pantry ingredient names (order and
// duplicates preserved) and the selected filter values.
func BuildSearchRequest(prompt string, ingredientNames []string, selectedFilters []string) SearchRequest {
	req := SearchRequest{
		Query:  prompt,
		Number: resultCount,
	}

	if len(ingredientNames) > 0 {
		req.IncludeIngredients = strings.Join(ingredientNames, ",")
	}

	selected := make(map[string]bool, len(selectedFilters))
	for _, f := range selectedFilters {
		selected[f] = true
	}

	for _, diet := range dietOrder {
		if selected[diet] {
			req.Diet = diet
			break
		}
	}

	if selected[model.FilterQuick] {
		maxTime := quickMaxReadyTime
		req.MaxReadyTime = &maxTime
	}

	return req
}

// IngredientRef is the enriched ingredient-usage element returned when
// fillIngredients is requested.
type IngredientRef struct {
	Name     string `json:"name"`
	Original string `json:"original"`
}

// InstructionStep is one step within an analyzed instruction group.
type InstructionStep struct {
	Number int    `json:"number"`
	Step   string `json:"step"`
}

// InstructionGroup is one named group of analyzed instruction steps.
type InstructionGroup struct {
	Name  string            `json:"name"`
	Steps []InstructionStep `json:"steps"`
}

// SearchResult is the raw shape of one complexSearch result element.
type SearchResult struct {
	ID                   int                `json:"id"`
	Title                string             `json:"title"`
	Image                string             `json:"image"`
	ReadyInMinutes       int                `json:"readyInMinutes"`
	Servings             int                `json:"servings"`
	UsedIngredients      []IngredientRef    `json:"usedIngredients"`
	MissedIngredients    []IngredientRef    `json:"missedIngredients"`
	AnalyzedInstructions []InstructionGroup `json:"analyzedInstructions"`
}

// SearchResponse is the raw complexSearch payload.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}

// Normalize maps the raw payload into Recipe records. An absent or empty
// results field yields an empty slice — the "no matches" outcome, which the
// caller must treat as informational, never as a failure. Missing sub-arrays
// on individual elements default to empty sequences so one sparse element
// never sinks the batch.
func Normalize(resp SearchResponse) []model.Recipe {
	recipes := make([]model.Recipe, 0, len(resp.Results))
	for _, r := range resp.Results {
		recipes = append(recipes, model.Recipe{
			ID:                r.ID,
			Title:             r.Title,
			Image:             r.Image,
			ReadyInMinutes:    r.ReadyInMinutes,
			Servings:          r.Servings,
			UsedIngredients:   ingredientNames(r.UsedIngredients),
			MissedIngredients: ingredientNames(r.MissedIngredients),
			Instructions:      FlattenInstructions(r.AnalyzedInstructions),
		})
	}
	return recipes
}

// ByIngredientsResult is the raw shape of one findByIngredients element.
// That endpoint returns a bare array, carries no timing or serving data and
// no instructions.
type ByIngredientsResult struct {
	ID                int             `json:"id"`
	Title             string          `json:"title"`
	Image             string          `json:"image"`
	UsedIngredients   []IngredientRef `json:"usedIngredients"`
	MissedIngredients []IngredientRef `json:"missedIngredients"`
}

// NormalizeByIngredients maps findByIngredients results into Recipe records.
func NormalizeByIngredients(results []ByIngredientsResult) []model.Recipe {
	recipes := make([]model.Recipe, 0, len(results))
	for _, r := range results {
		recipes = append(recipes, model.Recipe{
			ID:                r.ID,
			Title:             r.Title,
			Image:             r.Image,
			UsedIngredients:   ingredientNames(r.UsedIngredients),
			MissedIngredients: ingredientNames(r.MissedIngredients),
			Instructions:      []string{},
		})
	}
	return recipes
}

// InformationResponse is the raw recipe-information payload for one recipe.
type InformationResponse struct {
	ID                   int                `json:"id"`
	Title                string             `json:"title"`
	Image                string             `json:"image"`
	ReadyInMinutes       int                `json:"readyInMinutes"`
	Servings             int                `json:"servings"`
	ExtendedIngredients  []IngredientRef    `json:"extendedIngredients"`
	AnalyzedInstructions []InstructionGroup `json:"analyzedInstructions"`
}

// NormalizeInformation maps the information payload into a RecipeDetail.
// Ingredient lines come from the "original" free-text form.
func NormalizeInformation(info InformationResponse) model.RecipeDetail {
	ingredients := make([]string, 0, len(info.ExtendedIngredients))
	for _, ing := range info.ExtendedIngredients {
		ingredients = append(ingredients, ing.Original)
	}
	return model.RecipeDetail{
		ID:             info.ID,
		Title:          info.Title,
		Image:          info.Image,
		ReadyInMinutes: info.ReadyInMinutes,
		Servings:       info.Servings,
		Ingredients:    ingredients,
		Instructions:   FlattenInstructions(info.AnalyzedInstructions),
	}
}

func ingredientNames(refs []IngredientRef) []string {
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		names = append(names, ref.Name)
	}
	return names
}

// FlattenInstructions collapses analyzed step groups into one ordered
// sequence of step texts.
func FlattenInstructions(groups []InstructionGroup) []string {
	steps := make([]string, 0)
	for _, g := range groups {
		for _, s := range g.Steps {
			steps = append(steps, s.Step)
		}
	}
	return steps
}
