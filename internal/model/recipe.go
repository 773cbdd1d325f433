package model

// Recipe is a normalized recipe summary produced fresh per search. The same
// upstream id can recur across searches with different used/missed sets,
// depending on the pantry at the time.
type Recipe struct {
	ID                int      `json:"id"`
	Title             string   `json:"title"`
	Image             string   `json:"image"`
	UsedIngredients   []string `json:"used_ingredients"`
	MissedIngredients []string `json:"missed_ingredients"`
	Instructions      []string `json:"instructions"`
	ReadyInMinutes    int      `json:"ready_in_minutes"`
	Servings          int      `json:"servings"`
}

// RecipeDetail is the full recipe view fetched by id: the complete
// ingredient lines plus ordered instruction steps.
type RecipeDetail struct {
	ID             int      `json:"id"`
	Title          string   `json:"title"`
	Image          string   `json:"image"`
	ReadyInMinutes int      `json:"ready_in_minutes"`
	Servings       int      `json:"servings"`
	Ingredients    []string `json:"ingredients"`
	Instructions   []string `json:"instructions"`
}

// DietaryFilter is one of the fixed filter toggles the UI offers. The values
// mirror what the recipe search API accepts; "quick" is a time constraint
// rather than a diet and is special-cased by the query builder.
type DietaryFilter struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Canonical filter values. Diet selection follows the order below.
const (
	FilterVegetarian = "vegetarian"
	FilterVegan      = "vegan"
	FilterGlutenFree = "gluten-free"
	FilterQuick      = "quick"
)

// DietaryFilters is the static set offered to clients.
var DietaryFilters = []DietaryFilter{
	{ID: "1", Label: "Vegetarian", Value: FilterVegetarian},
	{ID: "2", Label: "Vegan", Value: FilterVegan},
	{ID: "3", Label: "Gluten Free", Value: FilterGlutenFree},
	{ID: "4", Label: "Quick & Easy", Value: FilterQuick},
}
