package query

import (
	"regexp"
	"strings"
)

// Fixed extraction patterns. Each one is best-effort and independent; no
// match leaves the field empty.
var (
	dietPattern       = regexp.MustCompile(`(?i)vegetarian|vegan|gluten-free|keto`)
	timePattern       = regexp.MustCompile(`(?i)quick|fast|under \d+ minutes`)
	mealTypePattern   = regexp.MustCompile(`(?i)breakfast|lunch|dinner|snack`)
	ingredientPattern = regexp.MustCompile(`(?i)with ([^,]+)`)
)

// PromptAnalysis carries coarse hints extracted from the free-text prompt.
// The hints are advisory metadata only: the query builder does not consume
// them, the user's explicit filter toggles always win.
type PromptAnalysis struct {
	Diet        string `json:"diet,omitempty"`
	Time        string `json:"time,omitempty"`
	MealType    string `json:"meal_type,omitempty"`
	Ingredients string `json:"ingredients,omitempty"`
}

// AnalyzePrompt extracts keyword hints from the prompt. Hints keep the case
// they matched with except diet, which is lowercased to line up with the
// canonical filter values.
func AnalyzePrompt(prompt string) PromptAnalysis {
	analysis := PromptAnalysis{
		Diet:     strings.ToLower(dietPattern.FindString(prompt)),
		Time:     timePattern.FindString(prompt),
		MealType: mealTypePattern.FindString(prompt),
	}
	if m := ingredientPattern.FindStringSubmatch(prompt); m != nil {
		analysis.Ingredients = m[1]
	}
	return analysis
}
