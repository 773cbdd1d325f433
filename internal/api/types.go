package api

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/mpaterson/souschef/internal/model"
)

// AddItemRequest is the body for confirming a scanned product into the
// pantry. Name and brand may be empty; the store does not care.
type AddItemRequest struct {
	Barcode string `json:"barcode" binding:"required,numeric"`
	Name    string `json:"name"`
	Brand   string `json:"brand"`
	Image   string `json:"image"`
}

// ScanRequest is the body for a barcode lookup.
type ScanRequest struct {
	Barcode string `json:"barcode" binding:"required,numeric"`
}

// UpdateQuantityRequest carries the replacement quantity. A pointer keeps
// zero distinguishable from absent; the value itself is not range-checked.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// SearchRecipesRequest is the body for the prompt-and-filters search.
type SearchRecipesRequest struct {
	Prompt  string   `json:"prompt"`
	Filters []string `json:"filters" binding:"omitempty,dive,dietfilter"`
}

// AnalyzeRequest is the body for the AI advisory analysis.
type AnalyzeRequest struct {
	Prompt  string   `json:"prompt" binding:"required"`
	Filters []string `json:"filters" binding:"omitempty,dive,dietfilter"`
}

// RegisterValidators installs the dietfilter rule on gin's binding engine.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("dietfilter", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, f := range model.DietaryFilters {
			if f.Value == value {
				return true
			}
		}
		return false
	})
}
