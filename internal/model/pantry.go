package model

import (
	"time"

	"github.com/google/uuid"
)

// PantryItem is a locally tracked record of one scanned product and its
// quantity. Items are created when a barcode scan resolves to a catalogued
// product and the user confirms; only Quantity changes afterwards.
type PantryItem struct {
	ID         string     `json:"id"`
	Barcode    string     `json:"barcode"`
	Name       string     `json:"name"`
	Brand      string     `json:"brand"`
	Image      string     `json:"image,omitempty"`
	Quantity   int        `json:"quantity"`
	DateAdded  time.Time  `json:"date_added"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
}

// NewPantryItem builds an item from a confirmed product lookup. The ID is
// generated here and never changes.
func NewPantryItem(barcode string, product ProductInfo) PantryItem {
	return PantryItem{
		ID:        uuid.NewString(),
		Barcode:   barcode,
		Name:      product.Name,
		Brand:     product.Brand,
		Image:     product.ImageURL,
		Quantity:  1,
		DateAdded: time.Now(),
	}
}

// ProductInfo is the read-only projection returned by the product lookup.
// Quantity is the package's free-text unit string ("500 g"), not a count.
type ProductInfo struct {
	Name            string `json:"name"`
	Brand           string `json:"brand"`
	ImageURL        string `json:"image_url"`
	Quantity        string `json:"quantity"`
	IngredientsText string `json:"ingredients_text,omitempty"`
}
