package client

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mpaterson/souschef/internal/errs"
	"github.com/mpaterson/souschef/internal/model"
)

const defaultOpenFoodFactsURL = "https://world.openfoodfacts.org/api/v0/product"

// OpenFoodFacts is the barcode product lookup adapter.
type OpenFoodFacts struct {
	apiClient
	baseURL string
	logger  *zap.Logger
}

// NewOpenFoodFacts creates the adapter. An empty baseURL falls back to the
// public endpoint.
func NewOpenFoodFacts(baseURL string, logger *zap.Logger) *OpenFoodFacts {
	if baseURL == "" {
		baseURL = defaultOpenFoodFactsURL
	}
	return &OpenFoodFacts{
		apiClient: newAPIClient(),
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		logger:    logger,
	}
}

type productResponse struct {
	Status  int `json:"status"`
	Product *struct {
		ProductName     string `json:"product_name"`
		Brands          string `json:"brands"`
		ImageURL        string `json:"image_url"`
		Quantity        string `json:"quantity"`
		IngredientsText string `json:"ingredients_text"`
	} `json:"product"`
}

// Lookup resolves a barcode to product info. A status other than 1 or a
// missing product block is errs.ErrNotFound — the product just isn't
// catalogued; transport failures surface as errs.ErrUpstream instead so the
// caller can tell the user to retry.
func (c *OpenFoodFacts) Lookup(ctx context.Context, barcode string) (model.ProductInfo, error) {
	var resp productResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/%s.json", c.baseURL, barcode), &resp); err != nil {
		return model.ProductInfo{}, fmt.Errorf("product lookup: %w", err)
	}

	if resp.Status != 1 || resp.Product == nil {
		c.logger.Debug("product not catalogued", zap.String("barcode", barcode))
		return model.ProductInfo{}, errs.ErrNotFound
	}

	info := model.ProductInfo{
		Name:            resp.Product.ProductName,
		Brand:           resp.Product.Brands,
		ImageURL:        resp.Product.ImageURL,
		Quantity:        resp.Product.Quantity,
		IngredientsText: resp.Product.IngredientsText,
	}
	if info.Name == "" {
		info.Name = "Unknown Product"
	}
	if info.Brand == "" {
		info.Brand = "Unknown Brand"
	}
	if info.Quantity == "" {
		info.Quantity = "N/A"
	}
	return info, nil
}
