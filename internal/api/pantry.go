package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mpaterson/souschef/internal/errs"
	"github.com/mpaterson/souschef/internal/model"
	"github.com/mpaterson/souschef/internal/service"
)

// PantryHandler serves the pantry endpoints.
type PantryHandler struct {
	assistant *service.AssistantService
	logger    *zap.Logger
}

func NewPantryHandler(assistant *service.AssistantService, logger *zap.Logger) *PantryHandler {
	return &PantryHandler{assistant: assistant, logger: logger}
}

func (h *PantryHandler) RegisterRoutes(router *gin.RouterGroup) {
	pantry := router.Group("/pantry")
	{
		pantry.GET("", h.ListItems)
		pantry.POST("", h.AddItem)
		pantry.POST("/scan", h.Scan)
		pantry.DELETE("/:id", h.RemoveItem)
		pantry.PUT("/:id/quantity", h.UpdateQuantity)
	}
}

func (h *PantryHandler) ListItems(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items": h.assistant.Store().Items(),
	})
}

// Scan looks a barcode up in the product catalogue. The item is not added;
// the client confirms with the user and then calls AddItem.
func (h *PantryHandler) Scan(c *gin.Context) {
	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.assistant.Scan(c.Request.Context(), req.Barcode)
	if errors.Is(err, errs.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "This product isn't in our database.",
		})
		return
	}
	if err != nil {
		h.logger.Error("product lookup failed", zap.String("barcode", req.Barcode), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to fetch product information. Please try again.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (h *PantryHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := h.assistant.AddScanned(req.Barcode, model.ProductInfo{
		Name:     req.Name,
		Brand:    req.Brand,
		ImageURL: req.Image,
	})

	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// RemoveItem deletes by id. An unknown id is a no-op, so the response is the
// same either way.
func (h *PantryHandler) RemoveItem(c *gin.Context) {
	id := c.Param("id")
	h.assistant.Store().RemoveItem(id)

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed",
		"id":      id,
	})
}

func (h *PantryHandler) UpdateQuantity(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("id")
	h.assistant.Store().UpdateQuantity(id, *req.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"message": "Quantity updated",
		"id":      id,
	})
}
