package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mpaterson/souschef/internal/api"
	"github.com/mpaterson/souschef/internal/middleware"
)

// SetupRouter configures the application routes. searchLimiter may be nil,
// in which case the recipe endpoints run unthrottled.
func SetupRouter(
	pantryHandler *api.PantryHandler,
	recipeHandler *api.RecipeHandler,
	searchLimiter *middleware.RateLimiter,
	allowedOrigins []string,
) *gin.Engine {
	api.RegisterValidators()

	router := gin.Default()
	router.Use(middleware.CORS(allowedOrigins))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	pantryHandler.RegisterRoutes(v1)

	recipes := v1.Group("")
	if searchLimiter != nil {
		recipes.Use(searchLimiter.Middleware())
	}
	recipeHandler.RegisterRoutes(recipes)

	return router
}
