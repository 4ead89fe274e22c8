package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/beastconsultancy/pathway/internal/app/controllers"
	"github.com/beastconsultancy/pathway/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	recommendationController *controllers.RecommendationController,
	catalogController *controllers.CatalogController,
) {
	// Service banner (public)
	router.GET("/", recommendationController.Root)

	// API version group
	v1 := router.Group("/api/v1")

	// --- Catalog browse routes ---
	countries := v1.Group("/countries")
	{
		countries.GET("", catalogController.GetCountries)
		countries.GET("/:code/clusters", catalogController.GetClusters)
	}

	// --- Recommendation route ---
	v1.POST("/recommend", recommendationController.Recommend)

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
