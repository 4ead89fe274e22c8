package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/beastconsultancy/pathway/internal/app/models/dto"
	"github.com/beastconsultancy/pathway/internal/app/services"
	"github.com/beastconsultancy/pathway/internal/middleware"
)

// CatalogController handles catalog browse operations
type CatalogController struct {
	catalogService services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService services.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// GetCountries lists the available destination countries
// @Summary List countries
// @Description Returns the minimal country list for frontend dropdowns
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CountryOption} "Countries retrieved"
// @Router /countries [get]
func (c *CatalogController) GetCountries(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.catalogService.ListCountries(),
		Timestamp: time.Now(),
	})
}

// GetClusters lists the subject clusters available in a country
// @Summary List subject clusters for a country
// @Description Returns the subject clusters offered in the given country with an example course and a course count each
// @Tags catalog
// @Produce json
// @Param code path string true "Country code"
// @Success 200 {object} dto.APIResponse{data=[]dto.ClusterSummary} "Clusters retrieved"
// @Failure 404 {object} dto.ErrorResponse "Country not found"
// @Router /countries/{code}/clusters [get]
func (c *CatalogController) GetClusters(ctx *gin.Context) {
	code := ctx.Param("code")

	clusters, err := c.catalogService.ListClusters(code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      clusters,
		Timestamp: time.Now(),
	})
}
