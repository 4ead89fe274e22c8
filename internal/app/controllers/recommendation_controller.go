package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/beastconsultancy/pathway/internal/app/models/dto"
	"github.com/beastconsultancy/pathway/internal/app/services"
	"github.com/beastconsultancy/pathway/internal/middleware"
)

// RecommendationController handles the recommendation endpoint
type RecommendationController struct {
	recommendationService services.RecommendationService
}

// NewRecommendationController creates a new RecommendationController
func NewRecommendationController(recommendationService services.RecommendationService) *RecommendationController {
	return &RecommendationController{
		recommendationService: recommendationService,
	}
}

// Recommend produces ranked, annotated course recommendations
// @Summary Recommend courses for a student profile
// @Description Matches the posted academic/financial/English profile against the catalog and returns ranked recommendation cards plus overall advice
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body dto.RecommendRequest true "Student profile"
// @Success 200 {object} dto.RecommendResponse "Recommendations generated"
// @Failure 400 {object} dto.ErrorResponse "Malformed body or unknown country code"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /recommend [post]
func (c *RecommendationController) Recommend(ctx *gin.Context) {
	var req dto.RecommendRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	response, err := c.recommendationService.Recommend(&req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// Root returns the service banner with the available endpoints.
func (c *RecommendationController) Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: gin.H{
			"message": "Pathway recommendation backend is running.",
			"available_endpoints": []string{
				"/api/v1/countries",
				"/api/v1/countries/:code/clusters",
				"/api/v1/recommend (POST)",
			},
		},
		Timestamp: time.Now(),
	})
}
