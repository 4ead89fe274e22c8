package services

import (
	"fmt"
	"time"

	"github.com/beastconsultancy/pathway/internal/app/catalog"
	"github.com/beastconsultancy/pathway/internal/app/engine"
	"github.com/beastconsultancy/pathway/internal/app/models/dto"
	"github.com/beastconsultancy/pathway/internal/pkg/apperrors"
)

// RecommendationService defines the interface for the recommendation operation
type RecommendationService interface {
	Recommend(req *dto.RecommendRequest) (*dto.RecommendResponse, error)
}

// recommendationServiceImpl implements the RecommendationService interface
type recommendationServiceImpl struct {
	catalog *catalog.Catalog
	engine  *engine.Engine
}

// NewRecommendationService creates a new recommendation service instance.
// The configured default and maximum result counts bound every run.
func NewRecommendationService(cat *catalog.Catalog, defaultCount, maxCount int) RecommendationService {
	return &recommendationServiceImpl{
		catalog: cat,
		engine:  engine.NewWithCounts(cat, defaultCount, maxCount),
	}
}

// Recommend normalizes the request, resolves the destination country and
// runs the matching engine. An unknown country code fails before any
// matching work is done.
func (s *recommendationServiceImpl) Recommend(req *dto.RecommendRequest) (*dto.RecommendResponse, error) {
	profile, clusters := req.Normalize()

	country, ok := s.catalog.ByCode(profile.CountryCode)
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrCountryNotFound, profile.CountryCode)
	}

	result := s.engine.Recommend(country, profile, clusters, req.RequestedCount.Value())

	return &dto.RecommendResponse{
		GeneratedAt:    time.Now().UTC(),
		StudentProfile: profile,
		Country: dto.CountrySummary{
			Code: country.Code,
			Name: country.Name,
			Flag: country.Flag,
		},
		Stats: dto.RecommendStats{
			TotalMatchesBeforeLimit: result.TotalMatches,
			TotalShown:              len(result.Cards),
			SafeCount:               result.SafeCount,
			ModerateCount:           result.ModerateCount,
			AmbitiousCount:          result.AmbitiousCount,
		},
		Recommendations: result.Cards,
		GlobalAdvice:    result.Advice,
	}, nil
}
