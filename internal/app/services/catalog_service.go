package services

import (
	"fmt"
	"strings"

	"github.com/beastconsultancy/pathway/internal/app/catalog"
	"github.com/beastconsultancy/pathway/internal/app/models/dto"
	"github.com/beastconsultancy/pathway/internal/pkg/apperrors"
)

// CatalogService defines the read-only browse operations over the catalog
type CatalogService interface {
	ListCountries() []dto.CountryOption
	ListClusters(countryCode string) ([]dto.ClusterSummary, error)
}

// catalogServiceImpl implements the CatalogService interface
type catalogServiceImpl struct {
	catalog *catalog.Catalog
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(cat *catalog.Catalog) CatalogService {
	return &catalogServiceImpl{catalog: cat}
}

// ListCountries returns the dropdown list of loaded countries.
func (s *catalogServiceImpl) ListCountries() []dto.CountryOption {
	countries := s.catalog.Countries()
	items := make([]dto.CountryOption, 0, len(countries))
	for _, c := range countries {
		items = append(items, dto.CountryOption{
			Code:            c.Code,
			Name:            c.Name,
			Flag:            c.Flag,
			DefaultCurrency: c.DefaultCurrency,
		})
	}
	return items
}

// ListClusters returns the subject clusters offered in one country, with
// an example course and a count each, in first-seen order.
func (s *catalogServiceImpl) ListClusters(countryCode string) ([]dto.ClusterSummary, error) {
	country, ok := s.catalog.ByCode(countryCode)
	if !ok {
		return nil, fmt.Errorf("%w: country %s", apperrors.ErrResourceNotFound, countryCode)
	}

	var order []string
	index := make(map[string]*dto.ClusterSummary)

	for ui := range country.Universities {
		for ci := range country.Universities[ui].Courses {
			course := &country.Universities[ui].Courses[ci]

			cluster := course.SubjectCluster
			if cluster == "" {
				cluster = "other"
			}

			summary, seen := index[cluster]
			if !seen {
				summary = &dto.ClusterSummary{
					SubjectCluster: cluster,
					DisplayName:    clusterDisplayName(cluster),
					ExampleCourse:  course.Name,
				}
				index[cluster] = summary
				order = append(order, cluster)
			}
			summary.Count++
		}
	}

	items := make([]dto.ClusterSummary, 0, len(order))
	for _, cluster := range order {
		items = append(items, *index[cluster])
	}
	return items, nil
}

// clusterDisplayName turns "data_science" into "Data Science".
func clusterDisplayName(cluster string) string {
	words := strings.Split(cluster, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
