// Package engine implements the matching-and-scoring core: the
// eligibility filter, academic/budget/English classification, risk flags,
// narrative assembly, ranking policy and aggregate advice. Everything in
// this package is a pure transformation of (profile, catalog snapshot);
// it does no I/O and holds no mutable state, so one Engine may serve
// concurrent requests without coordination.
package engine

import "github.com/beastconsultancy/pathway/internal/app/models"

// CatalogIndex is the read-only catalog view the engine consumes.
type CatalogIndex interface {
	// Records returns every (country, university, course) triple in stable
	// catalog order.
	Records() []models.MatchRecord
}

// Engine scores student profiles against an injected catalog snapshot.
type Engine struct {
	catalog      CatalogIndex
	defaultCount int
	maxCount     int
}

// New creates an Engine over the given catalog with the built-in
// selection counts.
func New(catalog CatalogIndex) *Engine {
	return NewWithCounts(catalog, DefaultRecommendationCount, MaxRecommendationCount)
}

// NewWithCounts creates an Engine whose default and maximum result sizes
// come from configuration. Nonsensical values fall back to the built-ins.
func NewWithCounts(catalog CatalogIndex, defaultCount, maxCount int) *Engine {
	if defaultCount < 1 {
		defaultCount = DefaultRecommendationCount
	}
	if maxCount < defaultCount {
		maxCount = defaultCount
	}
	return &Engine{catalog: catalog, defaultCount: defaultCount, maxCount: maxCount}
}

// Result is the outcome of one recommendation run.
type Result struct {
	// TotalMatches counts eligible candidates before ranking/truncation.
	TotalMatches int
	// Cards is the final ordered recommendation set.
	Cards []*RecommendationCard
	// Per-band counts over Cards.
	SafeCount      int
	ModerateCount  int
	AmbitiousCount int
	// Advice is the aggregate guidance for the final set.
	Advice GlobalAdvice
}

// Recommend runs the full pipeline for one student: filter the flattened
// catalog, build a card per survivor, rank and truncate, then synthesize
// global advice. Candidates below the academic floor are dropped silently;
// only the aggregate counts surface.
func (e *Engine) Recommend(country *models.Country, profile models.StudentProfile, subjectClusters []string, requestedCount int) Result {
	matches := FilterEligible(e.catalog.Records(), profile, subjectClusters)

	cards := make([]*RecommendationCard, 0, len(matches))
	for _, rec := range matches {
		if card := buildCard(rec, profile); card != nil {
			cards = append(cards, card)
		}
	}

	selected := selectTop(cards, clampCount(requestedCount, e.defaultCount, e.maxCount))

	result := Result{
		TotalMatches: len(matches),
		Cards:        selected,
		Advice:       BuildGlobalAdvice(country, profile, selected),
	}
	for _, c := range selected {
		switch c.LevelBand {
		case LevelSafe:
			result.SafeCount++
		case LevelModerate:
			result.ModerateCount++
		case LevelAmbitious:
			result.AmbitiousCount++
		}
	}
	return result
}
