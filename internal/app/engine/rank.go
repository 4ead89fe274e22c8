package engine

import "sort"

const (
	// DefaultRecommendationCount is used when the request states none.
	DefaultRecommendationCount = 5
	// MaxRecommendationCount bounds how many cards one response may carry.
	MaxRecommendationCount = 15
)

var levelRank = map[LevelBand]int{
	LevelSafe:      0,
	LevelModerate:  1,
	LevelAmbitious: 2,
	LevelUnknown:   3,
}

func rankOf(band LevelBand) int {
	if r, ok := levelRank[band]; ok {
		return r
	}
	return 3
}

// clampCount normalizes the requested result size into [1, max],
// substituting the fallback for non-positive values. The engine supplies
// its configured bounds, built-in 5/15 unless overridden.
func clampCount(requested, fallback, max int) int {
	if requested <= 0 {
		requested = fallback
	}
	if requested > max {
		requested = max
	}
	return requested
}

// selectTop orders cards by (level band rank, total first-year cost) and
// truncates to limit, which the caller has already clamped. If the
// pre-truncation pool had an ambitious card but the cut kept none, the
// first ambitious card from the pool is appended so the student always
// sees a stretch option.
func selectTop(cards []*RecommendationCard, limit int) []*RecommendationCard {
	var firstAmbitious *RecommendationCard
	for _, c := range cards {
		if c.LevelBand == LevelAmbitious {
			firstAmbitious = c
			break
		}
	}

	sort.SliceStable(cards, func(i, j int) bool {
		ri, rj := rankOf(cards[i].LevelBand), rankOf(cards[j].LevelBand)
		if ri != rj {
			return ri < rj
		}
		return cards[i].TotalFirstYearCostLakhs < cards[j].TotalFirstYearCostLakhs
	})

	if limit > len(cards) {
		limit = len(cards)
	}
	selected := make([]*RecommendationCard, 0, limit+1)
	selected = append(selected, cards[:limit]...)

	if firstAmbitious != nil && !containsBand(selected, LevelAmbitious) {
		selected = append(selected, firstAmbitious)
	}
	return selected
}

func containsBand(cards []*RecommendationCard, band LevelBand) bool {
	for _, c := range cards {
		if c.LevelBand == band {
			return true
		}
	}
	return false
}
