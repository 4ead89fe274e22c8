package engine

import "github.com/beastconsultancy/pathway/internal/app/models"

// BudgetLabel is the affordability classification of a candidate course.
type BudgetLabel string

const (
	BudgetVeryComfortable BudgetLabel = "very_comfortable"
	BudgetTight           BudgetLabel = "tight_but_possible"
	BudgetOver            BudgetLabel = "over_budget"
	BudgetUnknown         BudgetLabel = "unknown"
)

// TotalFirstYearCost sums tuition, living and extra costs in lakhs.
// Unstated cost fields load as zero.
func TotalFirstYearCost(course *models.Course) float64 {
	return course.TuitionFeeLakhs + course.EstimatedLivingLakhs + course.ExtraCostsLakhs
}

// BudgetFit labels total cost against the stated budget. A non-positive
// budget means the student gave none, so no judgement is possible.
func BudgetFit(totalCost, budget float64) BudgetLabel {
	if budget <= 0 {
		return BudgetUnknown
	}
	switch {
	case totalCost <= 0.8*budget:
		return BudgetVeryComfortable
	case totalCost <= budget:
		return BudgetTight
	default:
		return BudgetOver
	}
}
