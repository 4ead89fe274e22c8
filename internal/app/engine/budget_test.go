package engine

import (
	"testing"

	"github.com/beastconsultancy/pathway/internal/app/models"
)

func TestBudgetFitUnknownWithoutBudget(t *testing.T) {
	for _, budget := range []float64{0, -5} {
		for _, total := range []float64{0, 10, 1000} {
			if got := BudgetFit(total, budget); got != BudgetUnknown {
				t.Errorf("BudgetFit(%v, %v) = %q, want %q", total, budget, got, BudgetUnknown)
			}
		}
	}
}

func TestBudgetFitBoundaries(t *testing.T) {
	budget := 30.0
	cases := []struct {
		total float64
		want  BudgetLabel
	}{
		{24.0, BudgetVeryComfortable}, // exactly 0.8 * budget
		{24.0001, BudgetTight},
		{30.0, BudgetTight}, // exactly the budget
		{30.0001, BudgetOver},
		{5.0, BudgetVeryComfortable},
	}

	for _, tc := range cases {
		if got := BudgetFit(tc.total, budget); got != tc.want {
			t.Errorf("BudgetFit(%v, %v) = %q, want %q", tc.total, budget, got, tc.want)
		}
	}
}

func TestTotalFirstYearCostSumsAllParts(t *testing.T) {
	course := &models.Course{
		TuitionFeeLakhs:      26,
		EstimatedLivingLakhs: 10,
		ExtraCostsLakhs:      2,
	}
	if got := TotalFirstYearCost(course); got != 38 {
		t.Fatalf("TotalFirstYearCost = %v, want 38", got)
	}

	// Unstated fields load as zero and contribute nothing.
	if got := TotalFirstYearCost(&models.Course{TuitionFeeLakhs: 12}); got != 12 {
		t.Fatalf("TotalFirstYearCost with only tuition = %v, want 12", got)
	}
}
