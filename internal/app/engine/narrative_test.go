package engine

import (
	"strings"
	"testing"

	"github.com/beastconsultancy/pathway/internal/app/models"
)

func TestTierLabels(t *testing.T) {
	cases := map[string]string{
		"russell_group_top": "Russell Group / Top UK research university",
		"public_research":   "Public research university",
		"teaching_focused":  "Teaching-focused / modern university",
		"general_public":    "General public university",
		"private":           "Private / specialist institution",
		"something_else":    "General university",
		"":                  "General university",
	}

	for band, want := range cases {
		if got := TierLabel(band); got != want {
			t.Errorf("TierLabel(%q) = %q, want %q", band, got, want)
		}
	}
}

func TestBuildWhyCountryCapsAndConditionals(t *testing.T) {
	country := &models.Country{
		ReasonsToChoose: []string{"r1", "r2", "r3", "r4", "r5"},
		AdmissionNotes:  "notes",
		VisaRules: &models.VisaRules{
			WorkDuringStudiesHoursPerWeek: 20,
			PostStudyWorkOptions:          "Graduate Route: 2 years.",
		},
	}

	got := buildWhyCountry(country)
	// 3 capped reasons + notes + work-hours + post-study sentences.
	if len(got) != 6 {
		t.Fatalf("expected 6 reasons, got %d: %v", len(got), got)
	}
	if got[0] != "r1" || got[2] != "r3" {
		t.Fatalf("reason cap broken: %v", got[:3])
	}
	if !strings.Contains(got[4], "20 hours/week") {
		t.Fatalf("work-hours sentence missing: %q", got[4])
	}
	if !strings.HasPrefix(got[5], "Post-study work route:") {
		t.Fatalf("post-study sentence missing: %q", got[5])
	}

	if got := buildWhyCountry(&models.Country{}); len(got) != 0 {
		t.Fatalf("expected no reasons for empty country, got %v", got)
	}
}

func TestBuildWhyUniversity(t *testing.T) {
	uni := &models.University{
		Highlights:        []string{"h1", "h2", "h3", "h4"},
		CityNotes:         "cheap city",
		RankingBandGlobal: "80-110",
	}

	got := buildWhyUniversity(uni)
	if len(got) != 5 {
		t.Fatalf("expected 5 reasons, got %d: %v", len(got), got)
	}
	if got[4] != "Approx global ranking band: 80-110." {
		t.Fatalf("ranking sentence wrong: %q", got[4])
	}
}

func TestBuildWhyCourse(t *testing.T) {
	course := &models.Course{
		CourseHighlights: []string{"c1"},
		WithPlacement:    true,
		IsFlagship:       true,
	}

	got := buildWhyCourse(course)
	if len(got) != 3 {
		t.Fatalf("expected 3 reasons, got %d: %v", len(got), got)
	}
	if !strings.Contains(got[1], "placement") || !strings.Contains(got[2], "Flagship") {
		t.Fatalf("conditional sentences wrong: %v", got)
	}
}

func TestBuildProsAndConsCaps(t *testing.T) {
	uni := &models.University{
		Highlights: []string{"u1", "u2", "u3", "u4", "u5"},
		Cautions:   []string{"uc1", "uc2", "uc3", "uc4", "uc5"},
	}
	course := &models.Course{
		CourseHighlights: []string{"c1", "c2", "c3", "c4", "c5"},
		CourseCautions:   []string{"cc1", "cc2", "cc3", "cc4", "cc5"},
	}

	if pros := buildPros(uni, course); len(pros) != 8 {
		t.Fatalf("expected pros capped at 8, got %d", len(pros))
	}
	if cons := buildCons(uni, course); len(cons) != 8 {
		t.Fatalf("expected cons capped at 8, got %d", len(cons))
	}
}

func TestBuildConsGenericFallback(t *testing.T) {
	cons := buildCons(&models.University{}, &models.Course{})
	if len(cons) != 1 {
		t.Fatalf("expected a single generic caution, got %v", cons)
	}
	if !strings.Contains(cons[0], "cross-check") {
		t.Fatalf("unexpected generic caution: %q", cons[0])
	}
}

func TestShortAdviceRuleOrder(t *testing.T) {
	advice := buildShortAdvice(adviceContext{
		Band:        LevelAmbitious,
		BudgetLabel: BudgetOver,
		Risks:       RiskFlags{EnglishGap: true, MathRisk: true, WorkExGap: true},
	})

	wantOrder := []string{
		"AMBITIOUS option",
		"above your current stated budget",
		"improve or prove English",
		"Strong maths is required",
		"full-time work experience",
	}

	last := -1
	for _, fragment := range wantOrder {
		idx := strings.Index(advice, fragment)
		if idx < 0 {
			t.Fatalf("advice missing fragment %q: %s", fragment, advice)
		}
		if idx < last {
			t.Fatalf("fragment %q out of order in: %s", fragment, advice)
		}
		last = idx
	}
}

func TestShortAdviceMinimal(t *testing.T) {
	advice := buildShortAdvice(adviceContext{Band: LevelSafe, BudgetLabel: BudgetVeryComfortable})
	want := "Academically this is a SAFE match for your CGPA. Your budget is very comfortable for this option."
	if advice != want {
		t.Fatalf("advice = %q, want %q", advice, want)
	}
}

func TestShortAdviceUnknownBudget(t *testing.T) {
	advice := buildShortAdvice(adviceContext{Band: LevelModerate, BudgetLabel: BudgetUnknown})
	if !strings.Contains(advice, "Budget evaluation not available.") {
		t.Fatalf("expected unknown-budget sentence, got %q", advice)
	}
}
