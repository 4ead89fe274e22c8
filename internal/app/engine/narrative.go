package engine

import (
	"fmt"
	"strings"

	"github.com/beastconsultancy/pathway/internal/app/models"
)

const maxWhyReasons = 3
const maxProsCons = 8

var tierLabels = map[string]string{
	"russell_group_top": "Russell Group / Top UK research university",
	"public_research":   "Public research university",
	"teaching_focused":  "Teaching-focused / modern university",
	"general_public":    "General public university",
	"private":           "Private / specialist institution",
}

// TierLabel translates a catalog tier band into display text.
func TierLabel(tierBand string) string {
	if label, ok := tierLabels[tierBand]; ok {
		return label
	}
	return "General university"
}

func buildWhyCountry(country *models.Country) []string {
	var reasons []string
	for i, r := range country.ReasonsToChoose {
		if i >= maxWhyReasons {
			break
		}
		reasons = append(reasons, r)
	}

	if country.AdmissionNotes != "" {
		reasons = append(reasons, country.AdmissionNotes)
	}

	if vr := country.VisaRules; vr != nil {
		if vr.WorkDuringStudiesHoursPerWeek > 0 {
			reasons = append(reasons, fmt.Sprintf(
				"Can usually work up to %d hours/week during studies (check latest official rules).",
				vr.WorkDuringStudiesHoursPerWeek))
		}
		if vr.PostStudyWorkOptions != "" {
			reasons = append(reasons, "Post-study work route: "+vr.PostStudyWorkOptions)
		}
	}
	return reasons
}

func buildWhyUniversity(uni *models.University) []string {
	var reasons []string
	for i, h := range uni.Highlights {
		if i >= maxWhyReasons {
			break
		}
		reasons = append(reasons, h)
	}

	if uni.CityNotes != "" {
		reasons = append(reasons, uni.CityNotes)
	}
	if uni.RankingBandGlobal != "" {
		reasons = append(reasons, fmt.Sprintf("Approx global ranking band: %s.", uni.RankingBandGlobal))
	}
	return reasons
}

func buildWhyCourse(course *models.Course) []string {
	var reasons []string
	for i, h := range course.CourseHighlights {
		if i >= maxWhyReasons {
			break
		}
		reasons = append(reasons, h)
	}

	if course.WithPlacement {
		reasons = append(reasons, "Includes placement / internship component (subject to availability).")
	}
	if course.IsFlagship {
		reasons = append(reasons, "Flagship program of the university in this subject area.")
	}
	return reasons
}

func buildPros(uni *models.University, course *models.Course) []string {
	pros := make([]string, 0, len(uni.Highlights)+len(course.CourseHighlights))
	pros = append(pros, uni.Highlights...)
	pros = append(pros, course.CourseHighlights...)
	if len(pros) > maxProsCons {
		pros = pros[:maxProsCons]
	}
	return pros
}

func buildCons(uni *models.University, course *models.Course) []string {
	cons := make([]string, 0, len(uni.Cautions)+len(course.CourseCautions))
	cons = append(cons, uni.Cautions...)
	cons = append(cons, course.CourseCautions...)

	if len(cons) == 0 {
		cons = append(cons,
			"No major public red flags, but always cross-check recent reviews, outcomes and visa updates.")
	}
	if len(cons) > maxProsCons {
		cons = cons[:maxProsCons]
	}
	return cons
}

// adviceContext is everything the per-card advice rules may look at.
type adviceContext struct {
	Band        LevelBand
	BudgetLabel BudgetLabel
	Risks       RiskFlags
}

// adviceRule pairs a predicate with the sentence it contributes. Rules run
// in declaration order so the advice text stays deterministic.
type adviceRule struct {
	applies func(adviceContext) bool
	text    func(adviceContext) string
}

var budgetAdviceTexts = map[BudgetLabel]string{
	BudgetVeryComfortable: "Your budget is very comfortable for this option.",
	BudgetTight:           "Your budget is just enough; you must manage money carefully.",
	BudgetOver:            "This is above your current stated budget. Consider scholarships or higher funds.",
	BudgetUnknown:         "Budget evaluation not available.",
}

var adviceRules = []adviceRule{
	{
		applies: func(c adviceContext) bool { return c.Band == LevelSafe },
		text:    func(adviceContext) string { return "Academically this is a SAFE match for your CGPA." },
	},
	{
		applies: func(c adviceContext) bool { return c.Band == LevelModerate },
		text:    func(adviceContext) string { return "Academically this is a MODERATE (balanced) match for your CGPA." },
	},
	{
		applies: func(c adviceContext) bool { return c.Band == LevelAmbitious },
		text: func(adviceContext) string {
			return "This is an AMBITIOUS option for your CGPA. You must show strong projects/SOP."
		},
	},
	{
		applies: func(adviceContext) bool { return true },
		text:    func(c adviceContext) string { return budgetAdviceTexts[c.BudgetLabel] },
	},
	{
		applies: func(c adviceContext) bool { return c.Risks.EnglishGap },
		text: func(adviceContext) string {
			return "You must improve or prove English (IELTS/PTE/Duolingo) to match this course requirement."
		},
	},
	{
		applies: func(c adviceContext) bool { return c.Risks.MathRisk },
		text: func(adviceContext) string {
			return "Strong maths is required – revise core maths & statistics before going for this program."
		},
	},
	{
		applies: func(c adviceContext) bool { return c.Risks.WorkExGap },
		text: func(adviceContext) string {
			return "More relevant full-time work experience would make your profile stronger for this course."
		},
	},
}

func buildShortAdvice(ctx adviceContext) string {
	var parts []string
	for _, rule := range adviceRules {
		if rule.applies(ctx) {
			parts = append(parts, rule.text(ctx))
		}
	}
	return strings.Join(parts, " ")
}
