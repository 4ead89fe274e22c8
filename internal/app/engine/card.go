package engine

import (
	"strings"

	"github.com/beastconsultancy/pathway/internal/app/models"
)

// EnglishRequirement is the English-requirement detail echoed on a card so
// the frontend can explain what the course actually asks for.
type EnglishRequirement struct {
	MinIELTSOverall    *float64 `json:"min_ielts_overall"`
	MinPTEOverall      *float64 `json:"min_pte_overall"`
	MinDuolingo        *float64 `json:"min_duolingo"`
	InterEnglishOK     bool     `json:"inter_english_ok"`
	CountryAllowsInter bool     `json:"country_allows_inter"`
	EnglishOKNow       bool     `json:"english_ok_now"`
}

// RecommendationCard is one fully annotated course recommendation. A card
// is only built for candidates whose level band is not reject.
type RecommendationCard struct {
	CourseID       string `json:"course_id"`
	CountryCode    string `json:"country_code"`
	CountryName    string `json:"country_name"`
	UniversityName string `json:"university_name"`
	City           string `json:"city"`
	CourseName     string `json:"course_name"`
	SubjectCluster string `json:"subject_cluster"`

	LevelBand LevelBand `json:"level_band"`
	VisaRisk  string    `json:"visa_risk"`
	TierLabel string    `json:"tier_label"`

	TuitionFeeLakhs         float64     `json:"tuition_fee_lakhs"`
	EstimatedLivingLakhs    float64     `json:"estimated_living_lakhs"`
	ExtraCostsLakhs         float64     `json:"extra_costs_lakhs"`
	TotalFirstYearCostLakhs float64     `json:"total_first_year_cost_lakhs"`
	BudgetLabel             BudgetLabel `json:"budget_label"`

	Intakes     []string `json:"intakes"`
	IntakesText string   `json:"intakes_text"`

	MathRequired            bool    `json:"math_required"`
	CodingRequired          bool    `json:"coding_required"`
	IsFlagship              bool    `json:"is_flagship"`
	WithPlacement           bool    `json:"with_placement"`
	TypicalScholarshipLakhs float64 `json:"typical_scholarship_lakhs"`

	EnglishRequirement EnglishRequirement `json:"english_requirement"`

	WhyCountry    []string  `json:"why_country"`
	WhyUniversity []string  `json:"why_university"`
	WhyCourse     []string  `json:"why_course"`
	Pros          []string  `json:"pros"`
	Cons          []string  `json:"cons"`
	RiskFlags     RiskFlags `json:"risk_flags"`
	ShortAdvice   string    `json:"short_advice"`

	OfficialCourseURL string `json:"official_course_url,omitempty"`
}

// buildCard scores one eligible match and assembles its card. It returns
// nil when the academic band comes out reject, so a weak candidate that
// slipped past the filter still never surfaces.
func buildCard(rec models.MatchRecord, profile models.StudentProfile) *RecommendationCard {
	course := rec.Course
	uni := rec.University
	country := rec.Country

	minCGPA := 0.0
	if course.MinCGPAIndia != nil {
		minCGPA = *course.MinCGPAIndia
	}
	band := Classify(profile.CGPA, &minCGPA)
	if band == LevelReject {
		return nil
	}

	total := TotalFirstYearCost(course)
	budgetLabel := BudgetFit(total, profile.BudgetLakhs)

	englishOK, englishGap := CheckEnglish(course, country, profile)
	risks := AssessRisks(rec, profile, band, englishGap, budgetLabel)

	intakesText := "Not specified"
	if len(course.Intakes) > 0 {
		intakesText = strings.Join(course.Intakes, " / ")
	}

	return &RecommendationCard{
		CourseID:       course.ID,
		CountryCode:    country.Code,
		CountryName:    country.Name,
		UniversityName: uni.Name,
		City:           uni.City,
		CourseName:     course.Name,
		SubjectCluster: course.SubjectCluster,

		LevelBand: band,
		VisaRisk:  uni.VisaRisk,
		TierLabel: TierLabel(uni.TierBand),

		TuitionFeeLakhs:         course.TuitionFeeLakhs,
		EstimatedLivingLakhs:    course.EstimatedLivingLakhs,
		ExtraCostsLakhs:         course.ExtraCostsLakhs,
		TotalFirstYearCostLakhs: total,
		BudgetLabel:             budgetLabel,

		Intakes:     course.Intakes,
		IntakesText: intakesText,

		MathRequired:            course.MathRequired,
		CodingRequired:          course.CodingRequired,
		IsFlagship:              course.IsFlagship,
		WithPlacement:           course.WithPlacement,
		TypicalScholarshipLakhs: course.TypicalScholarshipLakhs,

		EnglishRequirement: EnglishRequirement{
			MinIELTSOverall:    course.MinIELTSOverall,
			MinPTEOverall:      course.MinPTEOverall,
			MinDuolingo:        course.MinDuolingo,
			InterEnglishOK:     course.InterEnglishOK,
			CountryAllowsInter: country.AllowInterEnglish,
			EnglishOKNow:       englishOK,
		},

		WhyCountry:    buildWhyCountry(country),
		WhyUniversity: buildWhyUniversity(uni),
		WhyCourse:     buildWhyCourse(course),
		Pros:          buildPros(uni, course),
		Cons:          buildCons(uni, course),
		RiskFlags:     risks,
		ShortAdvice: buildShortAdvice(adviceContext{
			Band:        band,
			BudgetLabel: budgetLabel,
			Risks:       risks,
		}),

		OfficialCourseURL: course.OfficialCourseURL,
	}
}
