package dto

import (
	"strings"
	"time"

	"github.com/beastconsultancy/pathway/internal/app/engine"
	"github.com/beastconsultancy/pathway/internal/app/models"
)

// RecommendRequest is the profile payload posted by the frontend. Numeric
// fields use the Flex types so malformed input degrades to zero instead of
// rejecting the request.
type RecommendRequest struct {
	Name              string    `json:"name"`
	CountryCode       string    `json:"country_code"`
	CGPA              FlexFloat `json:"cgpa"`
	BacklogsCount     FlexInt   `json:"backlogs_count"`
	EnglishProofType  string    `json:"english_proof_type"`
	EnglishScore      FlexFloat `json:"english_score"`
	BudgetLakhs       FlexFloat `json:"budget_lakhs"`
	WorkExYears       FlexFloat `json:"work_ex_years"`
	NonMathBackground bool      `json:"non_math_background"`
	SubjectClusters   []string  `json:"subject_clusters"`
	TargetIntake      string    `json:"target_intake"`
	RequestedCount    FlexInt   `json:"requested_count"`
}

// Normalize applies the documented defaults and derivations and returns
// the typed profile plus the cleaned subject-cluster list. The requested
// count is clamped later by the engine's selection policy.
func (r *RecommendRequest) Normalize() (models.StudentProfile, []string) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		name = "Student"
	}

	countryCode := strings.ToUpper(strings.TrimSpace(r.CountryCode))
	if countryCode == "" {
		countryCode = "UK"
	}

	clusters := make([]string, 0, len(r.SubjectClusters))
	for _, c := range r.SubjectClusters {
		if c != "" {
			clusters = append(clusters, c)
		}
	}

	profile := models.StudentProfile{
		Name:              name,
		CountryCode:       countryCode,
		CGPA:              r.CGPA.Value(),
		BacklogsCount:     r.BacklogsCount.Value(),
		EnglishProofType:  strings.ToLower(r.EnglishProofType),
		EnglishScore:      r.EnglishScore.Value(),
		BudgetLakhs:       r.BudgetLakhs.Value(),
		WorkExYears:       r.WorkExYears.Value(),
		NonMathBackground: r.NonMathBackground,
		TargetIntake:      r.TargetIntake,
		IntakeMonth:       models.MonthFromIntake(r.TargetIntake),
	}
	return profile, clusters
}

// CountrySummary is the short country block echoed on the response.
type CountrySummary struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Flag string `json:"flag"`
}

// RecommendStats aggregates counts over the recommendation run.
type RecommendStats struct {
	TotalMatchesBeforeLimit int `json:"total_matches_before_limit"`
	TotalShown              int `json:"total_shown"`
	SafeCount               int `json:"safe_count"`
	ModerateCount           int `json:"moderate_count"`
	AmbitiousCount          int `json:"ambitious_count"`
}

// RecommendResponse is the full recommendation payload.
type RecommendResponse struct {
	GeneratedAt     time.Time                    `json:"generated_at"`
	StudentProfile  models.StudentProfile        `json:"student_profile"`
	Country         CountrySummary               `json:"country"`
	Stats           RecommendStats               `json:"stats"`
	Recommendations []*engine.RecommendationCard `json:"recommendations"`
	GlobalAdvice    engine.GlobalAdvice          `json:"global_advice"`
}
