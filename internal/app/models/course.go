package models

// Course is a single program offered by a university. Optional numeric
// requirements are pointers so "not stated" stays distinct from zero.
type Course struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	SubjectCluster string `json:"subject_cluster,omitempty"`

	MinCGPAIndia          *float64 `json:"min_cgpa_india,omitempty"`
	MaxBacklogs           *int     `json:"max_backlogs,omitempty"`
	AcceptsBacklogHistory *bool    `json:"accepts_backlog_history,omitempty"` // absent means true

	TuitionFeeLakhs      float64 `json:"tuition_fee_lakhs,omitempty"`
	EstimatedLivingLakhs float64 `json:"estimated_living_lakhs,omitempty"`
	ExtraCostsLakhs      float64 `json:"extra_costs_lakhs,omitempty"`

	Intakes []string `json:"intakes,omitempty"`

	MinIELTSOverall *float64 `json:"min_ielts_overall,omitempty"`
	MinPTEOverall   *float64 `json:"min_pte_overall,omitempty"`
	MinDuolingo     *float64 `json:"min_duolingo,omitempty"`
	InterEnglishOK  bool     `json:"inter_english_ok,omitempty"`

	MathRequired       bool    `json:"math_required,omitempty"`
	CodingRequired     bool    `json:"coding_required,omitempty"`
	WorkExpRequiredYrs float64 `json:"work_exp_required_years,omitempty"`

	IsFlagship              bool     `json:"is_flagship,omitempty"`
	WithPlacement           bool     `json:"with_placement,omitempty"`
	TypicalScholarshipLakhs float64  `json:"typical_scholarship_lakhs,omitempty"`
	CourseHighlights        []string `json:"course_highlights,omitempty"`
	CourseCautions          []string `json:"course_cautions,omitempty"`
	OfficialCourseURL       string   `json:"official_course_url,omitempty"`
}

// AcceptsBacklogs reports whether the course tolerates any backlog history.
// The catalog treats an unstated flag as acceptance.
func (c *Course) AcceptsBacklogs() bool {
	if c.AcceptsBacklogHistory == nil {
		return true
	}
	return *c.AcceptsBacklogHistory
}
