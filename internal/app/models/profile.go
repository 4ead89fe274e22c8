package models

import (
	"strings"
	"unicode"
)

// StudentProfile is the normalized per-request view of the applicant.
// It is built once at the transport boundary; the engine only ever sees
// well-typed numeric values here.
type StudentProfile struct {
	Name              string  `json:"name"`
	CountryCode       string  `json:"country_code"`
	CGPA              float64 `json:"cgpa"`
	BacklogsCount     int     `json:"backlogs_count"`
	EnglishProofType  string  `json:"english_proof_type"`
	EnglishScore      float64 `json:"english_score"`
	BudgetLakhs       float64 `json:"budget_lakhs"`
	WorkExYears       float64 `json:"work_ex_years"`
	NonMathBackground bool    `json:"non_math_background"`
	TargetIntake      string  `json:"target_intake"`
	IntakeMonth       string  `json:"intake_month"`
}

// MonthFromIntake derives a 3-letter month abbreviation from a free-text
// intake string: "sep 2026" -> "Sep", "January 2027" -> "Jan". Truncation
// is by rune so non-ASCII input never splits a character.
func MonthFromIntake(intake string) string {
	parts := strings.Fields(strings.TrimSpace(intake))
	if len(parts) == 0 {
		return ""
	}
	month := []rune(strings.ToLower(parts[0]))
	if len(month) > 3 {
		month = month[:3]
	}
	return string(unicode.ToUpper(month[0])) + string(month[1:])
}
