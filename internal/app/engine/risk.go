package engine

import "github.com/beastconsultancy/pathway/internal/app/models"

// RiskFlags is the fixed set of per-candidate warning flags surfaced on a
// recommendation card.
type RiskFlags struct {
	BudgetRisk   bool `json:"budget_risk"`
	EnglishGap   bool `json:"english_gap"`
	CGPAGap      bool `json:"cgpa_gap"`
	MathRisk     bool `json:"math_risk"`
	WorkExGap    bool `json:"workex_gap"`
	VisaRiskHigh bool `json:"visa_risk_high"`
}

// AssessRisks derives the flag set from the classification results plus
// course and university attributes. Pure function, no hidden state.
func AssessRisks(rec models.MatchRecord, profile models.StudentProfile, band LevelBand, englishGap bool, budgetLabel BudgetLabel) RiskFlags {
	return RiskFlags{
		BudgetRisk:   budgetLabel == BudgetOver,
		EnglishGap:   englishGap,
		CGPAGap:      band == LevelAmbitious,
		MathRisk:     rec.Course.MathRequired && profile.NonMathBackground,
		WorkExGap:    rec.Course.WorkExpRequiredYrs > profile.WorkExYears,
		VisaRiskHigh: rec.University.VisaRisk == "high",
	}
}
