package engine

import "github.com/beastconsultancy/pathway/internal/app/models"

// GlobalAdvice is the aggregate guidance synthesized from the final card
// set: overall headline, English and budget guidance, profile gaps and
// concrete next steps.
type GlobalAdvice struct {
	Headline      string   `json:"headline"`
	EnglishAdvice string   `json:"english_advice"`
	BudgetAdvice  string   `json:"budget_advice"`
	ProfileGaps   []string `json:"profile_gaps"`
	NextSteps     []string `json:"next_steps"`
}

// BuildGlobalAdvice synthesizes guidance over the cards that made the
// final cut. With no cards it short-circuits to a fixed "no strong
// matches" message and two retry suggestions; English and budget advice
// stay empty in that case.
func BuildGlobalAdvice(country *models.Country, profile models.StudentProfile, cards []*RecommendationCard) GlobalAdvice {
	advice := GlobalAdvice{
		ProfileGaps: []string{},
		NextSteps:   []string{},
	}

	if len(cards) == 0 {
		advice.Headline = "No strong matches found in this country with current filters."
		advice.NextSteps = append(advice.NextSteps,
			"Try improving IELTS/PTE score, increasing budget, or exploring more teaching-focused universities.",
			"You can also try a different country or slightly different course combination (e.g., general CS instead of AI-only).")
		return advice
	}

	var safeCount, modCount, ambCount int
	for _, c := range cards {
		switch c.LevelBand {
		case LevelSafe:
			safeCount++
		case LevelModerate:
			modCount++
		case LevelAmbitious:
			ambCount++
		}
	}

	// Only-safe-but-fewer-than-three leaves the headline deliberately
	// blank; the frontend renders it as an absent banner.
	if safeCount >= 3 {
		advice.Headline = "You have several SAFE options – shortlist 2–3 safe and keep 1–2 ambitious as backup."
	} else if modCount > 0 || ambCount > 0 {
		advice.Headline = "Most options are MODERATE or AMBITIOUS – you need strong projects, SOP and LORs."
	}

	switch profile.EnglishProofType {
	case "none", "inter", "medium":
		advice.EnglishAdvice = "Taking IELTS / PTE / Duolingo will open many more universities and make visa stronger, " +
			"even if some accept Inter/Medium English."
	default:
		advice.EnglishAdvice = "Your chosen English test looks okay; just ensure you meet each course's minimum sub-scores."
	}

	overBudget := false
	mathRisk := false
	workExGap := false
	for _, c := range cards {
		if c.BudgetLabel == BudgetOver {
			overBudget = true
		}
		if c.RiskFlags.MathRisk {
			mathRisk = true
		}
		if c.RiskFlags.WorkExGap {
			workExGap = true
		}
	}

	if overBudget {
		advice.BudgetAdvice = "Some options are above your current budget. Plan for extra funds, education loans or scholarships, " +
			"or target lower-cost cities/universities."
	} else {
		advice.BudgetAdvice = "Your budget seems reasonable for the recommended universities."
	}

	if mathRisk {
		advice.ProfileGaps = append(advice.ProfileGaps,
			"Strengthen your maths and statistics basics – especially for Data Science / AI / Analytics programs.")
	}
	if workExGap {
		advice.ProfileGaps = append(advice.ProfileGaps,
			"More relevant full-time work experience will make your MBA / Project Management profile much stronger.")
	}

	switch country.Name {
	case "United Kingdom":
		advice.NextSteps = append(advice.NextSteps,
			"For the UK, track university application deadlines and CAS dates and always confirm latest UKVI visa rules.")
	case "United States":
		advice.NextSteps = append(advice.NextSteps,
			"For the US, check if GRE/GMAT is recommended for your course and plan applications 8–12 months before intake.")
	}

	advice.NextSteps = append(advice.NextSteps,
		"Prepare a strong SOP, updated CV, transcripts, and at least 1–2 solid LORs before you start applying.")

	return advice
}
