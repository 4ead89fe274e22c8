package engine

import "github.com/beastconsultancy/pathway/internal/app/models"

// CheckEnglish decides whether the student's English proof satisfies the
// course and whether it leaves a gap worth advising on. Dispatch is on the
// proof type; a course that states no minimum for the offered test counts
// as satisfied. "inter"/"medium" claims need both the course and the
// country to allow them. Anything unrecognized is treated like no proof at
// all, so unknown types never silently pass.
func CheckEnglish(course *models.Course, country *models.Country, profile models.StudentProfile) (ok bool, gap bool) {
	score := profile.EnglishScore

	switch profile.EnglishProofType {
	case "ielts":
		return scoreAgainst(course.MinIELTSOverall, score)
	case "pte":
		return scoreAgainst(course.MinPTEOverall, score)
	case "duolingo":
		return scoreAgainst(course.MinDuolingo, score)
	case "inter", "medium":
		if course.InterEnglishOK && country != nil && country.AllowInterEnglish {
			return true, false
		}
		return false, true
	default:
		// covers "none", empty and unrecognized proof types
		return false, true
	}
}

func scoreAgainst(minimum *float64, score float64) (ok bool, gap bool) {
	if minimum == nil {
		return true, false
	}
	return score >= *minimum, score < *minimum
}
