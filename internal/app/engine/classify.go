package engine

// LevelBand is the academic-fit classification of a candidate course.
type LevelBand string

const (
	LevelSafe      LevelBand = "safe"
	LevelModerate  LevelBand = "moderate"
	LevelAmbitious LevelBand = "ambitious"
	LevelReject    LevelBand = "reject"
	LevelUnknown   LevelBand = "unknown"
)

// Classify maps a student's CGPA against a course floor:
//
//	safe      : cgpa >= min + 1.0
//	moderate  : min <= cgpa < min + 1.0
//	ambitious : min - 0.5 <= cgpa < min
//	reject    : cgpa < min - 0.5
//
// A nil floor means the course states no minimum and yields LevelUnknown.
// Callers that want the reference leniency normalize a nil floor to 0
// before calling (see FilterEligible).
func Classify(cgpa float64, minCGPA *float64) LevelBand {
	if minCGPA == nil {
		return LevelUnknown
	}

	diff := cgpa - *minCGPA
	switch {
	case diff >= 1.0:
		return LevelSafe
	case diff >= 0.0:
		return LevelModerate
	case diff >= -0.5:
		return LevelAmbitious
	default:
		return LevelReject
	}
}
