package engine

import "github.com/beastconsultancy/pathway/internal/app/models"

// FilterEligible runs the coarse pass/reject gate over the flattened
// catalog: country match, optional subject-cluster set, backlog policy and
// the academic floor. Survivors keep catalog iteration order. An intake
// mismatch is informational only and never rejects.
func FilterEligible(records []models.MatchRecord, profile models.StudentProfile, clusters []string) []models.MatchRecord {
	clusterSet := make(map[string]struct{}, len(clusters))
	for _, c := range clusters {
		clusterSet[c] = struct{}{}
	}

	var matches []models.MatchRecord
	for _, rec := range records {
		if rec.CountryCode != profile.CountryCode {
			continue
		}

		course := rec.Course

		if len(clusterSet) > 0 {
			if _, ok := clusterSet[course.SubjectCluster]; !ok {
				continue
			}
		}

		if course.MaxBacklogs != nil && profile.BacklogsCount > *course.MaxBacklogs {
			continue
		}
		if !course.AcceptsBacklogs() && profile.BacklogsCount > 0 {
			continue
		}

		// An unstated floor is treated as 0 here, so LevelUnknown cannot
		// surface through this path.
		minCGPA := 0.0
		if course.MinCGPAIndia != nil {
			minCGPA = *course.MinCGPAIndia
		}
		if Classify(profile.CGPA, &minCGPA) == LevelReject {
			continue
		}

		matches = append(matches, rec)
	}
	return matches
}
