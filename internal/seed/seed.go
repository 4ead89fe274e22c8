package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	appModels "github.com/beastconsultancy/pathway/internal/app/models"
)

// CreateDefaultCatalog writes a small starter catalog file when none of
// the configured data files exist, so a fresh checkout can serve
// recommendations immediately. Existing files are never touched.
func CreateDefaultCatalog(dataDir string, files []string, lgr zerolog.Logger) error {
	for _, name := range files {
		if _, err := os.Stat(filepath.Join(dataDir, name)); err == nil {
			// At least one real data file exists; nothing to seed.
			return nil
		}
	}

	if len(files) == 0 {
		return nil
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating catalog data directory: %w", err)
	}

	target := filepath.Join(dataDir, files[0])
	raw, err := json.MarshalIndent(starterCatalog(), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding starter catalog: %w", err)
	}

	if err := os.WriteFile(target, raw, 0o644); err != nil {
		return fmt.Errorf("writing starter catalog: %w", err)
	}

	lgr.Info().Str("file", target).Msg("No catalog files found, wrote starter catalog")
	return nil
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// starterCatalog is a minimal but fully populated UK catalog.
func starterCatalog() map[string]interface{} {
	uk := appModels.Country{
		Code:              "UK",
		Name:              "United Kingdom",
		Flag:              "🇬🇧",
		DefaultCurrency:   "GBP",
		AllowInterEnglish: true,
		AdmissionNotes:    "Most UK universities accept 3-year Indian bachelor degrees for PG admission.",
		ReasonsToChoose: []string{
			"1-year master's programs keep total cost and time low.",
			"Graduate Route visa allows staying back after study.",
			"Large Indian student community and support networks.",
		},
		VisaRules: &appModels.VisaRules{
			WorkDuringStudiesHoursPerWeek: 20,
			PostStudyWorkOptions:          "Graduate Route: 2 years after master's.",
		},
		Universities: []appModels.University{
			{
				Name:              "University of Birmingham",
				City:              "Birmingham",
				TierBand:          "russell_group_top",
				VisaRisk:          "low",
				Highlights:        []string{"Russell Group member", "Strong computer science department"},
				Cautions:          []string{"Competitive admissions for popular courses"},
				CityNotes:         "Large student city with moderate living costs.",
				RankingBandGlobal: "80-110",
				Courses: []appModels.Course{
					{
						ID:                   "uk-bham-msc-ds",
						Name:                 "MSc Data Science",
						SubjectCluster:       "data_science",
						MinCGPAIndia:         floatPtr(7.0),
						MaxBacklogs:          intPtr(4),
						TuitionFeeLakhs:      26,
						EstimatedLivingLakhs: 10,
						ExtraCostsLakhs:      2,
						Intakes:              []string{"Sep"},
						MinIELTSOverall:      floatPtr(6.5),
						MinPTEOverall:        floatPtr(64),
						MathRequired:         true,
						IsFlagship:           true,
						WithPlacement:        false,
						CourseHighlights:     []string{"Strong applied machine learning modules"},
					},
					{
						ID:                   "uk-bham-msc-mgmt",
						Name:                 "MSc Management",
						SubjectCluster:       "management",
						MinCGPAIndia:         floatPtr(6.5),
						TuitionFeeLakhs:      24,
						EstimatedLivingLakhs: 10,
						ExtraCostsLakhs:      2,
						Intakes:              []string{"Sep", "Jan"},
						MinIELTSOverall:      floatPtr(6.5),
						CourseHighlights:     []string{"No prior business background required"},
					},
				},
			},
			{
				Name:       "Coventry University",
				City:       "Coventry",
				TierBand:   "teaching_focused",
				VisaRisk:   "low",
				Highlights: []string{"Affordable tuition", "Practical, employment-focused teaching"},
				CityNotes:  "Compact city with low living costs.",
				Courses: []appModels.Course{
					{
						ID:                   "uk-cov-msc-it",
						Name:                 "MSc Computing",
						SubjectCluster:       "computer_science",
						MinCGPAIndia:         floatPtr(6.0),
						TuitionFeeLakhs:      17,
						EstimatedLivingLakhs: 8,
						ExtraCostsLakhs:      1,
						Intakes:              []string{"Sep", "Jan", "May"},
						MinIELTSOverall:      floatPtr(6.0),
						InterEnglishOK:       true,
						WithPlacement:        true,
						CourseHighlights:     []string{"Optional extended placement year"},
					},
				},
			},
		},
	}

	return map[string]interface{}{
		"countries": []appModels.Country{uk},
	}
}
