package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/beastconsultancy/pathway/internal/app/catalog"
	"github.com/beastconsultancy/pathway/internal/pkg/apperrors"
)

const testCatalogDoc = `{
  "countries": [
    {
      "code": "UK",
      "name": "United Kingdom",
      "flag": "🇬🇧",
      "default_currency": "GBP",
      "universities": [
        {
          "name": "University of Birmingham",
          "city": "Birmingham",
          "courses": [
            {"id": "uob-ds", "name": "MSc Data Science", "subject_cluster": "data_science",
             "min_cgpa_india": 7.0, "min_ielts_overall": 6.0,
             "tuition_fee_lakhs": 20, "estimated_living_lakhs": 5},
            {"id": "uob-ai", "name": "MSc Artificial Intelligence", "subject_cluster": "data_science",
             "min_cgpa_india": 7.5, "min_ielts_overall": 6.5,
             "tuition_fee_lakhs": 22, "estimated_living_lakhs": 5}
          ]
        },
        {
          "name": "Coventry University",
          "city": "Coventry",
          "courses": [
            {"id": "cov-mba", "name": "Global MBA", "subject_cluster": "mba",
             "min_cgpa_india": 6.0, "min_ielts_overall": 6.0,
             "tuition_fee_lakhs": 16, "estimated_living_lakhs": 5},
            {"id": "cov-misc", "name": "MSc Something"}
          ]
        }
      ]
    }
  ]
}`

func newTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "uk.json"), []byte(testCatalogDoc), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	cat, err := catalog.Load(dir, []string{"uk.json"}, zerolog.Nop())
	if err != nil {
		t.Fatalf("loading fixture: %v", err)
	}
	return cat
}

func TestListCountries(t *testing.T) {
	svc := NewCatalogService(newTestCatalog(t))

	got := svc.ListCountries()
	if len(got) != 1 {
		t.Fatalf("expected 1 country, got %d", len(got))
	}
	if got[0].Code != "UK" || got[0].Name != "United Kingdom" || got[0].DefaultCurrency != "GBP" {
		t.Fatalf("unexpected country option: %+v", got[0])
	}
}

func TestListClusters(t *testing.T) {
	svc := NewCatalogService(newTestCatalog(t))

	got, err := svc.ListClusters("uk")
	if err != nil {
		t.Fatalf("ListClusters: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("expected 3 clusters, got %d: %+v", len(got), got)
	}

	// First-seen catalog order, with an "other" bucket for courses that
	// state no cluster.
	if got[0].SubjectCluster != "data_science" || got[0].Count != 2 {
		t.Errorf("cluster 0: %+v", got[0])
	}
	if got[0].DisplayName != "Data Science" {
		t.Errorf("display name: %q", got[0].DisplayName)
	}
	if got[0].ExampleCourse != "MSc Data Science" {
		t.Errorf("example course: %q", got[0].ExampleCourse)
	}
	if got[1].SubjectCluster != "mba" || got[1].Count != 1 {
		t.Errorf("cluster 1: %+v", got[1])
	}
	if got[2].SubjectCluster != "other" || got[2].Count != 1 {
		t.Errorf("cluster 2: %+v", got[2])
	}
	if got[2].DisplayName != "Other" {
		t.Errorf("other display name: %q", got[2].DisplayName)
	}
}

func TestListClustersUnknownCountry(t *testing.T) {
	svc := NewCatalogService(newTestCatalog(t))

	_, err := svc.ListClusters("DE")
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected ErrResourceNotFound, got %v", err)
	}
}
