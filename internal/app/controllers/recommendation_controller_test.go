package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/beastconsultancy/pathway/internal/app/catalog"
	"github.com/beastconsultancy/pathway/internal/app/engine"
	"github.com/beastconsultancy/pathway/internal/app/models/dto"
	"github.com/beastconsultancy/pathway/internal/app/services"
)

const testCatalogDoc = `{
  "countries": [
    {
      "code": "UK",
      "name": "United Kingdom",
      "flag": "🇬🇧",
      "universities": [
        {
          "name": "University of Birmingham",
          "city": "Birmingham",
          "courses": [
            {"id": "uob-ds", "name": "MSc Data Science", "subject_cluster": "data_science",
             "min_cgpa_india": 7.0, "min_ielts_overall": 6.0,
             "tuition_fee_lakhs": 20, "estimated_living_lakhs": 5}
          ]
        }
      ]
    }
  ]
}`

// setupTestRouter wires a router over a small fixture catalog, mirroring
// the production route layout for the handlers under test.
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "uk.json"), []byte(testCatalogDoc), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	cat, err := catalog.Load(dir, []string{"uk.json"}, zerolog.Nop())
	if err != nil {
		t.Fatalf("loading fixture: %v", err)
	}

	recommendationController := NewRecommendationController(services.NewRecommendationService(cat,
		engine.DefaultRecommendationCount, engine.MaxRecommendationCount))
	catalogController := NewCatalogController(services.NewCatalogService(cat))

	router := gin.New()
	router.GET("/", recommendationController.Root)
	router.GET("/api/v1/countries", catalogController.GetCountries)
	router.GET("/api/v1/countries/:code/clusters", catalogController.GetClusters)
	router.POST("/api/v1/recommend", recommendationController.Recommend)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRecommendEndpoint(t *testing.T) {
	router := setupTestRouter(t)

	body := `{
		"name": "Priya",
		"country_code": "uk",
		"cgpa": "8.2",
		"english_proof_type": "ielts",
		"english_score": 7.0,
		"budget_lakhs": 35,
		"subject_clusters": ["data_science"]
	}`
	rec := doRequest(t, router, http.MethodPost, "/api/v1/recommend", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp dto.RecommendResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Stats.TotalShown != 1 || len(resp.Recommendations) != 1 {
		t.Fatalf("stats = %+v, cards = %d", resp.Stats, len(resp.Recommendations))
	}
	if resp.Recommendations[0].CourseID != "uob-ds" {
		t.Fatalf("unexpected card %s", resp.Recommendations[0].CourseID)
	}
	if resp.Recommendations[0].LevelBand != "safe" {
		t.Fatalf("level band = %s", resp.Recommendations[0].LevelBand)
	}
}

func TestRecommendEndpointUnknownCountry(t *testing.T) {
	router := setupTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/recommend", `{"country_code": "DE", "cgpa": 8.0}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding error response: %v", err)
	}
	if resp.Error.Code != dto.ErrorCodeUnknownCountry {
		t.Fatalf("error code = %s", resp.Error.Code)
	}
	if resp.Error.Field != "country_code" {
		t.Fatalf("error field = %s", resp.Error.Field)
	}
}

func TestRecommendEndpointMalformedBody(t *testing.T) {
	router := setupTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/recommend", `{"cgpa": `)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding error response: %v", err)
	}
	if resp.Error.Code != dto.ErrorCodeValidationFailed {
		t.Fatalf("error code = %s", resp.Error.Code)
	}
}

func TestCountriesEndpoint(t *testing.T) {
	router := setupTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/countries", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Data []dto.CountryOption `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].Code != "UK" {
		t.Fatalf("countries = %+v", resp.Data)
	}
}

func TestClustersEndpointNotFound(t *testing.T) {
	router := setupTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/countries/DE/clusters", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestRootBanner(t *testing.T) {
	router := setupTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "available_endpoints") {
		t.Fatalf("banner body = %s", rec.Body.String())
	}
}
