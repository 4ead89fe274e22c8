package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/beastconsultancy/pathway/internal/app/models"
	"github.com/beastconsultancy/pathway/internal/pkg/apperrors"
)

// sourceFile matches the two accepted root shapes of a data file: either
// a wrapper {"countries": [...]} or a single country object.
type sourceFile struct {
	Countries []models.Country `json:"countries"`

	// single-country shape
	Code         string              `json:"code"`
	Name         string              `json:"name"`
	Universities []models.University `json:"universities"`
}

// Load reads the configured data files from dir and merges them into one
// Catalog. Missing files are skipped with a warning, as are files whose
// root shape is not recognized. Loading fails hard only when no country
// record could be read at all.
func Load(dir string, files []string, lgr zerolog.Logger) (*Catalog, error) {
	var countries []*models.Country

	for _, name := range files {
		path := filepath.Join(dir, name)

		raw, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				lgr.Warn().Str("file", name).Msg("Catalog file not found, skipping")
				continue
			}
			return nil, fmt.Errorf("reading catalog file %s: %w", name, err)
		}

		loaded, err := parseFile(raw)
		if err != nil {
			return nil, fmt.Errorf("parsing catalog file %s: %w", name, err)
		}
		if loaded == nil {
			lgr.Warn().Str("file", name).Msg("Catalog file has unexpected format, skipping")
			continue
		}

		countries = append(countries, loaded...)
		lgr.Info().Str("file", name).Int("countries", len(loaded)).Msg("Catalog file loaded")
	}

	if len(countries) == 0 {
		return nil, apperrors.ErrNoCountriesLoaded
	}

	cat := newCatalog(countries)
	lgr.Info().
		Int("countries", len(cat.countries)).
		Int("courses", len(cat.records)).
		Msg("Catalog ready")
	return cat, nil
}

// parseFile decodes one data file. It returns (nil, nil) for a valid JSON
// document that is neither of the two accepted shapes.
func parseFile(raw []byte) ([]*models.Country, error) {
	var src sourceFile
	if err := json.Unmarshal(raw, &src); err != nil {
		return nil, err
	}

	if len(src.Countries) > 0 {
		out := make([]*models.Country, 0, len(src.Countries))
		for i := range src.Countries {
			out = append(out, &src.Countries[i])
		}
		return out, nil
	}

	if src.Code != "" && len(src.Universities) > 0 {
		var single models.Country
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil, err
		}
		return []*models.Country{&single}, nil
	}

	return nil, nil
}
