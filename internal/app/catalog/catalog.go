// Package catalog loads the country/university/course data files and
// exposes them as an immutable, pre-flattened index. The catalog is built
// once at startup and injected into the engine; nothing mutates it after
// load.
package catalog

import (
	"strings"

	"github.com/beastconsultancy/pathway/internal/app/models"
)

// Catalog is the read-only catalog index.
type Catalog struct {
	countries []*models.Country
	byCode    map[string]*models.Country
	records   []models.MatchRecord
}

// newCatalog builds the code lookup and the flattened records in file
// iteration order.
func newCatalog(countries []*models.Country) *Catalog {
	c := &Catalog{
		countries: countries,
		byCode:    make(map[string]*models.Country, len(countries)),
	}

	for _, country := range countries {
		c.byCode[strings.ToUpper(country.Code)] = country

		for ui := range country.Universities {
			uni := &country.Universities[ui]
			for ci := range uni.Courses {
				course := &uni.Courses[ci]
				c.records = append(c.records, models.MatchRecord{
					CountryCode:    country.Code,
					CountryName:    country.Name,
					UniversityName: uni.Name,
					City:           uni.City,
					CourseID:       course.ID,
					Country:        country,
					University:     uni,
					Course:         course,
				})
			}
		}
	}
	return c
}

// Countries returns every loaded country in load order.
func (c *Catalog) Countries() []*models.Country {
	return c.countries
}

// ByCode looks up a country by its upper-cased code.
func (c *Catalog) ByCode(code string) (*models.Country, bool) {
	country, ok := c.byCode[strings.ToUpper(code)]
	return country, ok
}

// Records returns the flattened (country, university, course) triples in
// stable catalog order.
func (c *Catalog) Records() []models.MatchRecord {
	return c.records
}
