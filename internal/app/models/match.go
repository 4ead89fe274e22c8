package models

// MatchRecord is one (country, university, course) triple flattened out of
// the catalog, with the lookup fields denormalized. It is the unit the
// engine filters and scores; created fresh per catalog load, never stored.
type MatchRecord struct {
	CountryCode    string
	CountryName    string
	UniversityName string
	City           string
	CourseID       string

	Country    *Country
	University *University
	Course     *Course
}
