package dto

// CountryOption is the minimal country entry for frontend dropdowns.
type CountryOption struct {
	Code            string `json:"code"`
	Name            string `json:"name"`
	Flag            string `json:"flag"`
	DefaultCurrency string `json:"default_currency"`
}

// ClusterSummary describes one subject cluster available in a country.
type ClusterSummary struct {
	SubjectCluster string `json:"subject_cluster"`
	DisplayName    string `json:"display_name"`
	ExampleCourse  string `json:"example_course"`
	Count          int    `json:"count"`
}
