package models

// University belongs to exactly one Country in the catalog.
type University struct {
	Name              string   `json:"name"`
	City              string   `json:"city,omitempty"`
	TierBand          string   `json:"tier_band,omitempty"`
	VisaRisk          string   `json:"visa_risk,omitempty"`
	Highlights        []string `json:"highlights,omitempty"`
	Cautions          []string `json:"cautions,omitempty"`
	CityNotes         string   `json:"city_notes,omitempty"`
	RankingBandGlobal string   `json:"ranking_band_global,omitempty"`
	Courses           []Course `json:"courses"`
}
