package models

// VisaRules holds the visa-related facts advertised for a country.
type VisaRules struct {
	WorkDuringStudiesHoursPerWeek int    `json:"work_during_studies_hours_per_week,omitempty"`
	PostStudyWorkOptions          string `json:"post_study_work_options,omitempty"`
}

// Country is a destination country in the catalog. Immutable after load.
type Country struct {
	Code              string       `json:"code"`
	Name              string       `json:"name"`
	Flag              string       `json:"flag,omitempty"`
	DefaultCurrency   string       `json:"default_currency,omitempty"`
	AllowInterEnglish bool         `json:"allow_inter_english"`
	AdmissionNotes    string       `json:"admission_notes,omitempty"`
	ReasonsToChoose   []string     `json:"reasons_to_choose,omitempty"`
	VisaRules         *VisaRules   `json:"visa_rules,omitempty"`
	Universities      []University `json:"universities"`
}
