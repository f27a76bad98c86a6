package entity

type ProfileType string

const (
	ProfileProFrance   ProfileType = "pro_france"
	ProfileCreation    ProfileType = "creation"
	ProfileProForeign  ProfileType = "pro_foreign"
	ProfileParticulier ProfileType = "particulier"
)

// CompanyResult is a candidate returned by the company registry lookup.
type CompanyResult struct {
	Siren      string `json:"siren"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	PostalCode string `json:"postalCode,omitempty"`
	City       string `json:"city,omitempty"`
}

// ProfileData is the normalized buyer profile persisted after the profile
// step. Which fields are required depends on Type (see profile service).
type ProfileData struct {
	Type        ProfileType    `json:"type"`
	Company     *CompanyResult `json:"company,omitempty"`
	CompanyName string         `json:"companyName,omitempty"`
	PostalCode  string         `json:"postalCode,omitempty"`
	City        string         `json:"city,omitempty"`
	Country     string         `json:"country,omitempty"`
	CountryId   int            `json:"countryId,omitempty"`
}

// FranceCountryId is the legacy backend's id for France.
const FranceCountryId = 1
