package dto

import "ux-matching-be/internal/entity"

// ProfileRequest carries one of the four buyer-profile shapes. Which
// fields are required depends on Type; the profile service owns that rule,
// the tags only reject junk.
type ProfileRequest struct {
	Type        string                `json:"type" validate:"required,oneof=pro_france creation pro_foreign particulier"`
	Company     *entity.CompanyResult `json:"company,omitempty"`
	CompanyName string                `json:"companyName,omitempty"`
	PostalCode  string                `json:"postalCode,omitempty"`
	City        string                `json:"city,omitempty"`
	Country     string                `json:"country,omitempty"`
	CountryId   int                   `json:"countryId,omitempty"`
}

type ProfileResponse struct {
	Profile *entity.ProfileData `json:"profile"`
}
