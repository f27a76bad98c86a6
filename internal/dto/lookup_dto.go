package dto

import (
	"ux-matching-be/internal/entity"
	"ux-matching-be/pkg/legacy"
)

type SirenSearchResponse struct {
	Companies []entity.CompanyResult `json:"companies"`
}

type PostalCodeResponse struct {
	Results []legacy.PostalCodeCity `json:"results"`
}

type CountryOption struct {
	Id    int    `json:"id"`
	Label string `json:"label"`
}

// CountriesResponse keeps the legacy split: a short priority list shown
// first and the complete list behind it.
type CountriesResponse struct {
	Priority []CountryOption `json:"priority"`
	All      []CountryOption `json:"all"`
}

type BuyerCheckRequest struct {
	Email      string `json:"email" validate:"required,email"`
	RubriqueId string `json:"rubriqueId,omitempty"`
	UrlPage    string `json:"urlPage,omitempty"`
}

type BuyerCheckResponse struct {
	IsKnown     bool `json:"isKnown"`
	IsDuplicate bool `json:"isDuplicate"`
}
