package dto

import (
	"time"

	"ux-matching-be/internal/entity"
)

type CreateSessionRequest struct {
	// RubriqueId switches the questionnaire to the server-driven variant.
	RubriqueId string `json:"rubriqueId"`
}

type SessionResponse struct {
	Id                  string              `json:"id"`
	RubriqueId          string              `json:"rubriqueId,omitempty"`
	Step                string              `json:"step,omitempty"`
	Answers             map[int][]string    `json:"answers"`
	OtherTexts          map[int]string      `json:"otherTexts"`
	DynamicAnswers      map[string][]string `json:"dynamicAnswers"`
	Profile             *entity.ProfileData `json:"profile"`
	Contact             *entity.ContactData `json:"contact"`
	SelectedSupplierIds []string            `json:"selectedSupplierIds"`
	StartedAt           *time.Time          `json:"startedAt"`
}
