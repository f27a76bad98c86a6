package store

import (
	"time"

	"ux-matching-be/internal/entity"
)

// Session is the full funnel state for one visitor. It is serialized as a
// single JSON blob under one storage key and never survives a funnel
// restart: the entry view resets it on every mount.
//
// Static questionnaire answers are keyed by integer question id, dynamic
// (server-driven) ones by question code. The two namespaces never mix.
type Session struct {
	ID         string `json:"id"`
	RubriqueId string `json:"rubrique_id,omitempty"`

	Answers        map[int][]string    `json:"answers"`
	OtherTexts     map[int]string      `json:"other_texts"`
	DynamicAnswers map[string][]string `json:"dynamic_answers"`

	Profile *entity.ProfileData `json:"profile"`
	Contact *entity.ContactData `json:"contact"`

	SelectedSupplierIds []string `json:"selected_supplier_ids"`

	StartedAt *time.Time `json:"started_at"`

	// Sequencer position within the questionnaire step.
	Step          string `json:"step"`
	QuestionIndex int    `json:"question_index"`
}

// NewSession returns an empty session. rubriqueId selects the dynamic
// questionnaire; empty means the static one.
func NewSession(id, rubriqueId string) *Session {
	s := &Session{ID: id, RubriqueId: rubriqueId}
	s.Reset()
	return s
}

// SetAnswer replaces the answer set for a static question. Option ids are
// not validated against the source here; the sequencer owns that.
func (s *Session) SetAnswer(questionId int, optionIds []string) {
	s.Answers[questionId] = append([]string(nil), optionIds...)
}

// SetOtherText overwrites the free-text supplement of a static question.
func (s *Session) SetOtherText(questionId int, text string) {
	s.OtherTexts[questionId] = text
}

// SetDynamicAnswer replaces the answer set for a server-driven question.
func (s *Session) SetDynamicAnswer(questionCode string, optionCodes []string) {
	s.DynamicAnswers[questionCode] = append([]string(nil), optionCodes...)
}

// ResetDynamicAnswers drops every dynamic answer, used when the entry
// answer changes and the fetched path is invalidated.
func (s *Session) ResetDynamicAnswers() {
	s.DynamicAnswers = map[string][]string{}
}

// SetProfile overwrites the whole profile record atomically.
func (s *Session) SetProfile(data *entity.ProfileData) {
	s.Profile = data
}

// SetContact overwrites the contact form slice.
func (s *Session) SetContact(data *entity.ContactData) {
	s.Contact = data
}

// SetSelectedSupplierIds replaces the selection, dropping duplicates while
// keeping first-occurrence order.
func (s *Session) SetSelectedSupplierIds(ids []string) {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	s.SelectedSupplierIds = out
}

// ToggleSupplier adds the id when absent and removes it when present.
func (s *Session) ToggleSupplier(id string) {
	for i, cur := range s.SelectedSupplierIds {
		if cur == id {
			s.SelectedSupplierIds = append(s.SelectedSupplierIds[:i], s.SelectedSupplierIds[i+1:]...)
			return
		}
	}
	s.SelectedSupplierIds = append(s.SelectedSupplierIds, id)
}

// SetStartedAt marks funnel entry. Once set it stays until Reset; later
// calls are accepted and ignored.
func (s *Session) SetStartedAt(t time.Time) {
	if s.StartedAt == nil {
		s.StartedAt = &t
	}
}

// TimeSpentSeconds returns whole seconds since funnel entry, 0 when the
// funnel has not started.
func (s *Session) TimeSpentSeconds(now time.Time) int {
	if s.StartedAt == nil {
		return 0
	}
	return int(now.Sub(*s.StartedAt) / time.Second)
}

// Reset clears every field back to its initial empty value. The id and
// rubrique survive since they identify the funnel, not its progress.
func (s *Session) Reset() {
	s.Answers = map[int][]string{}
	s.OtherTexts = map[int]string{}
	s.DynamicAnswers = map[string][]string{}
	s.Profile = nil
	s.Contact = nil
	s.SelectedSupplierIds = []string{}
	s.StartedAt = nil
	s.Step = ""
	s.QuestionIndex = 0
}
