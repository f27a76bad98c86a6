package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ux-matching-be/internal/entity"
)

func TestToggleSupplierSetSemantics(t *testing.T) {
	s := NewSession("s1", "")

	s.ToggleSupplier("a")
	s.ToggleSupplier("b")
	s.ToggleSupplier("a")
	assert.Equal(t, []string{"b"}, s.SelectedSupplierIds)

	s.ToggleSupplier("a")
	s.ToggleSupplier("a")
	s.ToggleSupplier("a")
	assert.Equal(t, []string{"b", "a"}, s.SelectedSupplierIds)
}

func TestSetSelectedSupplierIdsDeduplicates(t *testing.T) {
	s := NewSession("s1", "")
	s.SetSelectedSupplierIds([]string{"x", "y", "x", "z", "y"})
	assert.Equal(t, []string{"x", "y", "z"}, s.SelectedSupplierIds)
}

func TestStartedAtSetOnce(t *testing.T) {
	s := NewSession("s1", "")
	first := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	later := first.Add(time.Hour)

	s.SetStartedAt(first)
	s.SetStartedAt(later)
	assert.Equal(t, first, *s.StartedAt)

	assert.Equal(t, 90, s.TimeSpentSeconds(first.Add(90*time.Second)))

	s.Reset()
	assert.Nil(t, s.StartedAt)
	s.SetStartedAt(later)
	assert.Equal(t, later, *s.StartedAt)
}

func TestAnswerNamespacesStayApart(t *testing.T) {
	s := NewSession("s1", "42")
	s.SetAnswer(3, []string{"3-1"})
	s.SetDynamicAnswer("Q1", []string{"opt_a"})
	s.SetDynamicAnswer("Q2", []string{"opt_b", "opt_c"})

	assert.Len(t, s.Answers, 1)
	assert.Len(t, s.DynamicAnswers, 2)

	s.ResetDynamicAnswers()
	assert.Empty(t, s.DynamicAnswers)
	assert.Equal(t, []string{"3-1"}, s.Answers[3])
}

func TestResetRestoresInitialState(t *testing.T) {
	s := NewSession("s1", "42")
	s.SetAnswer(1, []string{"1-2"})
	s.SetOtherText(3, "pont mobile")
	s.SetDynamicAnswer("Q1", []string{"m"})
	s.SetProfile(&entity.ProfileData{Type: entity.ProfileCreation, PostalCode: "75001", City: "Paris"})
	s.SetContact(&entity.ContactData{Email: "a@b.fr"})
	s.SetSelectedSupplierIds([]string{"sup-1", "sup-2"})
	s.SetStartedAt(time.Now())
	s.Step = "selection"
	s.QuestionIndex = 5

	s.Reset()

	assert.Equal(t, "s1", s.ID)
	assert.Equal(t, "42", s.RubriqueId)
	assert.Empty(t, s.Answers)
	assert.Empty(t, s.OtherTexts)
	assert.Empty(t, s.DynamicAnswers)
	assert.Nil(t, s.Profile)
	assert.Nil(t, s.Contact)
	assert.Equal(t, []string{}, s.SelectedSupplierIds)
	assert.Nil(t, s.StartedAt)
	assert.Zero(t, s.QuestionIndex)
}

func TestSessionRoundTripsAsOneBlob(t *testing.T) {
	s := NewSession("s1", "")
	s.SetAnswer(2, []string{"2-1"})
	s.ToggleSupplier("sup-9")

	raw, err := json.Marshal(s)
	assert.NoError(t, err)

	var got Session
	assert.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, s.Answers, got.Answers)
	assert.Equal(t, s.SelectedSupplierIds, got.SelectedSupplierIds)
}
