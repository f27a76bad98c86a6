package entity

// AnswerOption is one selectable choice of a question. Static questions use
// numeric-ish ids ("1-1", "2-3"...), dynamic questions use server codes.
type AnswerOption struct {
	Id            string `json:"id"`
	MainText      string `json:"mainText"`
	SecondaryText string `json:"secondaryText,omitempty"`
}

// Question is a single questionnaire screen. Static questions carry a
// build-time integer Id; dynamic (server-driven) questions carry a string
// Code instead and leave Id at zero.
type Question struct {
	Id             int            `json:"id,omitempty"`
	Code           string         `json:"code,omitempty"`
	Title          string         `json:"title"`
	Justification  string         `json:"justification,omitempty"`
	MultiSelect    bool           `json:"multiSelect"`
	HasOtherOption bool           `json:"hasOtherOption,omitempty"`
	Answers        []AnswerOption `json:"answers"`
}

// HasAnswer reports whether id is one of the question's options (the
// distinguished "other" option counts when the question exposes it).
func (q *Question) HasAnswer(id string) bool {
	if q.HasOtherOption && id == OtherAnswerId {
		return true
	}
	for _, a := range q.Answers {
		if a.Id == id {
			return true
		}
	}
	return false
}

// OtherAnswerId is the distinguished free-text option of single-select
// questions that expose it. Selecting it never auto-advances.
const OtherAnswerId = "other"
