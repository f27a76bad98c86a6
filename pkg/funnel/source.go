package funnel

import (
	"fmt"

	"ux-matching-be/internal/entity"
)

// Source yields the ordered questions the sequencer walks. Implementations
// are the build-time static catalog and the server-driven dynamic path.
type Source interface {
	// Question returns the question at index i, or ok=false when none is
	// available there (not fetched yet, or past the end).
	Question(i int) (*entity.Question, bool)

	// Total is the number of questions, 0 while still unknown.
	Total() int

	// Loading reports whether a fetch that could produce the question at
	// index i is still in flight.
	Loading(i int) bool

	// Err is the terminal load failure of the source, nil otherwise.
	Err() error
}

// QuestionCode derives the stable answer-map key for a question at index i.
// Dynamic questions without an explicit server code fall back to a
// positional code, which must stay identical across reads of the same index.
func QuestionCode(q *entity.Question, i int) string {
	if q != nil && q.Code != "" {
		return q.Code
	}
	return fmt.Sprintf("Q%d", i+1)
}

// StaticSource serves a fixed, build-time question list. No network, fully
// restartable.
type StaticSource struct {
	questions []entity.Question
}

func NewStaticSource(questions []entity.Question) *StaticSource {
	return &StaticSource{questions: questions}
}

func (s *StaticSource) Question(i int) (*entity.Question, bool) {
	if i < 0 || i >= len(s.questions) {
		return nil, false
	}
	return &s.questions[i], true
}

func (s *StaticSource) Total() int { return len(s.questions) }

func (s *StaticSource) Loading(int) bool { return false }

func (s *StaticSource) Err() error { return nil }
