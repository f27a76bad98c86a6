package funnel

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ux-matching-be/internal/constant"
	"ux-matching-be/internal/entity"
	"ux-matching-be/pkg/store"
)

// Progress locates the visitor inside the questionnaire and on the global
// funnel bar. The questionnaire owns the first third of the bar; Percent
// never decreases on Next (it may on Back).
type Progress struct {
	Current int     `json:"current"`
	Total   int     `json:"total"`
	Percent int     `json:"percent"`
	Global  float64 `json:"global"`
}

// Snapshot is the sequencer state exposed to the API layer.
type Snapshot struct {
	Question         *entity.Question `json:"question"`
	Index            int              `json:"index"`
	SelectedAnswers  []string         `json:"selectedAnswers"`
	OtherText        string           `json:"otherText,omitempty"`
	Progress         Progress         `json:"progress"`
	CanGoBack        bool             `json:"canGoBack"`
	IsComplete       bool             `json:"isComplete"`
	IsLoading        bool             `json:"isLoading"`
	Error            string           `json:"error,omitempty"`
	MatchingProducts int              `json:"matchingProducts"`
}

// Sequencer advances a single linear index over a question source, writing
// answers through to the session. Single-select answers schedule an
// automatic advance after a short delay; multi-select never auto-advances.
type Sequencer struct {
	mu      sync.Mutex
	src     Source
	dynamic *DynamicSource // non-nil when src is the dynamic variant
	sess    *store.Session

	delay   time.Duration
	pending *time.Timer

	complete bool

	persist    func(*store.Session)
	onAnswer   func(q *entity.Question, answerIds []string)
	onComplete func(s *store.Session)
}

// Option tunes a Sequencer.
type Option func(*Sequencer)

// WithPersist installs the write-through hook called after every mutation.
func WithPersist(fn func(*store.Session)) Option {
	return func(s *Sequencer) { s.persist = fn }
}

// WithOnAnswer installs the analytics hook fired when an answer is recorded.
func WithOnAnswer(fn func(q *entity.Question, answerIds []string)) Option {
	return func(s *Sequencer) { s.onAnswer = fn }
}

// WithOnComplete installs the hook fired once when the questionnaire ends.
func WithOnComplete(fn func(s *store.Session)) Option {
	return func(s *Sequencer) { s.onComplete = fn }
}

// WithAdvanceDelay overrides the single-select auto-advance delay.
func WithAdvanceDelay(d time.Duration) Option {
	return func(s *Sequencer) { s.delay = d }
}

func NewSequencer(src Source, sess *store.Session, opts ...Option) *Sequencer {
	s := &Sequencer{
		src:   src,
		sess:  sess,
		delay: constant.AutoAdvanceDelay,
	}
	if d, ok := src.(*DynamicSource); ok {
		s.dynamic = d
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Select records answerId for the current question. On multi-select
// questions it toggles membership; on single-select it replaces the answer
// and, unless the choice is the "other" free-text option, schedules the
// auto-advance.
func (s *Sequencer) Select(ctx context.Context, answerId string) error {
	s.mu.Lock()
	q, ok := s.src.Question(s.sess.QuestionIndex)
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("no question available at index %d", s.sess.QuestionIndex)
	}
	if !q.HasAnswer(answerId) {
		s.mu.Unlock()
		return fmt.Errorf("answer %q does not belong to the current question", answerId)
	}

	var recorded []string
	if q.MultiSelect {
		recorded = toggle(s.currentAnswersLocked(q), answerId)
	} else {
		recorded = []string{answerId}
	}
	s.writeAnswersLocked(q, recorded)
	s.persistLocked()

	autoAdvance := !q.MultiSelect && answerId != entity.OtherAnswerId
	if autoAdvance {
		s.scheduleAdvanceLocked()
	} else {
		s.cancelPendingLocked()
	}

	// Phase two keys on the first entry answer, whatever the question type.
	var entryKey string
	if s.dynamic != nil && s.sess.QuestionIndex == 0 && len(recorded) > 0 {
		entryKey = recorded[0]
		if prev := s.dynamic.PathKey(); prev != "" && prev != entryKey {
			// The old path is superseded; its answers no longer belong to
			// any reachable question.
			entryCode := QuestionCode(q, 0)
			saved := s.sess.DynamicAnswers[entryCode]
			s.sess.ResetDynamicAnswers()
			s.sess.SetDynamicAnswer(entryCode, saved)
			s.persistLocked()
		}
	}
	onAnswer := s.onAnswer
	s.mu.Unlock()

	if onAnswer != nil {
		onAnswer(q, recorded)
	}
	if entryKey != "" {
		s.dynamic.SetEntryAnswer(ctx, entryKey)
	}
	return nil
}

// SetOtherText stores the free-text supplement of the current question.
func (s *Sequencer) SetOtherText(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.src.Question(s.sess.QuestionIndex)
	if !ok {
		return fmt.Errorf("no question available at index %d", s.sess.QuestionIndex)
	}
	if q.Id == 0 {
		return fmt.Errorf("question %q has no free-text supplement", QuestionCode(q, s.sess.QuestionIndex))
	}
	s.sess.SetOtherText(q.Id, text)
	s.persistLocked()
	return nil
}

// Next advances to the following question, or finalizes the questionnaire
// when pressed on the last one. It requires at least one selected answer.
func (s *Sequencer) Next() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextLocked()
}

func (s *Sequencer) nextLocked() error {
	s.cancelPendingLocked()
	if s.complete {
		return nil
	}
	q, ok := s.src.Question(s.sess.QuestionIndex)
	if !ok {
		return fmt.Errorf("no question available at index %d", s.sess.QuestionIndex)
	}
	if len(s.currentAnswersLocked(q)) == 0 {
		return fmt.Errorf("current question has no selected answer")
	}

	total := s.src.Total()
	if total > 0 && s.sess.QuestionIndex >= total-1 {
		s.complete = true
		s.sess.Step = constant.StepProfile
		s.persistLocked()
		if s.onComplete != nil {
			go s.onComplete(s.sess)
		}
		return nil
	}
	s.sess.QuestionIndex++
	s.persistLocked()
	return nil
}

// Back retreats one question. It is a no-op at index 0 and never clears
// the answer of the question being left. Any pending auto-advance is
// cancelled so a stale transition cannot fire after the user moved.
func (s *Sequencer) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelPendingLocked()
	if s.sess.QuestionIndex > 0 {
		s.sess.QuestionIndex--
		s.complete = false
		s.sess.Step = ""
		s.persistLocked()
	}
}

// State returns the current sequencer snapshot.
func (s *Sequencer) State() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.sess.QuestionIndex
	q, _ := s.src.Question(idx)

	snap := Snapshot{
		Question:         q,
		Index:            idx,
		Progress:         s.progressLocked(),
		CanGoBack:        idx > 0,
		IsComplete:       s.complete,
		IsLoading:        s.src.Loading(idx),
		MatchingProducts: s.matchingProductsLocked(),
	}
	if q != nil {
		snap.SelectedAnswers = s.currentAnswersLocked(q)
		if q.Id != 0 {
			snap.OtherText = s.sess.OtherTexts[q.Id]
		}
	}
	if err := s.src.Err(); err != nil {
		snap.Error = err.Error()
	}
	return snap
}

// IsComplete reports whether the questionnaire has been finalized.
func (s *Sequencer) IsComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.complete
}

func (s *Sequencer) currentAnswersLocked(q *entity.Question) []string {
	if q.Id != 0 {
		return s.sess.Answers[q.Id]
	}
	return s.sess.DynamicAnswers[QuestionCode(q, s.sess.QuestionIndex)]
}

func (s *Sequencer) writeAnswersLocked(q *entity.Question, ids []string) {
	if q.Id != 0 {
		s.sess.SetAnswer(q.Id, ids)
		return
	}
	s.sess.SetDynamicAnswer(QuestionCode(q, s.sess.QuestionIndex), ids)
}

func (s *Sequencer) scheduleAdvanceLocked() {
	s.cancelPendingLocked()
	s.pending = time.AfterFunc(s.delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = nil
		// The selection that scheduled this advance is still required to
		// be in place; nextLocked re-checks it.
		_ = s.nextLocked()
	})
}

func (s *Sequencer) cancelPendingLocked() {
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}

func (s *Sequencer) persistLocked() {
	if s.persist != nil {
		s.persist(s.sess)
	}
}

func (s *Sequencer) progressLocked() Progress {
	total := s.src.Total()
	if total <= 0 {
		return Progress{Current: 1, Total: 1, Percent: 0}
	}
	current := s.sess.QuestionIndex + 1
	if current > total {
		current = total
	}
	percent := int(float64(current) / float64(total) * 100)
	return Progress{
		Current: current,
		Total:   total,
		Percent: percent,
		Global:  float64(current) / float64(total) * 33,
	}
}

// matchingProductsLocked shrinks the advertised product pool as questions
// get answered, bottoming out at a dozen.
func (s *Sequencer) matchingProductsLocked() int {
	answered := len(s.sess.Answers)
	if s.dynamic != nil {
		answered = len(s.sess.DynamicAnswers)
	}
	reductions := []float64{0, 0.18, 0.32, 0.45, 0.56, 0.65, 0.72}
	if answered >= len(reductions) {
		answered = len(reductions) - 1
	}
	count := int(float64(constant.BaseProductCount)*(1-reductions[answered]) + 0.5)
	if count < 12 {
		count = 12
	}
	return count
}

func toggle(current []string, id string) []string {
	for i, cur := range current {
		if cur == id {
			out := make([]string, 0, len(current)-1)
			out = append(out, current[:i]...)
			return append(out, current[i+1:]...)
		}
	}
	out := make([]string, 0, len(current)+1)
	out = append(out, current...)
	return append(out, id)
}
