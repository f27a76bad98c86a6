package funnel

import (
	"context"
	"sync"

	"ux-matching-be/internal/entity"
)

// QuestionFetcher is the network side of the dynamic questionnaire: one
// call for the entry question, one for the remainder of the path once the
// entry answer is known.
type QuestionFetcher interface {
	EntryQuestion(ctx context.Context, rubriqueId string) (*entity.Question, error)
	PathQuestions(ctx context.Context, rubriqueId, q1Answer string) ([]entity.Question, int, error)
}

// DynamicSource resolves a server-driven question path in two phases.
// Index 0 is the entry question; indexes 1..n come from the path fetched
// for the chosen entry answer. Changing the entry answer invalidates the
// path and refetches it; results of superseded fetches are discarded via a
// generation counter so a slow stale response never overwrites a newer one.
type DynamicSource struct {
	mu      sync.Mutex
	fetcher QuestionFetcher

	rubriqueId string

	entry        *entity.Question
	entryLoading bool

	path        []entity.Question
	pathTotal   int
	pathKey     string
	pathLoading bool

	gen uint64
	err error
}

func NewDynamicSource(fetcher QuestionFetcher, rubriqueId string) *DynamicSource {
	return &DynamicSource{fetcher: fetcher, rubriqueId: rubriqueId}
}

// LoadEntry fetches the entry question once. Concurrent and repeated calls
// are cheap no-ops while a fetch is in flight or after it resolved.
func (d *DynamicSource) LoadEntry(ctx context.Context) {
	d.mu.Lock()
	if d.entry != nil || d.entryLoading {
		d.mu.Unlock()
		return
	}
	d.entryLoading = true
	gen := d.gen
	d.mu.Unlock()

	q, err := d.fetcher.EntryQuestion(ctx, d.rubriqueId)

	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.gen {
		// Superseded while in flight; drop the result.
		return
	}
	d.entryLoading = false
	if err != nil {
		d.err = err
		return
	}
	d.entry = q
}

// SetEntryAnswer records which entry answer the path should follow and
// fetches the path when the answer changed. A path fetched for a previous
// answer is invalidated immediately, before the new fetch resolves.
func (d *DynamicSource) SetEntryAnswer(ctx context.Context, answerCode string) {
	d.mu.Lock()
	if d.pathKey == answerCode && (d.path != nil || d.pathLoading) {
		d.mu.Unlock()
		return
	}
	d.gen++
	gen := d.gen
	d.pathKey = answerCode
	d.path = nil
	d.pathTotal = 0
	d.pathLoading = true
	d.err = nil
	d.mu.Unlock()

	questions, total, err := d.fetcher.PathQuestions(ctx, d.rubriqueId, answerCode)

	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.gen {
		return
	}
	d.pathLoading = false
	if err != nil {
		d.err = err
		return
	}
	d.path = questions
	if total > 0 {
		d.pathTotal = total
	} else {
		d.pathTotal = len(questions)
	}
}

// PathKey returns the entry answer the current path belongs to.
func (d *DynamicSource) PathKey() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pathKey
}

func (d *DynamicSource) Question(i int) (*entity.Question, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if i == 0 {
		if d.entry == nil {
			return nil, false
		}
		return d.entry, true
	}
	if d.path == nil || i-1 < 0 || i-1 >= len(d.path) {
		return nil, false
	}
	return &d.path[i-1], true
}

// Total is 1 + the path length once the path is known, 0 before that: the
// sequencer cannot know how far the funnel goes until phase two resolves.
func (d *DynamicSource) Total() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.entry == nil || d.path == nil {
		return 0
	}
	return 1 + d.pathTotal
}

func (d *DynamicSource) Loading(i int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if i == 0 {
		return d.entryLoading
	}
	return d.pathLoading
}

func (d *DynamicSource) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.err
}
