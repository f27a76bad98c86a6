// Package latest guards supersedable lookups against out-of-order
// responses: per key, only the most recently started call may publish its
// result. A slow earlier request can therefore never overwrite the answer
// of a faster later one.
package latest

import "sync"

// Guard tags calls with a monotonic sequence number per key and discards
// results of superseded calls.
type Guard struct {
	mu   sync.Mutex
	seqs map[string]uint64
}

func NewGuard() *Guard {
	return &Guard{seqs: map[string]uint64{}}
}

// Do runs fn and returns its result together with stale=true when a newer
// call for the same key started while fn was running. Callers drop stale
// results.
func (g *Guard) Do(key string, fn func() (interface{}, error)) (result interface{}, stale bool, err error) {
	g.mu.Lock()
	g.seqs[key]++
	seq := g.seqs[key]
	g.mu.Unlock()

	result, err = fn()

	g.mu.Lock()
	stale = g.seqs[key] != seq
	g.mu.Unlock()
	return result, stale, err
}

// Invalidate marks every in-flight call for key as stale.
func (g *Guard) Invalidate(key string) {
	g.mu.Lock()
	g.seqs[key]++
	g.mu.Unlock()
}
