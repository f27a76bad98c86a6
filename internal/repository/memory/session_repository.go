package memory

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"ux-matching-be/pkg/store"
)

// SessionRepository keeps funnel sessions in process memory. Abandoned
// funnels expire after an hour; the funnel itself resets state on every
// entry-view mount, so the TTL only garbage-collects the walkaways.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(_ context.Context, session *store.Session) error {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
	return nil
}

func (r *SessionRepository) Get(_ context.Context, sessionId string) (*store.Session, error) {
	if x, found := r.cache.Get(sessionId); found {
		return x.(*store.Session), nil
	}
	return nil, nil
}

func (r *SessionRepository) Delete(_ context.Context, sessionId string) error {
	r.cache.Delete(sessionId)
	return nil
}
