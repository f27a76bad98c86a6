package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"ux-matching-be/pkg/store"
)

const keyPrefix = "funnel:session:"

// SessionRepository stores each funnel session as one JSON blob under one
// key, mirroring the single-storage-key layout of the original client.
// Used when the API runs on more than one instance.
type SessionRepository struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewSessionRepository(redisURL string) (*SessionRepository, error) {
	opts, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis session store: %w", err)
	}
	return &SessionRepository{
		client: goredis.NewClient(opts),
		ttl:    1 * time.Hour,
	}, nil
}

func (r *SessionRepository) Save(ctx context.Context, session *store.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, keyPrefix+session.ID, raw, r.ttl).Err()
}

func (r *SessionRepository) Get(ctx context.Context, sessionId string) (*store.Session, error) {
	raw, err := r.client.Get(ctx, keyPrefix+sessionId).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session store.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) Delete(ctx context.Context, sessionId string) error {
	return r.client.Del(ctx, keyPrefix+sessionId).Err()
}
