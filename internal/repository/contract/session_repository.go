package contract

import (
	"context"

	"ux-matching-be/pkg/store"
)

// ISessionRepository persists funnel sessions as single blobs. Get returns
// (nil, nil) for unknown ids.
type ISessionRepository interface {
	Save(ctx context.Context, session *store.Session) error
	Get(ctx context.Context, sessionId string) (*store.Session, error)
	Delete(ctx context.Context, sessionId string) error
}
