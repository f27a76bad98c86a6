package service

import (
	"context"
	"fmt"
	"time"

	"ux-matching-be/internal/dto"
	"ux-matching-be/internal/pkg/logger"
	"ux-matching-be/internal/repository/contract"
	"ux-matching-be/pkg/events"
	"ux-matching-be/pkg/store"

	"github.com/google/uuid"
)

type ISessionService interface {
	Create(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	Get(ctx context.Context, sessionId string) (*dto.SessionResponse, error)
	Reset(ctx context.Context, sessionId string) (*dto.SessionResponse, error)
}

// SequencerInvalidator drops any cached questionnaire state for a session.
// Implemented by the questionnaire service.
type SequencerInvalidator interface {
	Drop(sessionId string)
}

type sessionService struct {
	repo             contract.ISessionRepository
	publisherService IPublisherService
	sequencers       SequencerInvalidator
	logger           logger.ILogger
}

func NewSessionService(
	repo contract.ISessionRepository,
	publisherService IPublisherService,
	sequencers SequencerInvalidator,
	log logger.ILogger,
) ISessionService {
	return &sessionService{
		repo:             repo,
		publisherService: publisherService,
		sequencers:       sequencers,
		logger:           log,
	}
}

func (c *sessionService) Create(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	sess := store.NewSession(uuid.NewString(), req.RubriqueId)
	sess.SetStartedAt(time.Now())

	if err := c.repo.Save(ctx, sess); err != nil {
		return nil, err
	}

	if err := c.publisherService.Publish(ctx, events.New(events.TypeFunnelStarted, map[string]interface{}{
		"sessionId":  sess.ID,
		"rubriqueId": sess.RubriqueId,
	})); err != nil {
		c.logger.Warn("SessionService", "failed to publish funnel started event", map[string]interface{}{"error": err.Error()})
	}

	return toSessionResponse(sess), nil
}

func (c *sessionService) Get(ctx context.Context, sessionId string) (*dto.SessionResponse, error) {
	sess, err := c.repo.Get(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, fmt.Errorf("session not found")
	}
	return toSessionResponse(sess), nil
}

// Reset wipes every answer of the session but keeps its identity, so a
// visitor restarting the funnel always begins on a clean first question.
func (c *sessionService) Reset(ctx context.Context, sessionId string) (*dto.SessionResponse, error) {
	sess, err := c.repo.Get(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, fmt.Errorf("session not found")
	}

	sess.Reset()
	sess.SetStartedAt(time.Now())
	if err := c.repo.Save(ctx, sess); err != nil {
		return nil, err
	}
	if c.sequencers != nil {
		c.sequencers.Drop(sessionId)
	}

	return toSessionResponse(sess), nil
}

func toSessionResponse(sess *store.Session) *dto.SessionResponse {
	return &dto.SessionResponse{
		Id:                  sess.ID,
		RubriqueId:          sess.RubriqueId,
		Step:                sess.Step,
		Answers:             sess.Answers,
		OtherTexts:          sess.OtherTexts,
		DynamicAnswers:      sess.DynamicAnswers,
		Profile:             sess.Profile,
		Contact:             sess.Contact,
		SelectedSupplierIds: sess.SelectedSupplierIds,
		StartedAt:           sess.StartedAt,
	}
}
