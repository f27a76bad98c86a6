package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ux-matching-be/internal/catalog"
	"ux-matching-be/internal/constant"
	"ux-matching-be/internal/dto"
	"ux-matching-be/internal/entity"
	"ux-matching-be/internal/pkg/logger"
	"ux-matching-be/internal/repository/contract"
	"ux-matching-be/pkg/events"
	"ux-matching-be/pkg/funnel"
	"ux-matching-be/pkg/store"
)

type IQuestionnaireService interface {
	State(ctx context.Context, sessionId string) (*funnel.Snapshot, error)
	Select(ctx context.Context, sessionId string, req *dto.SelectAnswerRequest) (*funnel.Snapshot, error)
	SetOtherText(ctx context.Context, sessionId string, req *dto.OtherTextRequest) (*funnel.Snapshot, error)
	Next(ctx context.Context, sessionId string) (*funnel.Snapshot, error)
	Back(ctx context.Context, sessionId string) (*funnel.Snapshot, error)

	// EntryQuestion and PathQuestions proxy the legacy questionnaire
	// endpoints unchanged, for clients that render the dynamic variant
	// themselves.
	EntryQuestion(ctx context.Context, rubriqueId string) (*entity.Question, error)
	PathQuestions(ctx context.Context, rubriqueId, q1Answer string) ([]entity.Question, int, error)

	Drop(sessionId string)
}

type questionnaireService struct {
	repo             contract.ISessionRepository
	fetcher          funnel.QuestionFetcher
	publisherService IPublisherService
	logger           logger.ILogger
	advanceDelay     time.Duration

	mu         sync.Mutex
	sequencers map[string]*funnel.Sequencer
}

func NewQuestionnaireService(
	repo contract.ISessionRepository,
	fetcher funnel.QuestionFetcher,
	publisherService IPublisherService,
	log logger.ILogger,
	advanceDelay time.Duration,
) IQuestionnaireService {
	if advanceDelay <= 0 {
		advanceDelay = constant.AutoAdvanceDelay
	}
	return &questionnaireService{
		repo:             repo,
		fetcher:          fetcher,
		publisherService: publisherService,
		logger:           log,
		advanceDelay:     advanceDelay,
		sequencers:       make(map[string]*funnel.Sequencer),
	}
}

func (c *questionnaireService) State(ctx context.Context, sessionId string) (*funnel.Snapshot, error) {
	seq, err := c.sequencerFor(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	snap := seq.State()
	return &snap, nil
}

func (c *questionnaireService) Select(ctx context.Context, sessionId string, req *dto.SelectAnswerRequest) (*funnel.Snapshot, error) {
	seq, err := c.sequencerFor(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if err := seq.Select(ctx, req.AnswerId); err != nil {
		return nil, err
	}
	snap := seq.State()
	return &snap, nil
}

func (c *questionnaireService) SetOtherText(ctx context.Context, sessionId string, req *dto.OtherTextRequest) (*funnel.Snapshot, error) {
	seq, err := c.sequencerFor(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if err := seq.SetOtherText(req.Text); err != nil {
		return nil, err
	}
	snap := seq.State()
	return &snap, nil
}

func (c *questionnaireService) Next(ctx context.Context, sessionId string) (*funnel.Snapshot, error) {
	seq, err := c.sequencerFor(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if err := seq.Next(); err != nil {
		return nil, err
	}
	snap := seq.State()
	return &snap, nil
}

func (c *questionnaireService) Back(ctx context.Context, sessionId string) (*funnel.Snapshot, error) {
	seq, err := c.sequencerFor(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	seq.Back()
	snap := seq.State()
	return &snap, nil
}

func (c *questionnaireService) EntryQuestion(ctx context.Context, rubriqueId string) (*entity.Question, error) {
	if rubriqueId == "" {
		return nil, fmt.Errorf("rubriqueId is required")
	}
	return c.fetcher.EntryQuestion(ctx, rubriqueId)
}

func (c *questionnaireService) PathQuestions(ctx context.Context, rubriqueId, q1Answer string) ([]entity.Question, int, error) {
	if rubriqueId == "" || q1Answer == "" {
		return nil, 0, fmt.Errorf("rubriqueId and q1Answer are required")
	}
	return c.fetcher.PathQuestions(ctx, rubriqueId, q1Answer)
}

// Drop forgets the cached sequencer for a session. Called after a session
// reset so the next access rebuilds from the stored blob.
func (c *questionnaireService) Drop(sessionId string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sequencers, sessionId)
}

// sequencerFor returns the live sequencer of a session, rebuilding it from
// the persisted session blob when this instance has not seen it yet.
func (c *questionnaireService) sequencerFor(ctx context.Context, sessionId string) (*funnel.Sequencer, error) {
	c.mu.Lock()
	if seq, ok := c.sequencers[sessionId]; ok {
		c.mu.Unlock()
		return seq, nil
	}
	c.mu.Unlock()

	sess, err := c.repo.Get(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, fmt.Errorf("session not found")
	}

	src := c.sourceFor(ctx, sess)
	seq := funnel.NewSequencer(src, sess,
		funnel.WithAdvanceDelay(c.advanceDelay),
		funnel.WithPersist(func(s *store.Session) {
			// Write-through runs outside the request context; the timer
			// driven advance has no request to borrow one from.
			if err := c.repo.Save(context.Background(), s); err != nil {
				c.logger.Error("QuestionnaireService", "failed to persist session", map[string]interface{}{
					"sessionId": s.ID,
					"error":     err.Error(),
				})
			}
		}),
		funnel.WithOnAnswer(func(q *entity.Question, answerIds []string) {
			c.publishEvent(events.TypeQuestionAnswered, map[string]interface{}{
				"sessionId": sessionId,
				"question":  funnel.QuestionCode(q, sess.QuestionIndex),
				"answers":   answerIds,
			})
		}),
		funnel.WithOnComplete(func(s *store.Session) {
			c.publishEvent(events.TypeQuestionnaireCompleted, map[string]interface{}{
				"sessionId": s.ID,
				"answered":  len(s.Answers) + len(s.DynamicAnswers),
			})
		}),
	)

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.sequencers[sessionId]; ok {
		return existing, nil
	}
	c.sequencers[sessionId] = seq
	return seq, nil
}

func (c *questionnaireService) sourceFor(ctx context.Context, sess *store.Session) funnel.Source {
	if sess.RubriqueId == "" {
		return funnel.NewStaticSource(catalog.Questions)
	}

	dyn := funnel.NewDynamicSource(c.fetcher, sess.RubriqueId)
	dyn.LoadEntry(ctx)

	// Rehydrate the path phase when the entry question was already answered
	// in a previous lifetime of this process.
	if q, ok := dyn.Question(0); ok {
		if answers := sess.DynamicAnswers[funnel.QuestionCode(q, 0)]; len(answers) > 0 {
			dyn.SetEntryAnswer(ctx, answers[0])
		}
	}
	return dyn
}

func (c *questionnaireService) publishEvent(eventType string, data map[string]interface{}) {
	if err := c.publisherService.Publish(context.Background(), events.New(eventType, data)); err != nil {
		c.logger.Warn("QuestionnaireService", "failed to publish event", map[string]interface{}{
			"type":  eventType,
			"error": err.Error(),
		})
	}
}
