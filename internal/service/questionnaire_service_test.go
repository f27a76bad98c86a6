package service

import (
	"context"
	"testing"
	"time"

	"ux-matching-be/internal/catalog"
	"ux-matching-be/internal/dto"
	"ux-matching-be/internal/entity"
	"ux-matching-be/pkg/events"
	"ux-matching-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	entry *entity.Question
	path  []entity.Question
}

func (f *fakeFetcher) EntryQuestion(_ context.Context, _ string) (*entity.Question, error) {
	return f.entry, nil
}

func (f *fakeFetcher) PathQuestions(_ context.Context, _, _ string) ([]entity.Question, int, error) {
	return f.path, len(f.path), nil
}

func TestQuestionnaireStateStartsAtFirstQuestion(t *testing.T) {
	sess := store.NewSession("s1", "")
	svc := NewQuestionnaireService(newFakeSessionRepo(sess), &fakeFetcher{}, &fakePublisher{}, nopLogger{}, 20*time.Millisecond)

	snap, err := svc.State(context.Background(), "s1")
	require.NoError(t, err)
	require.NotNil(t, snap.Question)
	assert.Equal(t, catalog.Questions[0].Id, snap.Question.Id)
	assert.Equal(t, 0, snap.Index)
	assert.False(t, snap.CanGoBack)
}

func TestQuestionnaireSelectPersistsAnswer(t *testing.T) {
	sess := store.NewSession("s1", "")
	repo := newFakeSessionRepo(sess)
	pub := &fakePublisher{}
	svc := NewQuestionnaireService(repo, &fakeFetcher{}, pub, nopLogger{}, 20*time.Millisecond)

	first := catalog.Questions[0]
	answerId := first.Answers[0].Id
	snap, err := svc.Select(context.Background(), "s1", &dto.SelectAnswerRequest{AnswerId: answerId})
	require.NoError(t, err)
	assert.Contains(t, snap.SelectedAnswers, answerId)

	saved, _ := repo.Get(context.Background(), "s1")
	assert.Contains(t, saved.Answers[first.Id], answerId)
	assert.Contains(t, pub.types(), events.TypeQuestionAnswered)
}

func TestQuestionnaireRebuildsAfterDrop(t *testing.T) {
	sess := store.NewSession("s1", "")
	sess.QuestionIndex = 2
	repo := newFakeSessionRepo(sess)
	svc := NewQuestionnaireService(repo, &fakeFetcher{}, &fakePublisher{}, nopLogger{}, 20*time.Millisecond)

	snap, err := svc.State(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Index)

	// Dropping the cached sequencer must not lose position: it rebuilds
	// from the stored session.
	svc.Drop("s1")
	snap, err = svc.State(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Index)
}

func TestQuestionnaireUnknownSession(t *testing.T) {
	svc := NewQuestionnaireService(newFakeSessionRepo(), &fakeFetcher{}, &fakePublisher{}, nopLogger{}, 20*time.Millisecond)
	_, err := svc.State(context.Background(), "missing")
	require.Error(t, err)
}

func TestQuestionnaireDynamicEntry(t *testing.T) {
	fetcher := &fakeFetcher{
		entry: &entity.Question{Code: "E1", Title: "Usage ?", Answers: []entity.AnswerOption{{Id: "pro"}, {Id: "perso"}}},
		path: []entity.Question{
			{Code: "P1", Title: "Suite", Answers: []entity.AnswerOption{{Id: "x"}, {Id: "y"}}},
		},
	}
	sess := store.NewSession("s1", "1234")
	repo := newFakeSessionRepo(sess)
	svc := NewQuestionnaireService(repo, fetcher, &fakePublisher{}, nopLogger{}, 20*time.Millisecond)

	snap, err := svc.State(context.Background(), "s1")
	require.NoError(t, err)
	require.NotNil(t, snap.Question)
	assert.Equal(t, "E1", snap.Question.Code)

	snap, err = svc.Select(context.Background(), "s1", &dto.SelectAnswerRequest{AnswerId: "pro"})
	require.NoError(t, err)
	assert.Equal(t, []string{"pro"}, snap.SelectedAnswers)

	snap, err = svc.Next(context.Background(), "s1")
	require.NoError(t, err)
	require.NotNil(t, snap.Question)
	assert.Equal(t, "P1", snap.Question.Code)
}

func TestQuestionnaireProxyRequiresRubrique(t *testing.T) {
	svc := NewQuestionnaireService(newFakeSessionRepo(), &fakeFetcher{}, &fakePublisher{}, nopLogger{}, 20*time.Millisecond)

	_, err := svc.EntryQuestion(context.Background(), "")
	require.Error(t, err)

	_, _, err = svc.PathQuestions(context.Background(), "1234", "")
	require.Error(t, err)
}
