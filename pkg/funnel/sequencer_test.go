package funnel

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ux-matching-be/internal/entity"
	"ux-matching-be/pkg/store"
)

func staticQuestions() []entity.Question {
	return []entity.Question{
		{
			Id: 1, Title: "Parc automobile", MultiSelect: true,
			Answers: []entity.AnswerOption{{Id: "1-1"}, {Id: "1-2"}, {Id: "1-3"}},
		},
		{
			Id: 2, Title: "Hauteur sous plafond", MultiSelect: false,
			Answers: []entity.AnswerOption{{Id: "a"}, {Id: "b"}},
		},
		{
			Id: 3, Title: "Technologie de levage", MultiSelect: false, HasOtherOption: true,
			Answers: []entity.AnswerOption{{Id: "3-1"}, {Id: "3-2"}},
		},
	}
}

func newStaticSequencer(t *testing.T, opts ...Option) (*Sequencer, *store.Session) {
	t.Helper()
	sess := store.NewSession("s1", "")
	opts = append([]Option{WithAdvanceDelay(40 * time.Millisecond)}, opts...)
	return NewSequencer(NewStaticSource(staticQuestions()), sess, opts...), sess
}

func TestMultiSelectTogglesWithoutAdvance(t *testing.T) {
	seq, sess := newStaticSequencer(t)
	ctx := context.Background()

	require.NoError(t, seq.Select(ctx, "1-1"))
	require.NoError(t, seq.Select(ctx, "1-3"))
	assert.Equal(t, []string{"1-1", "1-3"}, sess.Answers[1])

	require.NoError(t, seq.Select(ctx, "1-1"))
	assert.Equal(t, []string{"1-3"}, sess.Answers[1])

	// Toggling the same id twice restores the pre-selection state.
	require.NoError(t, seq.Select(ctx, "1-2"))
	require.NoError(t, seq.Select(ctx, "1-2"))
	assert.Equal(t, []string{"1-3"}, sess.Answers[1])

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 0, sess.QuestionIndex)
}

func TestSingleSelectAutoAdvancesAfterDelay(t *testing.T) {
	seq, sess := newStaticSequencer(t)
	ctx := context.Background()

	require.NoError(t, seq.Select(ctx, "1-1"))
	require.NoError(t, seq.Next())
	require.Equal(t, 1, sess.QuestionIndex)

	require.NoError(t, seq.Select(ctx, "b"))
	// The answer lands immediately, the index only after the delay.
	assert.Equal(t, []string{"b"}, sess.Answers[2])
	assert.Equal(t, 1, sess.QuestionIndex)

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 2, sess.QuestionIndex)
}

func TestOtherOptionNeverAutoAdvances(t *testing.T) {
	seq, sess := newStaticSequencer(t)
	ctx := context.Background()

	require.NoError(t, seq.Select(ctx, "1-1"))
	require.NoError(t, seq.Next())
	require.NoError(t, seq.Select(ctx, "b"))
	require.NoError(t, seq.Next())
	require.Equal(t, 2, sess.QuestionIndex)

	require.NoError(t, seq.Select(ctx, entity.OtherAnswerId))
	require.NoError(t, seq.SetOtherText("pont mobile basse hauteur"))

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 2, sess.QuestionIndex)
	assert.Equal(t, "pont mobile basse hauteur", sess.OtherTexts[3])
}

func TestBackCancelsPendingAdvance(t *testing.T) {
	seq, sess := newStaticSequencer(t)
	ctx := context.Background()

	require.NoError(t, seq.Select(ctx, "1-2"))
	require.NoError(t, seq.Next())
	require.NoError(t, seq.Select(ctx, "a"))
	seq.Back()
	assert.Equal(t, 0, sess.QuestionIndex)

	time.Sleep(100 * time.Millisecond)
	// The scheduled advance must not fire after Back.
	assert.Equal(t, 0, sess.QuestionIndex)
	// Going back never clears the answer of the question being left.
	assert.Equal(t, []string{"a"}, sess.Answers[2])
}

func TestBackIsNoOpAtIndexZero(t *testing.T) {
	seq, sess := newStaticSequencer(t)
	seq.Back()
	assert.Equal(t, 0, sess.QuestionIndex)
	assert.False(t, seq.State().CanGoBack)
}

func TestNextRequiresAnAnswer(t *testing.T) {
	seq, _ := newStaticSequencer(t)
	assert.Error(t, seq.Next())
}

func TestCompletionFiresOnlyAtLastQuestion(t *testing.T) {
	done := make(chan *store.Session, 1)
	seq, sess := newStaticSequencer(t, WithOnComplete(func(s *store.Session) { done <- s }))
	ctx := context.Background()

	require.NoError(t, seq.Select(ctx, "1-1"))
	require.NoError(t, seq.Next())
	assert.False(t, seq.IsComplete())

	require.NoError(t, seq.Select(ctx, "a"))
	require.NoError(t, seq.Next())
	assert.False(t, seq.IsComplete())

	require.NoError(t, seq.Select(ctx, "3-2"))
	require.NoError(t, seq.Next())
	assert.True(t, seq.IsComplete())

	select {
	case s := <-done:
		assert.Equal(t, sess.ID, s.ID)
	case <-time.After(time.Second):
		t.Fatal("completion hook not called")
	}
}

func TestSelectRejectsForeignAnswer(t *testing.T) {
	seq, _ := newStaticSequencer(t)
	assert.Error(t, seq.Select(context.Background(), "9-9"))
	// "other" only belongs to questions that expose it.
	assert.Error(t, seq.Select(context.Background(), entity.OtherAnswerId))
}

func TestProgressIsMonotonicOnNext(t *testing.T) {
	seq, _ := newStaticSequencer(t)
	ctx := context.Background()

	prev := seq.State().Progress
	assert.Equal(t, 3, prev.Total)

	require.NoError(t, seq.Select(ctx, "1-1"))
	require.NoError(t, seq.Next())
	cur := seq.State().Progress
	assert.Greater(t, cur.Percent, prev.Percent)
	assert.Greater(t, cur.Global, prev.Global)
	assert.LessOrEqual(t, cur.Global, 33.0)

	seq.Back()
	assert.Less(t, seq.State().Progress.Percent, cur.Percent)
}

func TestMatchingProductCountShrinks(t *testing.T) {
	seq, _ := newStaticSequencer(t)
	ctx := context.Background()

	start := seq.State().MatchingProducts
	require.NoError(t, seq.Select(ctx, "1-1"))
	after := seq.State().MatchingProducts
	assert.Less(t, after, start)
	assert.GreaterOrEqual(t, after, 12)
}
