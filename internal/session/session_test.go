package session

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/timestables/internal/problemgen"
)

func orderedSettings() problemgen.Settings {
	return problemgen.Settings{Table: 3, MaxMultiplier: 5, Count: problemgen.CountAll, RandomOrder: false}
}

func startSession(t *testing.T, settings problemgen.Settings, opts Options) *Session {
	t.Helper()
	s, err := Start(problemgen.NewSource(11), settings, opts)
	require.NoError(t, err)
	require.NotNil(t, s)
	return s
}

// wrongValue returns a numeric tile of the current grid that is not the answer.
func wrongValue(t *testing.T, s *Session) int {
	t.Helper()
	answer := s.CurrentQuestion().Answer()
	for _, c := range s.CurrentAnswerSet().Numbers() {
		if c.Value != answer {
			return c.Value
		}
	}
	t.Fatal("grid has no wrong numbers")
	return 0
}

func TestStart(t *testing.T) {
	s := startSession(t, orderedSettings(), DefaultOptions())

	assert.NotEmpty(t, s.ID())
	idx, total := s.Progress()
	assert.Equal(t, 0, idx)
	assert.Equal(t, 4, total)
	assert.Equal(t, 0, s.Score())
	assert.False(t, s.Finished())
	assert.False(t, s.Answered())
	assert.Nil(t, s.LastAnswerCorrect())
	assert.Equal(t, problemgen.Question{Multiplicand: 3, Multiplier: 2}, s.CurrentQuestion())

	set := s.CurrentAnswerSet()
	assert.Len(t, set, 1+DefaultDistractorCount+DefaultDecoyCount)
	assert.Equal(t, 1, set.Count(6))
}

func TestStart_InvalidSettings(t *testing.T) {
	s, err := Start(problemgen.NewSource(1), problemgen.Settings{Table: 3, MaxMultiplier: 1, Count: problemgen.CountAll}, DefaultOptions())
	assert.Nil(t, s)
	assert.ErrorIs(t, err, problemgen.ErrInvalidSettings)
}

func TestStart_InsufficientDecoys(t *testing.T) {
	opts := DefaultOptions()
	opts.Decoys = []string{"owl", "pig"}
	s, err := Start(problemgen.NewSource(1), orderedSettings(), opts)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, problemgen.ErrInsufficientDecoys)
}

func TestSubmitAnswer_Correct(t *testing.T) {
	s := startSession(t, orderedSettings(), DefaultOptions())

	out, err := s.SubmitAnswer(6)
	require.NoError(t, err)

	assert.True(t, out.Correct)
	assert.Equal(t, 6, out.Answer)
	assert.Equal(t, 6, out.Chosen)
	assert.Equal(t, 1, s.Score())
	assert.Equal(t, Continuing(1), out.Status)
	require.NotNil(t, s.LastAnswerCorrect())
	assert.True(t, *s.LastAnswerCorrect())

	for _, c := range out.AnswerSet {
		switch {
		case !c.IsNumber():
			assert.Equal(t, problemgen.EffectFaded, c.Effect, "decoy %s", c.Decoy)
		case c.Value == 6:
			assert.Equal(t, problemgen.EffectCorrect, c.Effect)
		default:
			assert.Equal(t, problemgen.EffectFaded, c.Effect, "number %d", c.Value)
		}
		assert.False(t, c.Selectable())
	}
}

func TestSubmitAnswer_Wrong(t *testing.T) {
	tests := []struct {
		name      string
		rules     FadeRules
		wantDecoy problemgen.Effect
	}{
		{"canonical", CanonicalRules(), problemgen.EffectFaded},
		{"classic", ClassicRules(), problemgen.EffectWrongChosen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Rules = tt.rules
			s := startSession(t, orderedSettings(), opts)
			wrong := wrongValue(t, s)

			out, err := s.SubmitAnswer(wrong)
			require.NoError(t, err)

			assert.False(t, out.Correct)
			assert.Equal(t, 0, s.Score())
			assert.Equal(t, wrong, out.Chosen)

			for _, c := range out.AnswerSet {
				switch {
				case !c.IsNumber():
					assert.Equal(t, tt.wantDecoy, c.Effect)
				case c.Value == 6:
					assert.Equal(t, problemgen.EffectRevealed, c.Effect)
				case c.Value == wrong:
					assert.Equal(t, problemgen.EffectWrongChosen, c.Effect)
				default:
					assert.Equal(t, problemgen.EffectFaded, c.Effect)
				}
			}
		})
	}
}

func TestSubmitAnswer_RejectsReplay(t *testing.T) {
	s := startSession(t, orderedSettings(), DefaultOptions())

	_, err := s.SubmitAnswer(6)
	require.NoError(t, err)

	_, err = s.SubmitAnswer(6)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.Equal(t, 1, s.Score(), "a replayed answer must not be scored")

	var te *TransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "submit", te.Op)
	assert.Equal(t, 0, te.Index)
}

func TestSubmitAnswer_UnknownValue(t *testing.T) {
	s := startSession(t, orderedSettings(), DefaultOptions())

	_, err := s.SubmitAnswer(13)
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.False(t, s.Answered())
	assert.False(t, s.CurrentAnswerSet().Annotated())
}

func TestAdvance_RequiresAnswer(t *testing.T) {
	s := startSession(t, orderedSettings(), DefaultOptions())

	err := s.Advance()
	assert.ErrorIs(t, err, ErrIllegalTransition)
	idx, _ := s.Progress()
	assert.Equal(t, 0, idx)
}

func TestAdvance_FreshAnswerSet(t *testing.T) {
	s := startSession(t, orderedSettings(), DefaultOptions())

	_, err := s.SubmitAnswer(6)
	require.NoError(t, err)
	require.NoError(t, s.Advance())

	idx, _ := s.Progress()
	assert.Equal(t, 1, idx)
	assert.False(t, s.Answered())
	assert.Nil(t, s.LastAnswerCorrect())

	set := s.CurrentAnswerSet()
	assert.False(t, set.Annotated())
	assert.Equal(t, 1, set.Count(9))
}

func TestPlayThrough(t *testing.T) {
	s := startSession(t, orderedSettings(), DefaultOptions())
	wantAnswers := []int{6, 9, 12, 15}

	for i, answer := range wantAnswers {
		idx, _ := s.Progress()
		require.Equal(t, i, idx)
		require.Equal(t, answer, s.CurrentQuestion().Answer())

		// Miss the second question.
		value := answer
		if i == 1 {
			value = wrongValue(t, s)
		}

		out, err := s.SubmitAnswer(value)
		require.NoError(t, err)

		if i < len(wantAnswers)-1 {
			assert.False(t, out.Status.Finished)
			assert.Equal(t, i+1, out.Status.NextIndex)
			require.NoError(t, s.Advance())
		} else {
			assert.True(t, out.Status.Finished)
			assert.Equal(t, 3, out.Status.FinalScore)
			assert.Equal(t, s.Score(), out.Status.FinalScore)
		}
	}

	assert.True(t, s.Finished())
	assert.Equal(t, Done(3), s.Status())

	_, err := s.SubmitAnswer(15)
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.ErrorIs(t, s.Advance(), ErrIllegalTransition)
	assert.Equal(t, 3, s.Score())

	sum := s.Summary()
	assert.Equal(t, 3, sum.Score)
	assert.Equal(t, 4, sum.Total)
	assert.InDelta(t, 0.75, sum.Accuracy, 1e-9)
	require.Len(t, sum.Missed(), 1)
	assert.Equal(t, 3, sum.Missed()[0].Question.Multiplier)
}

func TestFixedGameLength(t *testing.T) {
	settings := problemgen.Settings{Table: 4, MaxMultiplier: 4, Count: problemgen.Count5}
	s := startSession(t, settings, DefaultOptions())

	steps := 0
	for {
		q := s.CurrentQuestion()
		assert.Equal(t, 4, q.Multiplicand)
		assert.Contains(t, []int{2, 3, 4}, q.Multiplier)
		assert.Equal(t, 1, s.CurrentAnswerSet().Count(q.Answer()))

		out, err := s.SubmitAnswer(q.Answer())
		require.NoError(t, err)
		steps++
		if out.Status.Finished {
			break
		}
		require.NoError(t, s.Advance())
	}
	assert.Equal(t, 5, steps)
	assert.Equal(t, 5, s.Score())
}

func TestOutcomeIsSnapshot(t *testing.T) {
	s := startSession(t, orderedSettings(), DefaultOptions())
	out, err := s.SubmitAnswer(6)
	require.NoError(t, err)

	out.AnswerSet[0] = out.AnswerSet[0].WithEffect(problemgen.EffectNone)
	assert.NotEqual(t, problemgen.EffectNone, s.CurrentAnswerSet()[0].Effect)

	set := s.CurrentAnswerSet()
	set[0].Value = -1
	assert.NotEqual(t, -1, s.CurrentAnswerSet()[0].Value)
}

func TestFlipDisplayDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.FlipDisplay = false
	s := startSession(t, problemgen.Settings{Table: 7, MaxMultiplier: 12, Count: problemgen.Count20}, opts)

	for {
		assert.False(t, s.Flipped())
		assert.Equal(t, s.CurrentQuestion().Text(false), s.Prompt())
		out, err := s.SubmitAnswer(s.CurrentQuestion().Answer())
		require.NoError(t, err)
		if out.Status.Finished {
			break
		}
		require.NoError(t, s.Advance())
	}
}

func TestNumbersOnlyGrid(t *testing.T) {
	opts := DefaultOptions()
	opts.DecoyCount = 0
	s := startSession(t, orderedSettings(), opts)
	assert.Empty(t, s.CurrentAnswerSet().Decoys())
	assert.Len(t, s.CurrentAnswerSet(), 1+DefaultDistractorCount)
}

func TestSummaryDuration(t *testing.T) {
	s := startSession(t, problemgen.Settings{Table: 2, MaxMultiplier: 2, Count: problemgen.CountAll}, DefaultOptions())

	start := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	s.startedAt = start
	s.now = func() time.Time { return start.Add(90 * time.Second) }

	out, err := s.SubmitAnswer(4)
	require.NoError(t, err)
	require.True(t, out.Status.Finished, "a 2×2 game has one question")

	sum := s.Summary()
	assert.Equal(t, 90*time.Second, sum.Duration)
	assert.Equal(t, 1, sum.Score)
}

func TestTransitionErrorMessage(t *testing.T) {
	err := &TransitionError{Op: "submit", Index: 2, Reason: "question already answered"}
	assert.Equal(t, "submit at question 3: question already answered", err.Error())
	assert.True(t, errors.Is(err, ErrIllegalTransition))
}
