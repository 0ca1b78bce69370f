package session

import (
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/timestables/internal/problemgen"
)

// Grid sizes of the original game: 1 correct + 9 numbers + 6 animals.
const (
	DefaultDistractorCount = 9
	DefaultDecoyCount      = 6
)

// FadeRules decides how decoy tiles are annotated after an answer.
// Numeric tiles always follow the fixed correct/revealed/wrong-chosen/faded
// scheme.
type FadeRules struct {
	DecoyOnCorrect problemgen.Effect
	DecoyOnWrong   problemgen.Effect
}

// CanonicalRules fade decoys on every answer.
func CanonicalRules() FadeRules {
	return FadeRules{
		DecoyOnCorrect: problemgen.EffectFaded,
		DecoyOnWrong:   problemgen.EffectFaded,
	}
}

// ClassicRules knock the decoys over on a wrong answer, as the first
// release of the game did.
func ClassicRules() FadeRules {
	return FadeRules{
		DecoyOnCorrect: problemgen.EffectFaded,
		DecoyOnWrong:   problemgen.EffectWrongChosen,
	}
}

// Options tunes the answer grid and display of a session.
type Options struct {
	// DecoyCount is the number of decorative tiles per grid.
	DecoyCount int

	// DistractorCount is the number of wrong numbers per grid.
	DistractorCount int

	// Rules decides decoy annotation.
	Rules FadeRules

	// FlipDisplay randomly shows questions as "b × a" instead of "a × b".
	FlipDisplay bool

	// Decoys overrides the decoy catalog. Nil uses problemgen.DefaultDecoys.
	Decoys []string

	// Logger receives session lifecycle events. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns the 16-tile grid with canonical rules.
func DefaultOptions() Options {
	return Options{
		DecoyCount:      DefaultDecoyCount,
		DistractorCount: DefaultDistractorCount,
		Rules:           CanonicalRules(),
		FlipDisplay:     true,
	}
}

// Status reports whether a session continues after an answer.
type Status struct {
	// Finished is true once the last question has been answered.
	Finished bool

	// NextIndex is the index of the next question (Continuing only).
	NextIndex int

	// FinalScore is the score at completion (Finished only).
	FinalScore int
}

// Continuing returns the status for a session moving on to next.
func Continuing(next int) Status {
	return Status{NextIndex: next}
}

// Done returns the status of a completed session.
func Done(score int) Status {
	return Status{Finished: true, FinalScore: score}
}

// Outcome is the result of answering a question.
type Outcome struct {
	// Correct reports whether the chosen value was the answer.
	Correct bool

	// Chosen is the submitted value.
	Chosen int

	// Answer is the correct value.
	Answer int

	// AnswerSet is the annotated grid for display.
	AnswerSet problemgen.AnswerSet

	// Status tells the caller whether to advance or show the final score.
	Status Status
}

// QuestionResult records one answered question for the summary.
type QuestionResult struct {
	Question problemgen.Question
	Flipped  bool
	Chosen   int
	Correct  bool
}

// Session tracks a single game from the first question to the final score.
// A Session is not safe for concurrent use; independent games use
// independent sessions.
type Session struct {
	id        string
	settings  problemgen.Settings
	opts      Options
	src       problemgen.Source
	builder   problemgen.AnswerSetBuilder
	logger    *zap.Logger
	questions []problemgen.Question

	index    int
	score    int
	answers  problemgen.AnswerSet
	flipped  bool
	answered bool
	finished bool

	// lastCorrect is nil until the current question is answered.
	lastCorrect *bool

	results []QuestionResult

	now        func() time.Time
	startedAt  time.Time
	finishedAt time.Time
}
