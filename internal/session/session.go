package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/timestables/internal/problemgen"
)

// Start validates the settings, generates the questions and prepares the
// first answer grid. No session is returned on error.
func Start(src problemgen.Source, settings problemgen.Settings, opts Options) (*Session, error) {
	questions, err := problemgen.Generate(src, settings)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Session{
		id:        uuid.New().String(),
		settings:  settings,
		opts:      opts,
		src:       src,
		builder:   problemgen.AnswerSetBuilder{Decoys: opts.Decoys},
		questions: questions,
		results:   make([]QuestionResult, 0, len(questions)),
		now:       time.Now,
	}
	s.logger = logger.With(zap.String("session_id", s.id))

	if err := s.prepare(0); err != nil {
		return nil, err
	}
	s.startedAt = s.now()

	s.logger.Info("session started",
		zap.Int("table", settings.Table),
		zap.Int("max_multiplier", settings.MaxMultiplier),
		zap.String("questions", string(settings.Count)),
		zap.Bool("random_order", settings.RandomOrder),
		zap.Int("total", len(questions)),
	)
	return s, nil
}

// prepare draws a fresh grid and flip for the question at index and makes
// it current. State is untouched if the grid cannot be built.
func (s *Session) prepare(index int) error {
	q := s.questions[index]
	set, err := s.builder.Build(s.src, q, s.opts.DecoyCount, s.opts.DistractorCount)
	if err != nil {
		return fmt.Errorf("build answers for %d × %d: %w", q.Multiplicand, q.Multiplier, err)
	}

	flipped := false
	if s.opts.FlipDisplay {
		flipped = s.src.IntN(2) == 1
	}

	s.index = index
	s.answers = set
	s.flipped = flipped
	s.answered = false
	s.lastCorrect = nil
	return nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Settings returns the settings the session was started with.
func (s *Session) Settings() problemgen.Settings { return s.settings }

// Questions returns a copy of the full question list.
func (s *Session) Questions() []problemgen.Question {
	out := make([]problemgen.Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// CurrentQuestion returns the question being asked.
func (s *Session) CurrentQuestion() problemgen.Question {
	return s.questions[s.index]
}

// CurrentAnswerSet returns a copy of the current grid, annotated once the
// question has been answered.
func (s *Session) CurrentAnswerSet() problemgen.AnswerSet {
	return s.answers.Clone()
}

// Flipped reports whether the current question is displayed with the
// operands swapped.
func (s *Session) Flipped() bool { return s.flipped }

// Prompt returns the display text of the current question.
func (s *Session) Prompt() string {
	return s.CurrentQuestion().Text(s.flipped)
}

// Score returns the number of correct answers so far.
func (s *Session) Score() int { return s.score }

// Progress returns the zero-based current index and the question total.
func (s *Session) Progress() (index, total int) {
	return s.index, len(s.questions)
}

// Answered reports whether the current question has been answered.
func (s *Session) Answered() bool { return s.answered }

// Finished reports whether the last question has been answered.
func (s *Session) Finished() bool { return s.finished }

// LastAnswerCorrect is nil until the current question has been answered.
func (s *Session) LastAnswerCorrect() *bool {
	if s.lastCorrect == nil {
		return nil
	}
	v := *s.lastCorrect
	return &v
}

// Status returns the status as of the last answer.
func (s *Session) Status() Status {
	if s.finished {
		return Done(s.score)
	}
	if s.answered {
		return Continuing(s.index + 1)
	}
	return Continuing(s.index)
}

// SubmitAnswer scores value against the current question and annotates
// the grid. Each question accepts exactly one answer; value must be a
// selectable numeric tile of the current grid.
func (s *Session) SubmitAnswer(value int) (Outcome, error) {
	if s.finished {
		return Outcome{}, &TransitionError{Op: "submit", Index: s.index, Reason: "session is finished"}
	}
	if s.answered {
		return Outcome{}, &TransitionError{Op: "submit", Index: s.index, Reason: "question already answered"}
	}
	pos := s.answers.IndexOf(value)
	if pos < 0 || !s.answers[pos].Selectable() {
		return Outcome{}, &TransitionError{Op: "submit", Index: s.index, Reason: fmt.Sprintf("%d is not a selectable answer", value)}
	}

	q := s.CurrentQuestion()
	answer := q.Answer()
	correct := value == answer
	if correct {
		s.score++
	}

	s.answers = annotate(s.answers, answer, value, s.opts.Rules)
	s.answered = true
	s.lastCorrect = &correct
	s.results = append(s.results, QuestionResult{
		Question: q,
		Flipped:  s.flipped,
		Chosen:   value,
		Correct:  correct,
	})

	var status Status
	if s.index == len(s.questions)-1 {
		s.finished = true
		s.finishedAt = s.now()
		status = Done(s.score)
	} else {
		status = Continuing(s.index + 1)
	}

	s.logger.Debug("answer submitted",
		zap.Int("index", s.index),
		zap.Int("multiplicand", q.Multiplicand),
		zap.Int("multiplier", q.Multiplier),
		zap.Int("chosen", value),
		zap.Bool("correct", correct),
		zap.Int("score", s.score),
	)
	if s.finished {
		s.logger.Info("session finished",
			zap.Int("score", s.score),
			zap.Int("total", len(s.questions)),
			zap.Duration("duration", s.finishedAt.Sub(s.startedAt)),
		)
	}

	return Outcome{
		Correct:   correct,
		Chosen:    value,
		Answer:    answer,
		AnswerSet: s.answers.Clone(),
		Status:    status,
	}, nil
}

// Advance moves to the next question with a freshly built grid. It is only
// legal after the current, non-final question has been answered.
func (s *Session) Advance() error {
	if s.finished {
		return &TransitionError{Op: "advance", Index: s.index, Reason: "session is finished"}
	}
	if !s.answered {
		return &TransitionError{Op: "advance", Index: s.index, Reason: "question not answered"}
	}
	return s.prepare(s.index + 1)
}

// annotate returns a new grid with effects applied for the chosen value.
func annotate(set problemgen.AnswerSet, answer, chosen int, rules FadeRules) problemgen.AnswerSet {
	correct := chosen == answer
	out := make(problemgen.AnswerSet, len(set))
	for i, c := range set {
		switch {
		case !c.IsNumber():
			if correct {
				out[i] = c.WithEffect(rules.DecoyOnCorrect)
			} else {
				out[i] = c.WithEffect(rules.DecoyOnWrong)
			}
		case c.Value == answer:
			if correct {
				out[i] = c.WithEffect(problemgen.EffectCorrect)
			} else {
				out[i] = c.WithEffect(problemgen.EffectRevealed)
			}
		case c.Value == chosen:
			out[i] = c.WithEffect(problemgen.EffectWrongChosen)
		default:
			out[i] = c.WithEffect(problemgen.EffectFaded)
		}
	}
	return out
}
