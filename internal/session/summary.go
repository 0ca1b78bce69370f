package session

import (
	"time"

	"github.com/abhisek/timestables/internal/problemgen"
)

// Summary holds the data displayed on the game-over screen.
type Summary struct {
	SessionID string
	Settings  problemgen.Settings
	Score     int
	Total     int
	Accuracy  float64
	Duration  time.Duration
	Results   []QuestionResult
}

// Summary builds a snapshot of the session results. Duration is measured
// up to the last answer, or up to now while the session is in progress.
func (s *Session) Summary() *Summary {
	end := s.finishedAt
	if !s.finished {
		end = s.now()
	}

	results := make([]QuestionResult, len(s.results))
	copy(results, s.results)

	var accuracy float64
	if len(results) > 0 {
		accuracy = float64(s.score) / float64(len(results))
	}

	return &Summary{
		SessionID: s.id,
		Settings:  s.settings,
		Score:     s.score,
		Total:     len(s.questions),
		Accuracy:  accuracy,
		Duration:  end.Sub(s.startedAt),
		Results:   results,
	}
}

// Missed returns the questions answered incorrectly, in order asked.
func (sum *Summary) Missed() []QuestionResult {
	var out []QuestionResult
	for _, r := range sum.Results {
		if !r.Correct {
			out = append(out, r)
		}
	}
	return out
}
