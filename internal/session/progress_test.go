package session

import (
	"testing"

	"github.com/abhisek/timestables/internal/problemgen"
)

func result(m int, correct bool) QuestionResult {
	return QuestionResult{Question: problemgen.Question{Multiplicand: 3, Multiplier: m}, Correct: correct}
}

func TestSummary_PracticeNext(t *testing.T) {
	// ×3 is missed first; ×7 is missed later and twice, so it has the
	// lower accuracy. The suggestion follows the order asked.
	sum := &Summary{Results: []QuestionResult{
		result(3, false),
		result(3, true),
		result(4, true),
		result(7, false),
		result(7, false),
	}}
	q, ok := sum.PracticeNext()
	if !ok {
		t.Fatal("expected a question to practise")
	}
	if q.Multiplier != 3 {
		t.Errorf("PracticeNext = ×%d, want ×3", q.Multiplier)
	}

	perfect := &Summary{Results: []QuestionResult{result(3, true)}}
	if _, ok := perfect.PracticeNext(); ok {
		t.Error("expected nothing to practise after a perfect game")
	}
}

func TestSummary_BestStreak(t *testing.T) {
	tests := []struct {
		name    string
		results []bool
		want    int
	}{
		{"empty", nil, 0},
		{"all wrong", []bool{false, false}, 0},
		{"all right", []bool{true, true, true}, 3},
		{"broken run", []bool{true, true, false, true, true, true, false}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := &Summary{}
			for i, c := range tt.results {
				sum.Results = append(sum.Results, result(i+2, c))
			}
			if got := sum.BestStreak(); got != tt.want {
				t.Errorf("BestStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStreakMilestone(t *testing.T) {
	tests := []struct {
		streak, want int
	}{
		{0, 0}, {2, 0}, {3, 3}, {4, 3}, {9, 5}, {10, 10}, {25, 20},
	}
	for _, tt := range tests {
		if got := StreakMilestone(tt.streak); got != tt.want {
			t.Errorf("StreakMilestone(%d) = %d, want %d", tt.streak, got, tt.want)
		}
	}
}
