package session

import "github.com/abhisek/timestables/internal/problemgen"

// PracticeNext returns the first question answered incorrectly, the one
// to suggest for next time. ok is false when nothing was missed.
func (sum *Summary) PracticeNext() (q problemgen.Question, ok bool) {
	for _, r := range sum.Results {
		if !r.Correct {
			return r.Question, true
		}
	}
	return problemgen.Question{}, false
}

// StreakMilestones are the run lengths worth celebrating.
var StreakMilestones = []int{3, 5, 10, 15, 20}

// BestStreak returns the longest run of consecutive correct answers.
func (sum *Summary) BestStreak() int {
	best, run := 0, 0
	for _, r := range sum.Results {
		if !r.Correct {
			run = 0
			continue
		}
		run++
		best = max(best, run)
	}
	return best
}

// StreakMilestone returns the largest milestone reached by streak, or 0.
func StreakMilestone(streak int) int {
	reached := 0
	for _, m := range StreakMilestones {
		if streak >= m {
			reached = m
		}
	}
	return reached
}
