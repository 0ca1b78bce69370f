package problemgen

import (
	"fmt"
	"strings"
)

// Bounds of the multiplication table served by the game.
const (
	MinFactor = 2
	MaxFactor = 12
)

// Question is a single multiplication question. Questions are values and
// never change once generated.
type Question struct {
	// Multiplicand is the times table being practised.
	Multiplicand int

	// Multiplier is the number the table is multiplied by.
	Multiplier int
}

// Answer returns the product of the question.
func (q Question) Answer() int {
	return q.Multiplicand * q.Multiplier
}

// Text renders the question prompt. When flipped the operands are shown
// in reverse order, e.g. "4 × 3 =" for 3×4.
func (q Question) Text(flipped bool) string {
	if flipped {
		return fmt.Sprintf("%d × %d =", q.Multiplier, q.Multiplicand)
	}
	return fmt.Sprintf("%d × %d =", q.Multiplicand, q.Multiplier)
}

// QuestionCount selects how many questions a game has.
type QuestionCount string

const (
	Count5   QuestionCount = "5"
	Count10  QuestionCount = "10"
	Count20  QuestionCount = "20"
	CountAll QuestionCount = "all" // one question per multiplier
)

// AllQuestionCounts returns the selectable counts in display order.
func AllQuestionCounts() []QuestionCount {
	return []QuestionCount{Count5, Count10, Count20, CountAll}
}

// ParseQuestionCount parses "5", "10", "20" or "all" (case-insensitive).
func ParseQuestionCount(s string) (QuestionCount, error) {
	c := QuestionCount(strings.ToLower(strings.TrimSpace(s)))
	if !c.valid() {
		return "", &SettingsError{Field: "questions", Value: s, Reason: "must be 5, 10, 20 or all"}
	}
	return c, nil
}

// DisplayName returns the label shown in pickers.
func (c QuestionCount) DisplayName() string {
	if c == CountAll {
		return "All"
	}
	return string(c)
}

// Fixed reports whether the count is a fixed number of random questions.
func (c QuestionCount) Fixed() bool {
	return c != CountAll
}

// Resolve returns the number of questions a game with this count will
// have for the given maximum multiplier.
func (c QuestionCount) Resolve(maxMultiplier int) int {
	switch c {
	case Count5:
		return 5
	case Count10:
		return 10
	case Count20:
		return 20
	case CountAll:
		return maxMultiplier - MinFactor + 1
	default:
		return 0
	}
}

func (c QuestionCount) valid() bool {
	switch c {
	case Count5, Count10, Count20, CountAll:
		return true
	}
	return false
}

// Settings configures a game.
type Settings struct {
	// Table is the times table, 2-12.
	Table int

	// MaxMultiplier is the largest multiplier asked, 2-12.
	MaxMultiplier int

	// Count is the question count mode.
	Count QuestionCount

	// RandomOrder shuffles the questions. Only consulted for CountAll;
	// fixed counts are always random.
	RandomOrder bool
}

// DefaultSettings mirrors the initial values of the settings screen.
func DefaultSettings() Settings {
	return Settings{
		Table:         2,
		MaxMultiplier: 10,
		Count:         Count10,
		RandomOrder:   true,
	}
}

// Validate checks the settings ranges.
func (s Settings) Validate() error {
	if s.Table < MinFactor || s.Table > MaxFactor {
		return &SettingsError{Field: "table", Value: fmt.Sprint(s.Table), Reason: fmt.Sprintf("must be between %d and %d", MinFactor, MaxFactor)}
	}
	if s.MaxMultiplier < MinFactor || s.MaxMultiplier > MaxFactor {
		return &SettingsError{Field: "max_multiplier", Value: fmt.Sprint(s.MaxMultiplier), Reason: fmt.Sprintf("must be between %d and %d", MinFactor, MaxFactor)}
	}
	if !s.Count.valid() {
		return &SettingsError{Field: "questions", Value: string(s.Count), Reason: "must be 5, 10, 20 or all"}
	}
	return nil
}

// QuestionTotal returns the number of questions these settings produce.
func (s Settings) QuestionTotal() int {
	return s.Count.Resolve(s.MaxMultiplier)
}
