package problemgen

import (
	"fmt"
	"slices"
)

// DefaultDecoys is the catalog of animal tiles mixed into the grid.
var DefaultDecoys = []string{
	"bear", "buffalo", "chick", "chicken", "cow", "crocodile", "dog", "duck",
	"elephant", "frog", "giraffe", "goat", "gorilla", "hippo", "horse",
	"monkey", "moose", "narwhal", "owl", "panda", "parrot", "penguin", "pig",
	"rabbit", "rhino", "sloth", "snake", "walrus", "whale", "zebra",
}

// products holds every distinct i×j for i, j in [MinFactor, MaxFactor].
var products = buildProducts()

func buildProducts() []int {
	seen := make(map[int]bool)
	var out []int
	for i := MinFactor; i <= MaxFactor; i++ {
		for j := MinFactor; j <= MaxFactor; j++ {
			if p := i * j; !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}
	slices.Sort(out)
	return out
}

// Products returns the sorted distinct products of the table range.
func Products() []int {
	return slices.Clone(products)
}

// AnswerSetBuilder assembles answer grids. The zero value uses
// DefaultDecoys.
type AnswerSetBuilder struct {
	// Decoys is the decoy catalog. Duplicate names are ignored.
	Decoys []string
}

// Build returns a shuffled grid holding the correct answer, distractorCount
// distinct wrong products and decoyCount distinct decoys.
func (b AnswerSetBuilder) Build(src Source, q Question, decoyCount, distractorCount int) (AnswerSet, error) {
	if distractorCount < 0 {
		return nil, &SettingsError{Field: "distractors", Value: fmt.Sprint(distractorCount), Reason: "must not be negative"}
	}
	if decoyCount < 0 {
		return nil, &SettingsError{Field: "decoys", Value: fmt.Sprint(decoyCount), Reason: "must not be negative"}
	}

	answer := q.Answer()

	remainder := make([]int, 0, len(products))
	for _, p := range products {
		if p != answer {
			remainder = append(remainder, p)
		}
	}
	if len(remainder) < distractorCount {
		return nil, &InsufficientCandidatesError{Kind: kindDistractors, Need: distractorCount, Have: len(remainder)}
	}

	var decoys []string
	if decoyCount > 0 {
		catalog := b.catalog()
		if len(catalog) < decoyCount {
			return nil, &InsufficientCandidatesError{Kind: kindDecoys, Need: decoyCount, Have: len(catalog)}
		}
		decoys = sample(src, catalog, decoyCount)
	}
	distractors := sample(src, remainder, distractorCount)

	set := make(AnswerSet, 0, 1+distractorCount+decoyCount)
	set = append(set, NumberCandidate(answer))
	for _, v := range distractors {
		set = append(set, NumberCandidate(v))
	}
	for _, name := range decoys {
		set = append(set, DecoyCandidate(name))
	}
	return shuffled(src, set), nil
}

// catalog returns the deduplicated decoy names.
func (b AnswerSetBuilder) catalog() []string {
	names := b.Decoys
	if names == nil {
		names = DefaultDecoys
	}
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// BuildAnswerSet builds a grid using the default decoy catalog.
func BuildAnswerSet(src Source, q Question, decoyCount, distractorCount int) (AnswerSet, error) {
	return AnswerSetBuilder{}.Build(src, q, decoyCount, distractorCount)
}
