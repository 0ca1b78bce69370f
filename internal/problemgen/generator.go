package problemgen

// Generate produces the ordered question list for a game.
//
// Fixed counts draw the multiplier independently for every question, so
// repeats are expected. CountAll asks every multiplier from 2 up to
// MaxMultiplier exactly once, ascending unless RandomOrder is set.
func Generate(src Source, s Settings) ([]Question, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	if s.Count.Fixed() {
		return generateRandom(src, s), nil
	}
	return generateAll(src, s), nil
}

func generateRandom(src Source, s Settings) []Question {
	n := s.QuestionTotal()
	questions := make([]Question, n)
	for i := range questions {
		questions[i] = Question{
			Multiplicand: s.Table,
			Multiplier:   intInRange(src, MinFactor, s.MaxMultiplier),
		}
	}
	return questions
}

func generateAll(src Source, s Settings) []Question {
	questions := make([]Question, 0, s.QuestionTotal())
	for m := MinFactor; m <= s.MaxMultiplier; m++ {
		questions = append(questions, Question{Multiplicand: s.Table, Multiplier: m})
	}
	if s.RandomOrder {
		return shuffled(src, questions)
	}
	return questions
}
