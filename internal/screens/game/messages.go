package game

// feedbackDoneMsg ends the pause after an answer. seq ties the message to
// the answer that scheduled it, so a pause skipped with Enter cannot
// advance the game a second time.
type feedbackDoneMsg struct {
	seq int
}
