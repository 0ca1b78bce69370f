package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/timestables/internal/logger"
	"github.com/abhisek/timestables/internal/problemgen"
	"github.com/abhisek/timestables/internal/session"
	"github.com/abhisek/timestables/internal/ui/layout"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Play a game in plain text (no full-screen UI)",
	Long: `Play one game on standard input and output.

Each question prints its answer grid; type the number you choose and press
Enter. Useful over slow connections or for scripted practice.`,
	RunE: runDrill,
}

func runDrill(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	settings, err := cfg.Settings()
	if err != nil {
		return err
	}
	opts, err := cfg.SessionOptions()
	if err != nil {
		return err
	}
	opts.Logger = log

	s, err := session.Start(cfg.Source(), settings, opts)
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}
	return playDrill(s, cmd.InOrStdin(), cmd.OutOrStdout())
}

// playDrill runs s to completion reading answers line by line from in.
// Closed input ends the game early without error.
func playDrill(s *session.Session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for {
		idx, total := s.Progress()
		fmt.Fprintf(out, "── Question %d/%d ──\n", idx+1, total)
		fmt.Fprintln(out, s.Prompt())
		fmt.Fprintln(out)
		fmt.Fprint(out, formatGrid(s.CurrentAnswerSet(), layout.GridColumns))

		var outcome session.Outcome
		for {
			fmt.Fprint(out, "\nYour answer: ")
			if !scanner.Scan() {
				fmt.Fprintln(out, "\n(input closed)")
				return scanner.Err()
			}
			text := strings.TrimSpace(scanner.Text())
			value, err := strconv.Atoi(text)
			if err != nil {
				fmt.Fprintln(out, "Type one of the numbers.")
				continue
			}

			outcome, err = s.SubmitAnswer(value)
			if errors.Is(err, session.ErrIllegalTransition) {
				fmt.Fprintf(out, "%d isn't on the board.\n", value)
				continue
			}
			if err != nil {
				return err
			}
			break
		}

		if outcome.Correct {
			fmt.Fprintln(out, "✓ Correct!")
		} else {
			fmt.Fprintf(out, "✗ Incorrect. The answer is %d.\n", outcome.Answer)
		}
		fmt.Fprintln(out)

		if outcome.Status.Finished {
			break
		}
		if err := s.Advance(); err != nil {
			return err
		}
	}

	sum := s.Summary()
	fmt.Fprintf(out, "── You scored %d out of %d ──\n", sum.Score, sum.Total)
	for _, r := range sum.Missed() {
		fmt.Fprintf(out, "  %s %d (you said %d)\n", r.Question.Text(r.Flipped), r.Question.Answer(), r.Chosen)
	}
	return nil
}

// formatGrid renders an answer set as fixed-width text rows.
func formatGrid(set problemgen.AnswerSet, columns int) string {
	var b strings.Builder
	for i, c := range set {
		fmt.Fprintf(&b, "%-11s", c.ID())
		if (i+1)%columns == 0 || i == len(set)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
