package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/timestables/internal/ui/theme"
)

// Stepper is a single-line picker that cycles through fixed options with
// the left and right keys, e.g. "Table  ◂ 7 ▸".
type Stepper struct {
	Label    string
	Options  []string
	Index    int
	Wrap     bool
	Disabled bool
}

// NewStepper creates a stepper with the option at index selected.
func NewStepper(label string, options []string, index int) Stepper {
	if index < 0 || index >= len(options) {
		index = 0
	}
	return Stepper{Label: label, Options: options, Index: index}
}

// Update handles left/right. Disabled steppers ignore input.
func (s Stepper) Update(msg tea.Msg) (Stepper, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || s.Disabled || len(s.Options) == 0 {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h", "-":
		switch {
		case s.Index > 0:
			s.Index--
		case s.Wrap:
			s.Index = len(s.Options) - 1
		}
	case "right", "l", "+", "space":
		switch {
		case s.Index < len(s.Options)-1:
			s.Index++
		case s.Wrap:
			s.Index = 0
		}
	}
	return s, nil
}

// Value returns the selected option.
func (s Stepper) Value() string {
	if len(s.Options) == 0 {
		return ""
	}
	return s.Options[s.Index]
}

// View renders the stepper; focused steppers are highlighted.
func (s Stepper) View(focused bool, labelWidth int) string {
	label := lipgloss.NewStyle().Width(labelWidth).Render(s.Label)
	value := "◂ " + s.Value() + " ▸"

	switch {
	case s.Disabled:
		return theme.Disabled.Render("  " + label + value)
	case focused:
		return theme.Selected.Render("▸ " + label + value)
	default:
		return theme.Unselected.Render("  " + label + value)
	}
}
