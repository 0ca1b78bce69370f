package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, bright enough for young players.
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	TextFaded = lipgloss.Color("#475569") // Dark Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Prompt = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text).
		Align(lipgloss.Center)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Disabled = lipgloss.NewStyle().
			Foreground(TextFaded)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Answer tiles. Every tile has the same box so the grid never reflows
// when effects change.
var (
	tileBase = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Align(lipgloss.Center).
			Width(TileWidth)

	TileIdle = tileBase.
			BorderForeground(Border).
			Foreground(Text)

	TileDecoy = tileBase.
			BorderForeground(Border).
			Foreground(Secondary)

	TileCursor = tileBase.
			BorderForeground(Primary).
			Foreground(Primary).
			Bold(true)

	TileCorrect = tileBase.
			BorderForeground(Success).
			Foreground(Success).
			Bold(true)

	TileRevealed = tileBase.
			BorderForeground(Success).
			Foreground(Success)

	TileWrong = tileBase.
			BorderForeground(Error).
			Foreground(Error).
			Bold(true)

	TileFaded = tileBase.
			BorderForeground(BgCard).
			Foreground(TextFaded)
)

// TileWidth is the inner width of an answer tile; it fits the longest
// animal name.
const TileWidth = 11

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Align(lipgloss.Center).
		Padding(1, 2)
)
