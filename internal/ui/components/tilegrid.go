package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/timestables/internal/problemgen"
	"github.com/abhisek/timestables/internal/ui/theme"
)

// TileGrid lays an answer set out in rows and tracks a cursor over it.
type TileGrid struct {
	Set     problemgen.AnswerSet
	Columns int
	Cursor  int
}

// NewTileGrid creates a grid with the cursor on the first tile.
func NewTileGrid(set problemgen.AnswerSet, columns int) TileGrid {
	if columns < 1 {
		columns = 1
	}
	return TileGrid{Set: set, Columns: columns}
}

// Update moves the cursor with the arrow keys (or hjkl). The cursor
// stops at the grid edges.
func (g TileGrid) Update(msg tea.Msg) (TileGrid, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(g.Set) == 0 {
		return g, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if g.Cursor%g.Columns > 0 {
			g.Cursor--
		}
	case "right", "l":
		if g.Cursor%g.Columns < g.Columns-1 && g.Cursor < len(g.Set)-1 {
			g.Cursor++
		}
	case "up", "k":
		if g.Cursor-g.Columns >= 0 {
			g.Cursor -= g.Columns
		}
	case "down", "j":
		if g.Cursor+g.Columns < len(g.Set) {
			g.Cursor += g.Columns
		}
	}
	return g, nil
}

// Selected returns the tile under the cursor.
func (g TileGrid) Selected() (problemgen.Candidate, bool) {
	if g.Cursor < 0 || g.Cursor >= len(g.Set) {
		return problemgen.Candidate{}, false
	}
	return g.Set[g.Cursor], true
}

// Focus moves the cursor to the numeric tile showing v and reports
// whether one exists.
func (g *TileGrid) Focus(v int) bool {
	i := g.Set.IndexOf(v)
	if i < 0 {
		return false
	}
	g.Cursor = i
	return true
}

// View renders the grid. The cursor is hidden once the set is annotated.
func (g TileGrid) View() string {
	showCursor := !g.Set.Annotated()

	var rows []string
	for start := 0; start < len(g.Set); start += g.Columns {
		end := min(start+g.Columns, len(g.Set))
		tiles := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			tiles = append(tiles, renderTile(g.Set[i], showCursor && i == g.Cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	return strings.Join(rows, "\n")
}

func renderTile(c problemgen.Candidate, cursor bool) string {
	label := c.ID()
	switch c.Effect {
	case problemgen.EffectCorrect:
		return theme.TileCorrect.Render(label)
	case problemgen.EffectRevealed:
		return theme.TileRevealed.Render(label)
	case problemgen.EffectWrongChosen:
		return theme.TileWrong.Render(label)
	case problemgen.EffectFaded:
		return theme.TileFaded.Render(label)
	}

	if cursor {
		return theme.TileCursor.Render("▸ " + label)
	}
	if !c.IsNumber() {
		return theme.TileDecoy.Render(label)
	}
	return theme.TileIdle.Render(label)
}
