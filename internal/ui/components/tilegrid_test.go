package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/timestables/internal/problemgen"
)

func testSet() problemgen.AnswerSet {
	return problemgen.AnswerSet{
		problemgen.NumberCandidate(12),
		problemgen.DecoyCandidate("owl"),
		problemgen.NumberCandidate(15),
		problemgen.NumberCandidate(18),
		problemgen.NumberCandidate(20),
		problemgen.DecoyCandidate("pig"),
	}
}

func special(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestTileGrid_Navigation(t *testing.T) {
	g := NewTileGrid(testSet(), 4)

	g, _ = g.Update(special(tea.KeyLeft))
	assert.Equal(t, 0, g.Cursor, "left edge")

	g, _ = g.Update(special(tea.KeyRight))
	assert.Equal(t, 1, g.Cursor)

	g, _ = g.Update(special(tea.KeyDown))
	assert.Equal(t, 5, g.Cursor)

	g, _ = g.Update(special(tea.KeyRight))
	assert.Equal(t, 5, g.Cursor, "last tile")

	g, _ = g.Update(special(tea.KeyUp))
	assert.Equal(t, 1, g.Cursor)

	g.Cursor = 3
	g, _ = g.Update(special(tea.KeyRight))
	assert.Equal(t, 3, g.Cursor, "right edge of a row")

	g, _ = g.Update(special(tea.KeyDown))
	assert.Equal(t, 3, g.Cursor, "no tile below")
}

func TestTileGrid_Focus(t *testing.T) {
	g := NewTileGrid(testSet(), 4)

	assert.True(t, g.Focus(18))
	c, ok := g.Selected()
	assert.True(t, ok)
	assert.Equal(t, 18, c.Value)

	assert.False(t, g.Focus(99))
	assert.Equal(t, 3, g.Cursor, "cursor unchanged")
}

func TestTileGrid_View(t *testing.T) {
	g := NewTileGrid(testSet(), 4)
	view := g.View()
	for _, label := range []string{"12", "owl", "15", "18", "20", "pig"} {
		assert.Contains(t, view, label)
	}
	assert.Contains(t, view, "▸ 12")

	set := testSet()
	set[0] = set[0].WithEffect(problemgen.EffectCorrect)
	g = NewTileGrid(set, 4)
	assert.False(t, strings.Contains(g.View(), "▸"), "cursor hidden after answering")
}
