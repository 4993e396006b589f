package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/undertow/internal/render"
	"chosenoffset.com/undertow/internal/render/rendertest"
	"chosenoffset.com/undertow/internal/world/level"
)

func newTestMenu(levels ...level.Entry) (*MainMenu, *rendertest.Input, *rendertest.Renderer) {
	in := rendertest.NewInput()
	r := &rendertest.Renderer{}
	return NewMainMenu(levels, r, in, 800, 600), in, r
}

func TestBuiltinLevelIsListedFirst(t *testing.T) {
	m, _, _ := newTestMenu(level.Entry{Name: "Trench", Path: "levels/trench.yaml"})
	require.Len(t, m.Entries(), 2)
	assert.Equal(t, BuiltinName, m.Entries()[0].Name)
	assert.Empty(t, m.Entries()[0].Path)
	assert.Equal(t, "levels/trench.yaml", m.Entries()[1].Path)
}

func TestKeyboardNavigationWraps(t *testing.T) {
	m, in, _ := newTestMenu(level.Entry{Name: "A", Path: "a.yaml"}, level.Entry{Name: "B", Path: "b.yaml"})

	in.Press(render.KeyUp)
	ok, _ := m.Update()
	assert.False(t, ok)
	assert.Equal(t, 2, m.Selected(), "up from the top wraps to the bottom")
	in.EndFrame()

	in.Press(render.KeyDown)
	m.Update()
	assert.Equal(t, 0, m.Selected())
	in.EndFrame()

	in.Press(render.KeyDown)
	m.Update()
	in.EndFrame()

	in.Press(render.KeyEnter)
	ok, sel := m.Update()
	assert.True(t, ok)
	assert.Equal(t, "a.yaml", sel.Path)
}

func TestHeldKeysDoNotRepeat(t *testing.T) {
	m, in, _ := newTestMenu(level.Entry{Name: "A", Path: "a.yaml"})
	in.Press(render.KeyDown)
	m.Update()
	in.EndFrame()

	m.Update()
	m.Update()
	assert.Equal(t, 1, m.Selected())
}

func TestClickSelectsThenStarts(t *testing.T) {
	m, in, _ := newTestMenu(level.Entry{Name: "A", Path: "a.yaml"})
	secondRow := listY + entryHeight + 5

	in.Click(listX+10, secondRow)
	ok, _ := m.Update()
	assert.False(t, ok)
	assert.Equal(t, 1, m.Selected())
	in.EndFrame()

	in.Click(listX+10, secondRow)
	ok, sel := m.Update()
	assert.True(t, ok)
	assert.Equal(t, "A", sel.Name)
}

func TestClickOutsideListIsIgnored(t *testing.T) {
	m, in, _ := newTestMenu()
	in.Click(700, 500)
	ok, _ := m.Update()
	assert.False(t, ok)
	assert.Equal(t, 0, m.Selected())
}

func TestDrawListsEntries(t *testing.T) {
	m, _, r := newTestMenu(level.Entry{Name: "Trench", Path: "t.yaml"})
	screen := rendertest.NewImage(800, 600)
	m.Draw(screen)

	assert.Equal(t, 1, screen.Fills)
	assert.Contains(t, r.Texts, "UNDERTOW")
	assert.Contains(t, r.Texts, "Trench")
	assert.Contains(t, r.Texts, ">")
	assert.NotContains(t, r.Texts, "No level files found, only the built-in site is available.")
}
