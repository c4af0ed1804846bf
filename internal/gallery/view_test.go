package gallery

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/fluent/internal/config"
)

func TestView_SlidersPage(t *testing.T) {
	m := newTestModel(t)
	view := ansi.Strip(m.View())

	assert.Contains(t, view, "Fluent gallery")
	assert.Contains(t, view, "1 Sliders")
	assert.Contains(t, view, "Volume")
	assert.Contains(t, view, "Temperature")
	assert.Contains(t, view, "40")
	assert.Contains(t, view, "quit")
}

func TestView_ColorPage(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, runes("2"))
	view := ansi.Strip(m.View())

	assert.Contains(t, view, "hue")
	assert.Contains(t, view, "Saturation")
	assert.Contains(t, view, "hex #0078d4")
	assert.Contains(t, view, "Critical #c42b1c")
	assert.Contains(t, view, "edit hex")
}

func TestView_CommandBarPage(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, runes("3"))
	m, _ = update(t, m, BarWidthMsg{Width: 30})
	view := ansi.Strip(m.View())

	assert.Contains(t, view, "width 30 of 76")
	assert.Contains(t, view, "policy end")
	assert.Contains(t, view, "7 of 10 hidden")
	assert.Contains(t, view, "+ New")
	assert.NotContains(t, view, "Settings")

	m, _ = update(t, m, runes("o"))
	view = ansi.Strip(m.View())
	assert.Contains(t, view, "› Share")
	assert.Contains(t, view, "Settings")
}

func TestView_ErrorBanner(t *testing.T) {
	m := newTestModel(t)
	plain := m.bodyTop()

	m, _ = update(t, m, ErrorMsg{Err: assert.AnError})
	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Error")
	assert.Contains(t, view, assert.AnError.Error())
	assert.Greater(t, m.bodyTop(), plain)
}

func TestView_HelpToggle(t *testing.T) {
	m := newTestModel(t)
	short := ansi.Strip(m.View())
	assert.NotContains(t, short, "jump to page")

	m, _ = update(t, m, runes("?"))
	assert.Contains(t, ansi.Strip(m.View()), "jump to page")
}

func TestView_LightTheme(t *testing.T) {
	g := config.DefaultGallery()
	g.Theme = "light"
	g.Accent = "#8764b8"

	m, err := NewModel(g)
	require.NoError(t, err)
	assert.Equal(t, "light", m.Theme().Name)
	assert.Contains(t, ansi.Strip(m.View()), "light theme · accent #8764b8")
}

func TestSnapshot(t *testing.T) {
	m := newTestModel(t)
	out := ansi.Strip(Render(m, 100))

	for _, p := range Pages {
		assert.Contains(t, out, p.String())
	}
	assert.Contains(t, out, "Brightness")
	assert.Contains(t, out, "policy end")
	assert.NotContains(t, out, "quit")
	assert.Equal(t, PageSliders, m.Page())
}

func TestView_WindowResizeChangesTrack(t *testing.T) {
	m := newTestModel(t)
	narrow, _ := update(t, m, tea.WindowSizeMsg{Width: 30, Height: 20})
	assert.Equal(t, 10, narrow.trackWidth())
	assert.NotEmpty(t, narrow.View())
}
