package gallery

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/fluent/internal/config"
	"github.com/alexisbeaulieu97/fluent/internal/logger"
	"github.com/alexisbeaulieu97/fluent/pkg/ui/components"
)

func TestNewModelDefaults(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, PageSliders, m.Page())
	assert.Equal(t, "dark", m.Theme().Name)
	assert.Nil(t, m.Init())

	for _, id := range []string{"volume", "brightness", "opacity", "temperature", "color.hue", "color.alpha"} {
		_, ok := m.Slider(id)
		assert.True(t, ok, id)
	}

	opacity, _ := m.Slider("opacity")
	assert.False(t, opacity.Snap())
	assert.Equal(t, 9, opacity.Steps())

	assert.Equal(t, "#0078d4", m.Picker().Color().Hex())
	assert.Len(t, m.CommandBar().Items(), 10)
}

func TestNewModelWithTheme(t *testing.T) {
	m, err := NewModel(nil, WithTheme(components.LightTheme()))
	require.NoError(t, err)
	assert.Equal(t, "light", m.Theme().Name)
}

func TestNewModelEmptyGallery(t *testing.T) {
	g := config.DefaultGallery()
	g.Sliders = nil
	g.Colors = nil
	g.Overflow.Items = nil

	m, err := NewModel(g)
	require.NoError(t, err)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "No sliders configured.")
	_, ok := m.FocusedSlider()
	assert.False(t, ok)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Nil(t, cmd)

	assert.Equal(t, components.DefaultAccent.Hex(), m.Picker().Color().Hex())

	m, _ = update(t, m, runes("3"))
	assert.True(t, m.CommandBar().OverflowRange().Empty())
	assert.NotEmpty(t, m.View())
}

func TestModelLogsSettledSliders(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)

	m, err := NewModel(nil, WithLogger(log))
	require.NoError(t, err)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	settle(t, m, cmd)

	out := buf.String()
	assert.Contains(t, out, `"component":"gallery"`)
	assert.Contains(t, out, `"slider":"volume"`)
	assert.Contains(t, out, "slider settled")
}

func TestPageString(t *testing.T) {
	assert.Equal(t, "Sliders", PageSliders.String())
	assert.Equal(t, "Color", PageColor.String())
	assert.Equal(t, "Command bar", PageCommandBar.String())
}

func TestChannelLabel(t *testing.T) {
	assert.Equal(t, "Hue", channelLabel(components.ChannelHue))
	assert.Equal(t, "Alpha", channelLabel(components.ChannelAlpha))
}
