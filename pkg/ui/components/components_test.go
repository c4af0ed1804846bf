package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/fluent/pkg/color"
	"github.com/alexisbeaulieu97/fluent/pkg/overflowrow"
	"github.com/alexisbeaulieu97/fluent/pkg/slider"
	"github.com/alexisbeaulieu97/fluent/pkg/ui"
)

func plain(s string) string {
	return ansi.Strip(s)
}

func TestThemeByName(t *testing.T) {
	light, err := ThemeByName("light")
	require.NoError(t, err)
	assert.Equal(t, "light", light.Name)
	assert.Equal(t, "#0078d4", light.Palette.Accent.Base.Light)
	assert.Equal(t, "#60cdff", light.Palette.Accent.Base.Dark)

	dark, err := ThemeByName(" Dark ")
	require.NoError(t, err)
	assert.Equal(t, "dark", dark.Name)

	_, err = ThemeByName("solarized")
	assert.Error(t, err)
}

func TestAccentRampOrdersShadesByValue(t *testing.T) {
	ramp := NewAccentRamp(DefaultAccent)

	v := func(c color.Color) float64 { return c.HSV().V }
	assert.Greater(t, v(ramp.Light1), v(ramp.Base))
	assert.Greater(t, v(ramp.Light2), v(ramp.Light1))
	assert.Greater(t, v(ramp.Light3), v(ramp.Light2))
	assert.Less(t, v(ramp.Dark1), v(ramp.Base))
	assert.Less(t, v(ramp.Dark2), v(ramp.Dark1))
	assert.Less(t, v(ramp.Dark3), v(ramp.Dark2))
	assert.InDelta(t, DefaultAccent.HSV().H, ramp.Dark3.HSV().H, 1e-6)
}

func TestWithAccentRecolours(t *testing.T) {
	purple := color.MustParseHex("#8764b8")
	theme := DarkTheme().WithAccent(purple)

	assert.Equal(t, "dark", theme.Name)
	assert.Equal(t, "#8764b8", theme.Palette.Accent.Base.Light)
	assert.Equal(t, purple, theme.Accent.Base)
}

func TestAddAppliersKeepsCustomStrategy(t *testing.T) {
	text := NewText("x")
	text.SetStrategy(NewCompositeStrategy(func(s lipgloss.Style, _ Theme) lipgloss.Style {
		return s.Bold(true)
	}))
	text.AddAppliers(func(s lipgloss.Style, _ Theme) lipgloss.Style {
		return s.Italic(true)
	})

	style := text.ComputeStyle(DefaultTheme())
	assert.True(t, style.GetBold())
	assert.True(t, style.GetItalic())
}

func TestConstraints(t *testing.T) {
	w, h := WithMaxWidth(10).Constrain(30, 4)
	assert.Equal(t, 10, w)
	assert.Equal(t, 4, h)

	w, _ = WithWidth(12).Constrain(3, 1)
	assert.Equal(t, 12, w)

	assert.False(t, Unconstrained().HasWidth())
	assert.Equal(t, overflowrow.Constraints{MinWidth: 0, MaxWidth: 20, MaxHeight: -1}, WithMaxWidth(20).Row())
}

func TestAvailableWidth(t *testing.T) {
	ctx := DefaultContext()
	assert.Equal(t, 40, ctx.AvailableWidth(40))

	ctx.ParentWidth = 70
	assert.Equal(t, 70, ctx.AvailableWidth(40))

	assert.Equal(t, 25, ctx.WithConstraints(WithMaxWidth(25)).AvailableWidth(40))
}

func TestDividerFillsContextWidth(t *testing.T) {
	ctx := DefaultContext().WithConstraints(WithMaxWidth(12))
	assert.Equal(t, strings.Repeat("─", 12), plain(NewDivider().ViewWithContext(ctx)))
	assert.Equal(t, 5, lipgloss.Width(NewDivider().WithWidth(5).ViewWithContext(ctx)))
}

func TestSpacer(t *testing.T) {
	assert.Equal(t, "   ", HorizontalSpacer(3).View())
	assert.Equal(t, "\n", VerticalSpacer(2).View())
	assert.Empty(t, NewSpacer(0, 0).View())
}

func TestStackGap(t *testing.T) {
	h := HStack(NewText("a"), NewText("b")).WithGap(2)
	assert.Equal(t, "a  b", plain(h.View()))

	v := plain(VStack(NewText("a"), NewText("b")).WithGap(1).View())
	lines := strings.Split(v, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "a", lines[0])
	assert.Empty(t, strings.TrimSpace(lines[1]))
	assert.Equal(t, "b", lines[2])
}

func TestHeaderWithSubtitle(t *testing.T) {
	view := plain(NewHeader("Sliders").WithSubtitle("drag or use arrows").View())
	assert.Contains(t, view, "Sliders")
	assert.Contains(t, view, "drag or use arrows")
	assert.Equal(t, 2, lipgloss.Height(view))
}

func TestButtonText(t *testing.T) {
	b := SubtleButton("Share").WithIcon("↗")
	assert.Equal(t, "↗ Share", b.Text())
	assert.Equal(t, "share", b.Key())
	assert.Contains(t, plain(b.View()), "↗ Share")

	icon := NewButton("").WithIcon("✎").WithKey("edit")
	assert.Equal(t, "✎", icon.Text())
	assert.Equal(t, "edit", icon.Key())
}

func TestInfoBarShowsSeverityIcon(t *testing.T) {
	view := plain(NewInfoBar("saved").WithSeverity(SeveritySuccess).WithTitle("Done").View())
	assert.Contains(t, view, "✓")
	assert.Contains(t, view, "Done")
	assert.Contains(t, view, "saved")
}

func TestCardTitle(t *testing.T) {
	view := plain(NewCard(NewText("body")).WithTitle("Colour").View())
	lines := strings.Split(view, "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Contains(t, lines[1], "Colour")
	assert.Contains(t, lines[2], "body")
}

func newSliderState(t *testing.T, opts slider.Options) *slider.State {
	t.Helper()
	s, err := slider.New(opts)
	require.NoError(t, err)
	return s
}

func TestSliderTrack(t *testing.T) {
	state := newSliderState(t, slider.Options{Value: 50, Range: slider.Range{Start: 0, End: 100}, ThumbRadius: 0.5})
	theme := DefaultTheme()

	track := plain(NewSlider(state).Track(theme, 11))
	assert.Equal(t, "━━━━━●─────", track)
	assert.Equal(t, 5, ThumbCell(state, 11))

	state.SetValue(0)
	assert.Equal(t, "●──────────", plain(NewSlider(state).Track(theme, 11)))
	state.SetValue(100)
	assert.Equal(t, "━━━━━━━━━━●", plain(NewSlider(state).Track(theme, 11)))
}

func TestSliderDragGlyph(t *testing.T) {
	state := newSliderState(t, slider.Options{Range: slider.Range{Start: 0, End: 1}, ThumbRadius: 0.5})
	state.StartDragging(PointerOffset(3), 10)

	assert.Contains(t, plain(NewSlider(state).Track(DefaultTheme(), 10)), "◉")
	assert.Equal(t, 3, ThumbCell(state, 10))
}

func TestSliderViewWithTicks(t *testing.T) {
	state := newSliderState(t, slider.Options{Value: 25, Range: slider.Range{Start: 0, End: 100}, Steps: 3, ThumbRadius: 0.5})
	view := plain(NewSlider(state).WithLabel("Volume").WithTrackWidth(9).WithFormat("%.0f").View())

	lines := strings.Split(view, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Volume ━━●────── 25", lines[0])
	assert.Equal(t, "       ┴ ┴ ┴ ┴ ┴", strings.TrimRight(lines[1], " "))
}

func TestSliderFillsAvailableWidth(t *testing.T) {
	state := newSliderState(t, slider.Options{Range: slider.Range{Start: 0, End: 1}})
	s := NewSlider(state).WithLabel("Opacity").WithTicks(false)
	ctx := DefaultContext().WithConstraints(WithMaxWidth(40))

	assert.Equal(t, 8, s.TrackOffset())
	assert.Equal(t, 40-8-1-4, s.TrackWidth(ctx))
	assert.Equal(t, 40, lipgloss.Width(s.ViewWithContext(ctx)))
}

func TestStripSweepsChannel(t *testing.T) {
	base := color.HSVA(0, 1, 1, 1)

	hue := Strip(base, ChannelHue, 6)
	require.Len(t, hue, 6)
	assert.Equal(t, "#ff0000", hue[0].Hex())
	assert.Equal(t, "#ffff00", hue[1].Hex())
	assert.Equal(t, "#ff00ff", hue[5].Hex())

	value := Strip(base, ChannelValue, 3)
	assert.Equal(t, "#000000", value[0].Hex())
	assert.Equal(t, "#ff0000", value[2].Hex())

	assert.Nil(t, Strip(base, ChannelSaturation, 0))
}

func TestChannelSetWrapsAndClamps(t *testing.T) {
	hsv := color.HSVA(10, 0.5, 0.5, 1)
	assert.Equal(t, 20.0, ChannelHue.Set(hsv, 380).H)
	assert.Equal(t, 1.0, ChannelSaturation.Set(hsv, 3).S)
	assert.Equal(t, 0.0, ChannelValue.Set(hsv, -1).V)
	assert.Equal(t, 0.25, ChannelAlpha.Get(ChannelAlpha.Set(hsv, 0.25)))
}

func TestColorPickerView(t *testing.T) {
	picker := NewColorPicker(color.MustParseHex("#ff0000")).WithWidth(11)

	assert.Equal(t, 0, picker.MarkerCell(ChannelHue, 11))
	assert.Equal(t, 10, picker.MarkerCell(ChannelSaturation, 11))

	view := plain(picker.View())
	assert.Contains(t, view, "#ff0000ff")
	assert.Contains(t, view, "hue")
	assert.Contains(t, view, "saturation")
	assert.NotContains(t, view, "alpha")
	assert.Contains(t, plain(picker.WithAlpha(true).View()), "alpha")

	picker.SetChannel(ChannelHue, 120)
	assert.Equal(t, "#00ff00", picker.Color().Hex())
}

func TestFlyoutSelection(t *testing.T) {
	f := NewFlyout("Copy", "Paste", "Delete")
	assert.Equal(t, 0, f.Selected())

	f.Move(-1)
	item, ok := f.SelectedItem()
	require.True(t, ok)
	assert.Equal(t, "Delete", item)

	f.SetItems([]string{"Copy"})
	assert.Equal(t, 0, f.Selected())

	view := plain(f.View())
	assert.Contains(t, view, "› Copy")

	empty := NewFlyout()
	assert.Equal(t, -1, empty.Selected())
	assert.Empty(t, empty.View())
}

func commands(labels ...string) []ui.Keyed {
	items := make([]ui.Keyed, len(labels))
	for i, label := range labels {
		items[i] = SubtleButton(label)
	}
	return items
}

func TestCommandBarOverflows(t *testing.T) {
	// Each subtle button is its label plus one cell of padding per side.
	bar := NewCommandBar(overflowrow.Options{Spacing: 1}, commands("New", "Open", "Save", "Share", "Print")...)
	ctx := DefaultContext().WithConstraints(WithMaxWidth(20))

	view := plain(bar.ViewWithContext(ctx))
	assert.Equal(t, overflowrow.Range{Start: 2, End: 5}, bar.OverflowRange())
	assert.Equal(t, []string{"save", "share", "print"}, bar.HiddenKeys())
	assert.Contains(t, view, "New")
	assert.Contains(t, view, "Open")
	assert.Contains(t, view, OverflowGlyph)
	assert.NotContains(t, view, "Save")
	assert.LessOrEqual(t, lipgloss.Width(view), 20)
}

func TestCommandBarFlyout(t *testing.T) {
	bar := NewCommandBar(overflowrow.Options{Spacing: 1, Policy: overflowrow.PolicyStart}, commands("New", "Open", "Save", "Share", "Print")...)
	ctx := DefaultContext().WithConstraints(WithMaxWidth(20))

	bar.Layout(ctx)
	bar.Toggle()
	require.True(t, bar.IsOpen())

	view := plain(bar.ViewWithContext(ctx))
	assert.Contains(t, view, "› New")
	assert.Contains(t, view, "Open")

	bar.Flyout().Move(1)
	item, ok := bar.SelectedHidden()
	require.True(t, ok)
	assert.Equal(t, "open", item.Key())

	// Widening the bar until nothing is hidden closes the flyout.
	bar.ViewWithContext(DefaultContext())
	assert.False(t, bar.IsOpen())
	assert.Empty(t, bar.HiddenKeys())
}

func TestCommandBarToggleWithoutOverflow(t *testing.T) {
	bar := NewCommandBar(overflowrow.Options{}, commands("A")...)
	bar.Layout(DefaultContext())
	bar.Toggle()
	assert.False(t, bar.IsOpen())
}

func TestItemLabelFallsBackToKey(t *testing.T) {
	assert.Equal(t, "Save", ItemLabel(SubtleButton("Save")))
	assert.Equal(t, "keyed", ItemLabel(keyedText{Text: NewText("x")}))
}

type keyedText struct {
	*Text
}

func (keyedText) Key() string { return "keyed" }
