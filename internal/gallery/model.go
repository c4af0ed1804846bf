package gallery

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/fluent/internal/config"
	"github.com/alexisbeaulieu97/fluent/internal/logger"
	"github.com/alexisbeaulieu97/fluent/pkg/color"
	"github.com/alexisbeaulieu97/fluent/pkg/slider"
	"github.com/alexisbeaulieu97/fluent/pkg/ui"
	"github.com/alexisbeaulieu97/fluent/pkg/ui/components"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// barStep is how many cells [ and ] move the command bar edge.
	barStep = 4
)

// Model is the gallery program state. Slider states, the colour picker and
// the command bar are pointers owned by the model; every change to them goes
// through Update.
type Model struct {
	gallery *config.Gallery
	theme   components.Theme
	styles  styles
	log     *logger.Logger

	page  Page
	focus [3]int

	sliders      []*sliderEntry
	colorSliders []*sliderEntry
	picker       *components.ColorPicker
	swatches     []swatch
	hexInput     textinput.Model
	editingHex   bool

	bar       *components.CommandBar
	barWidth  int
	barPinned bool

	drag dragState

	keys keyMap
	help help.Model

	status string
	errMsg string

	width  int
	height int
}

// sliderEntry binds a slider state to its view and its event recorder.
type sliderEntry struct {
	id      string
	label   string
	format  string
	state   *slider.State
	events  *slider.Recorder
	view    *components.Slider
	isColor bool
	channel components.Channel
}

type swatch struct {
	name  string
	color color.Color
}

// dragState tracks the pointer gesture in progress.
type dragState struct {
	active bool
	entry  *sliderEntry
	lastX  int
	width  int
}

// Option customises a Model.
type Option func(*Model)

// WithLogger routes gallery events to l.
func WithLogger(l *logger.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// WithTheme overrides the theme named by the gallery.
func WithTheme(theme components.Theme) Option {
	return func(m *Model) {
		m.theme = theme
	}
}

// NewModel creates a gallery model for g, or for the default gallery when g
// is nil.
func NewModel(g *config.Gallery, opts ...Option) (Model, error) {
	if g == nil {
		g = config.DefaultGallery()
	}
	if err := config.Validate(g); err != nil {
		return Model{}, err
	}

	theme, err := galleryTheme(g)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		gallery: g,
		theme:   theme,
		log:     logger.Discard(),
		keys:    newKeyMap(),
		help:    help.New(),
		width:   defaultWidth,
		height:  defaultHeight,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.log = m.log.WithComponent("gallery")
	m.styles = newStyles(m.theme)

	if err := m.buildSliders(); err != nil {
		return Model{}, err
	}
	if err := m.buildColor(); err != nil {
		return Model{}, err
	}
	m.buildBar()

	m.applySize()
	m.syncFocus()
	return m, nil
}

func galleryTheme(g *config.Gallery) (components.Theme, error) {
	theme, err := components.ThemeByName(g.ThemeName())
	if err != nil {
		return components.Theme{}, err
	}
	if g.Accent != "" {
		accent, err := color.ParseHex(g.Accent)
		if err != nil {
			return components.Theme{}, fmt.Errorf("gallery accent: %w", err)
		}
		theme = theme.WithAccent(accent)
	}
	return theme, nil
}

func (m *Model) buildSliders() error {
	labelWidth := 0
	for _, spec := range m.gallery.Sliders {
		labelWidth = max(labelWidth, lipgloss.Width(spec.Label))
	}

	m.sliders = make([]*sliderEntry, 0, len(m.gallery.Sliders))
	for _, spec := range m.gallery.Sliders {
		entry, err := newSliderEntry(spec.ID, spec.Label, spec.Format, spec.Options())
		if err != nil {
			return fmt.Errorf("slider %q: %w", spec.ID, err)
		}
		entry.view.WithLabelWidth(labelWidth)
		m.sliders = append(m.sliders, entry)
	}
	return nil
}

func (m *Model) buildColor() error {
	initial := components.DefaultAccent
	m.swatches = make([]swatch, 0, len(m.gallery.Colors))
	for i, spec := range m.gallery.Colors {
		c, err := spec.Color()
		if err != nil {
			return fmt.Errorf("colour %q: %w", spec.Name, err)
		}
		if i == 0 {
			initial = c
		}
		m.swatches = append(m.swatches, swatch{name: spec.Name, color: c})
	}

	hsv := initial.HSV()
	m.picker = components.NewColorPicker(initial).WithAlpha(true)
	m.colorSliders = make([]*sliderEntry, 0, len(components.Channels))
	for _, ch := range components.Channels {
		format := "%.2f"
		if ch == components.ChannelHue {
			format = "%.0f°"
		}
		opts := slider.Options{
			Value:       ch.Get(hsv),
			Range:       slider.Range{Start: 0, End: ch.Max()},
			Snap:        true,
			ThumbRadius: 0.5,
		}
		entry, err := newSliderEntry("color."+ch.String(), channelLabel(ch), format, opts)
		if err != nil {
			return err
		}
		entry.isColor = true
		entry.channel = ch
		entry.view.WithLabelWidth(10).WithTicks(false)
		m.colorSliders = append(m.colorSliders, entry)
	}

	m.hexInput = textinput.New()
	m.hexInput.Prompt = "hex "
	m.hexInput.Placeholder = "#rrggbb"
	m.hexInput.CharLimit = 9
	m.hexInput.SetValue(hexFor(m.picker.Color()))
	return nil
}

func (m *Model) buildBar() {
	items := make([]ui.Keyed, 0, len(m.gallery.Overflow.Items))
	for _, spec := range m.gallery.Overflow.Items {
		items = append(items, components.SubtleButton(spec.Label).WithKey(spec.ID).WithIcon(spec.Icon))
	}
	m.bar = components.NewCommandBar(m.gallery.Overflow.Options(), items...)
}

func newSliderEntry(id, label, format string, opts slider.Options) (*sliderEntry, error) {
	events := &slider.Recorder{}
	opts.Listener = events
	state, err := slider.New(opts)
	if err != nil {
		return nil, err
	}
	if format == "" {
		format = "%.2f"
	}
	return &sliderEntry{
		id:     id,
		label:  label,
		format: format,
		state:  state,
		events: events,
		view:   components.NewSlider(state).WithLabel(label).WithFormat(format),
	}, nil
}

func channelLabel(ch components.Channel) string {
	name := ch.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

func hexFor(c color.Color) string {
	if c.A >= 1 {
		return c.Hex()
	}
	return c.HexWithAlpha()
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	return nil
}

// Helper Methods

// pageSliders returns the sliders shown on the current page.
func (m *Model) pageSliders() []*sliderEntry {
	switch m.page {
	case PageSliders:
		return m.sliders
	case PageColor:
		return m.colorSliders
	default:
		return nil
	}
}

func (m *Model) allSliders() []*sliderEntry {
	all := make([]*sliderEntry, 0, len(m.sliders)+len(m.colorSliders))
	all = append(all, m.sliders...)
	return append(all, m.colorSliders...)
}

func (m *Model) sliderByID(id string) (*sliderEntry, bool) {
	for _, e := range m.allSliders() {
		if e.id == id {
			return e, true
		}
	}
	return nil, false
}

// drainSliderEvents turns what the slider listeners recorded since the last
// call into one SliderChangedMsg per slider.
func (m *Model) drainSliderEvents() tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range m.allSliders() {
		rec := e.events
		if len(rec.Changes) == 0 && len(rec.Finishes) == 0 {
			continue
		}
		msg := SliderChangedMsg{ID: e.id, Value: e.state.Value()}
		if v, ok := rec.Last(); ok {
			msg.Value = v
			msg.Finished = true
		} else {
			msg.Value = rec.Changes[len(rec.Changes)-1]
		}
		rec.Changes = rec.Changes[:0]
		rec.Finishes = rec.Finishes[:0]
		cmds = append(cmds, func() tea.Msg { return msg })
	}

	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

// applySliderChange mirrors a slider change into whatever depends on it.
func (m *Model) applySliderChange(msg SliderChangedMsg) {
	entry, ok := m.sliderByID(msg.ID)
	if !ok {
		m.log.WithFields(map[string]any{"slider": msg.ID}).Warn("change for unknown slider")
		return
	}

	if entry.isColor {
		m.picker.SetChannel(entry.channel, msg.Value)
		if !m.editingHex {
			m.hexInput.SetValue(hexFor(m.picker.Color()))
		}
	}

	m.status = fmt.Sprintf("%s: %s", entry.label, fmt.Sprintf(entry.format, msg.Value))
	if msg.Finished {
		m.log.WithFields(map[string]any{"slider": msg.ID, "value": msg.Value}).Debug("slider settled")
	}
}

// setColor replaces the colour being edited and moves the channel sliders to
// match without notifying their listeners.
func (m *Model) setColor(c color.Color) {
	m.picker.SetColor(c)
	hsv := m.picker.Value()
	for _, e := range m.colorSliders {
		e.state.SetValue(e.channel.Get(hsv))
	}
	m.hexInput.SetValue(hexFor(c))
	m.status = fmt.Sprintf("Colour %s", c.HexWithAlpha())
	m.log.WithFields(map[string]any{"hex": c.HexWithAlpha()}).Debug("colour applied")
}

func (m *Model) setPage(p Page) {
	n := Page(len(Pages))
	p = ((p % n) + n) % n
	if p == m.page {
		return
	}
	m.page = p
	m.bar.SetOpen(false)
	m.syncFocus()
}

func (m *Model) moveFocus(delta int) {
	entries := m.pageSliders()
	if len(entries) == 0 {
		return
	}
	n := len(entries)
	m.focus[m.page] = ((m.focus[m.page]+delta)%n + n) % n
	m.syncFocus()
}

// FocusedSlider returns the focused slider state on the current page.
func (m Model) FocusedSlider() (*slider.State, bool) {
	entries := m.pageSliders()
	idx := m.focus[m.page]
	if idx < 0 || idx >= len(entries) {
		return nil, false
	}
	return entries[idx].state, true
}

func (m *Model) syncFocus() {
	for i, e := range m.sliders {
		e.view.WithFocused(m.page == PageSliders && i == m.focus[PageSliders])
	}
	for i, e := range m.colorSliders {
		e.view.WithFocused(m.page == PageColor && i == m.focus[PageColor])
	}
	if i := m.focus[PageColor]; i < len(components.Channels) {
		m.picker.WithFocus(components.Channels[i])
	}
}

// applySize propagates the window size to every width-dependent component.
func (m *Model) applySize() {
	m.help.Width = m.width
	track := m.trackWidth()
	for _, e := range m.allSliders() {
		e.view.WithTrackWidth(track)
	}
	m.picker.WithWidth(track)
	if !m.barPinned {
		m.barWidth = m.maxBarWidth()
	}
	m.setBarWidth(m.barWidth)
}

// trackWidth is the number of cells every slider track spans.
func (m *Model) trackWidth() int {
	labelWidth := 10
	for _, e := range m.sliders {
		labelWidth = max(labelWidth, lipgloss.Width(e.label))
	}
	w := m.width - 2*bodyIndent - labelWidth - 1 - 1 - 8
	return min(max(w, 10), 60)
}

func (m *Model) maxBarWidth() int {
	return max(m.width-2*bodyIndent, 0)
}

func (m *Model) setBarWidth(w int) {
	m.barWidth = min(max(w, 0), m.maxBarWidth())
	m.relayout()
}

// relayout runs a layout pass so the hidden range is current before any
// flyout decision is made.
func (m *Model) relayout() {
	m.bar.Layout(m.barContext())
}

func (m *Model) barContext() components.RenderContext {
	return components.RenderContext{
		Theme:       m.theme,
		Constraints: components.WithMaxWidth(m.barWidth),
	}
}

// Page returns the current page.
func (m Model) Page() Page {
	return m.page
}

// Status returns the status line.
func (m Model) Status() string {
	return m.status
}

// Error returns the banner message, empty when none is shown.
func (m Model) Error() string {
	return m.errMsg
}

// Picker returns the colour picker.
func (m Model) Picker() *components.ColorPicker {
	return m.picker
}

// CommandBar returns the command bar.
func (m Model) CommandBar() *components.CommandBar {
	return m.bar
}

// BarWidth returns the width available to the command bar.
func (m Model) BarWidth() int {
	return m.barWidth
}

// Slider returns the state of the slider with the given id. Colour channel
// sliders are named "color.hue", "color.saturation" and so on.
func (m Model) Slider(id string) (*slider.State, bool) {
	e, ok := m.sliderByID(id)
	if !ok {
		return nil, false
	}
	return e.state, true
}

// IsEditingHex reports whether the hex field has focus.
func (m Model) IsEditingHex() bool {
	return m.editingHex
}

// Theme returns the theme in use.
func (m Model) Theme() components.Theme {
	return m.theme
}
