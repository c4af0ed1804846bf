package gallery

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/fluent/pkg/color"
	"github.com/alexisbeaulieu97/fluent/pkg/overflowrow"
	"github.com/alexisbeaulieu97/fluent/pkg/ui"
	"github.com/alexisbeaulieu97/fluent/pkg/ui/components"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// System messages
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applySize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	// Slider messages
	case SliderChangedMsg:
		m.applySliderChange(msg)
		return m, nil

	// Color messages
	case ColorAppliedMsg:
		m.setColor(msg.Color)
		return m, nil

	// Command bar messages
	case BarWidthMsg:
		m.barPinned = true
		m.setBarWidth(msg.Width)
		return m, nil

	case PolicyChangedMsg:
		m.setPolicy(msg.Policy)
		return m, nil

	case CommandInvokedMsg:
		m.bar.SetOpen(false)
		m.status = fmt.Sprintf("Invoked %s", msg.Label)
		m.log.WithFields(map[string]any{"command": msg.Key}).Info("command invoked")
		return m, nil

	// Error messages
	case ErrorMsg:
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
		}
		return m, nil

	case ClearErrorMsg:
		m.errMsg = ""
		return m, nil
	}

	if m.editingHex {
		var cmd tea.Cmd
		m.hexInput, cmd = m.hexInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyPress handles keyboard input based on current page
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editingHex {
		return m.handleHexKeys(msg)
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.nextPage):
		cmd := m.cancelDrag()
		m.setPage(m.page + 1)
		return m, cmd

	case key.Matches(msg, m.keys.prevPage):
		cmd := m.cancelDrag()
		m.setPage(m.page - 1)
		return m, cmd

	// Direct selection with number keys
	case key.Matches(msg, m.keys.jump):
		index := int(msg.String()[0] - '1')
		if index >= 0 && index < len(Pages) {
			cmd := m.cancelDrag()
			m.setPage(Pages[index])
			return m, cmd
		}
		return m, nil
	}

	switch m.page {
	case PageCommandBar:
		return m.handleBarKeys(msg)
	default:
		return m.handleSliderKeys(msg)
	}
}

// handleSliderKeys handles keys on the sliders and colour pages
func (m Model) handleSliderKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.up):
		m.moveFocus(-1)
		return m, nil

	case key.Matches(msg, m.keys.down):
		m.moveFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.left):
		return m, m.stepFocused(-1)

	case key.Matches(msg, m.keys.right):
		return m, m.stepFocused(1)

	case m.page == PageColor && key.Matches(msg, m.keys.editHex):
		m.editingHex = true
		m.hexInput.SetValue("")
		return m, m.hexInput.Focus()

	case key.Matches(msg, m.keys.cancel):
		m.errMsg = ""
		return m, nil
	}

	return m, nil
}

func (m *Model) stepFocused(direction int) tea.Cmd {
	if m.drag.active {
		return nil
	}
	entries := m.pageSliders()
	idx := m.focus[m.page]
	if idx < 0 || idx >= len(entries) {
		return nil
	}
	entries[idx].state.Step(direction)
	return m.drainSliderEvents()
}

// handleHexKeys handles keys while the hex field has focus
func (m Model) handleHexKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.confirm):
		value := m.hexInput.Value()
		m.editingHex = false
		m.hexInput.Blur()

		c, err := color.ParseHex(value)
		if err != nil {
			m.hexInput.SetValue(hexFor(m.picker.Color()))
			m.errMsg = err.Error()
			m.log.WithFields(map[string]any{"input": value}).Warn("rejected hex colour")
			return m, nil
		}
		m.errMsg = ""
		return m, func() tea.Msg { return ColorAppliedMsg{Color: c} }

	case key.Matches(msg, m.keys.cancel):
		m.editingHex = false
		m.hexInput.Blur()
		m.hexInput.SetValue(hexFor(m.picker.Color()))
		return m, nil

	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.hexInput, cmd = m.hexInput.Update(msg)
	return m, cmd
}

// handleBarKeys handles keys on the command bar page
func (m Model) handleBarKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.shrink):
		m.barPinned = true
		m.setBarWidth(m.barWidth - barStep)
		return m, nil

	case key.Matches(msg, m.keys.grow):
		m.barPinned = true
		m.setBarWidth(m.barWidth + barStep)
		return m, nil

	case key.Matches(msg, m.keys.overflow):
		m.bar.Toggle()
		if !m.bar.IsOpen() && m.bar.OverflowRange().Empty() {
			m.status = "Every command fits"
		}
		return m, nil

	case key.Matches(msg, m.keys.policy):
		m.setPolicy(nextPolicy(m.bar.Options().Policy))
		return m, nil

	case m.bar.IsOpen() && key.Matches(msg, m.keys.up):
		m.bar.Flyout().Move(-1)
		return m, nil

	case m.bar.IsOpen() && key.Matches(msg, m.keys.down):
		m.bar.Flyout().Move(1)
		return m, nil

	case m.bar.IsOpen() && key.Matches(msg, m.keys.confirm):
		if item, ok := m.bar.SelectedHidden(); ok {
			return m, invoke(item)
		}
		return m, nil

	case key.Matches(msg, m.keys.cancel):
		if m.bar.IsOpen() {
			m.bar.SetOpen(false)
			return m, nil
		}
		m.errMsg = ""
		return m, nil
	}

	return m, nil
}

func invoke(item ui.Keyed) tea.Cmd {
	msg := CommandInvokedMsg{Key: item.Key(), Label: components.ItemLabel(item)}
	return func() tea.Msg { return msg }
}

func nextPolicy(p overflowrow.Policy) overflowrow.Policy {
	switch p {
	case overflowrow.PolicyEnd:
		return overflowrow.PolicyStart
	case overflowrow.PolicyStart:
		return overflowrow.PolicyCenter
	default:
		return overflowrow.PolicyEnd
	}
}

func (m *Model) setPolicy(p overflowrow.Policy) {
	opts := m.bar.Options()
	opts.Policy = p
	m.bar.SetOptions(opts)
	m.bar.SetOpen(false)
	m.relayout()
	m.status = fmt.Sprintf("Overflow policy: %s", p)
	m.log.WithFields(map[string]any{"policy": p.String()}).Debug("overflow policy changed")
}

// Mouse handling

// handleMouse drives the slider state machine from pointer events: a press on
// a track starts a drag at that cell, motion feeds deltas, release settles.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if hit, ok := m.hitSlider(msg.X, msg.Y); ok {
			m.focus[m.page] = hit.index
			m.syncFocus()
			hit.entry.state.StartDragging(components.PointerOffset(hit.cell), float64(hit.width))
			m.drag = dragState{active: true, entry: hit.entry, lastX: msg.X, width: hit.width}
			return m, m.drainSliderEvents()
		}
		if m.page == PageCommandBar {
			return m.clickBar(msg.X, msg.Y)
		}

	case tea.MouseActionMotion:
		if !m.drag.active {
			return m, nil
		}
		delta := msg.X - m.drag.lastX
		m.drag.lastX = msg.X
		if delta == 0 {
			return m, nil
		}
		m.drag.entry.state.UpdateDelta(float64(delta), float64(m.drag.width))
		return m, m.drainSliderEvents()

	case tea.MouseActionRelease:
		return m, m.cancelDrag()
	}

	return m, nil
}

// cancelDrag ends a gesture in progress, settling its value.
func (m *Model) cancelDrag() tea.Cmd {
	if !m.drag.active {
		return nil
	}
	m.drag.entry.state.StopDragging(float64(m.drag.width))
	m.drag = dragState{}
	return m.drainSliderEvents()
}

type sliderHit struct {
	entry *sliderEntry
	index int
	cell  int
	width int
}

// hitSlider maps a screen position onto a slider track cell.
func (m *Model) hitSlider(x, y int) (sliderHit, bool) {
	row := m.bodyTop()
	for _, b := range m.pageBlocks() {
		if b.slider != nil && y == row {
			x0 := bodyIndent + b.slider.view.TrackOffset()
			w := m.trackWidth()
			if x >= x0 && x < x0+w {
				return sliderHit{entry: b.slider, index: b.index, cell: x - x0, width: w}, true
			}
			return sliderHit{}, false
		}
		row += lipgloss.Height(b.view) + 1
	}
	return sliderHit{}, false
}

// clickBar invokes the command under the pointer, toggles the flyout from the
// overflow button, or picks a flyout entry.
func (m Model) clickBar(x, y int) (tea.Model, tea.Cmd) {
	row := m.bodyTop()
	for _, b := range m.pageBlocks() {
		if !b.bar {
			row += lipgloss.Height(b.view) + 1
			continue
		}

		res := m.bar.LastLayout()
		if y >= row && y < row+res.Height {
			for _, p := range res.Placements {
				left := bodyIndent + p.X
				if x < left || x >= left+p.Size.Width {
					continue
				}
				if p.IsIndicator() {
					m.bar.Toggle()
					return m, nil
				}
				items := m.bar.Items()
				if p.Index >= 0 && p.Index < len(items) {
					return m, invoke(items[p.Index])
				}
			}
			return m, nil
		}

		// Flyout entries sit under the bar, inside a one-cell border.
		if m.bar.IsOpen() {
			first := row + res.Height + 1
			idx := y - first
			if idx >= 0 && idx < len(m.bar.Flyout().Items()) {
				m.bar.Flyout().Move(idx - m.bar.Flyout().Selected())
				if item, ok := m.bar.SelectedHidden(); ok {
					return m, invoke(item)
				}
			}
		}
		return m, nil
	}
	return m, nil
}
