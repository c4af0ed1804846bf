package gallery

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/fluent/pkg/ui/components"
)

// block is one vertically stacked piece of a page. Blocks are separated by a
// blank line, which hit testing relies on.
type block struct {
	view   string
	slider *sliderEntry
	index  int
	bar    bool
}

// View renders the current model state
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	return strings.Join([]string{
		m.renderTop(),
		"",
		m.styles.body.Render(m.renderPage()),
		"",
		m.renderFooter(),
	}, "\n")
}

// Snapshot renders every page one after another, without the interactive
// chrome, for static output.
func (m Model) Snapshot() string {
	parts := []string{m.renderHeader()}
	for _, p := range Pages {
		view := m
		view.page = p
		parts = append(parts,
			"",
			m.styles.section.Render(p.String()),
			m.styles.body.Render(view.renderPage()),
		)
	}
	return strings.Join(parts, "\n")
}

func (m Model) context() components.RenderContext {
	return components.RenderContext{
		Theme:       m.theme,
		Constraints: components.Unconstrained(),
		ParentWidth: max(m.width-2*bodyIndent, 0),
	}
}

// renderTop renders the header, the page tabs and the error banner.
func (m Model) renderTop() string {
	rows := []string{m.renderHeader(), m.renderTabs()}
	if m.errMsg != "" {
		bar := components.NewInfoBar(m.errMsg).
			WithSeverity(components.SeverityCritical).
			WithTitle("Error")
		ctx := m.context().WithConstraints(components.WithMaxWidth(m.width))
		rows = append(rows, components.Render(bar, ctx))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderHeader() string {
	header := components.NewHeader(m.gallery.Title).
		WithSubtitle(fmt.Sprintf("%s theme · accent %s", m.theme.Name, m.theme.Accent.Base.Hex()))
	return components.Render(header, m.context())
}

func (m Model) renderTabs() string {
	tabs := make([]string, len(Pages))
	for i, p := range Pages {
		label := fmt.Sprintf("%d %s", i+1, p)
		if p == m.page {
			tabs[i] = m.styles.activeTab.Render(label)
			continue
		}
		tabs[i] = m.styles.tab.Render(label)
	}
	return m.styles.tabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// bodyTop is the screen row the first page block is drawn on.
func (m *Model) bodyTop() int {
	return lipgloss.Height(m.renderTop()) + 1
}

func (m Model) renderPage() string {
	blocks := m.pageBlocks()
	views := make([]string, len(blocks))
	for i, b := range blocks {
		views[i] = b.view
	}
	return strings.Join(views, "\n\n")
}

func (m *Model) pageBlocks() []block {
	switch m.page {
	case PageColor:
		return m.colorBlocks()
	case PageCommandBar:
		return m.barBlocks()
	default:
		return m.sliderBlocks()
	}
}

func (m *Model) sliderBlocks() []block {
	if len(m.sliders) == 0 {
		return []block{{view: m.styles.muted.Render("No sliders configured.")}}
	}

	blocks := []block{{view: m.styles.muted.Render("Drag a thumb, or focus with ↑/↓ and step with ←/→.")}}
	ctx := m.context()
	for i, e := range m.sliders {
		blocks = append(blocks, block{view: components.Render(e.view, ctx), slider: e, index: i})
	}
	return blocks
}

func (m *Model) colorBlocks() []block {
	ctx := m.context()
	blocks := []block{{view: components.Render(m.picker, ctx)}}
	for i, e := range m.colorSliders {
		blocks = append(blocks, block{view: components.Render(e.view, ctx), slider: e, index: i})
	}

	hex := m.hexInput.View()
	if !m.editingHex {
		hex += "  " + m.styles.muted.Render("(e to edit)")
	}
	blocks = append(blocks, block{view: hex})

	if len(m.swatches) > 0 {
		cells := make([]string, len(m.swatches))
		for i, s := range m.swatches {
			chip := lipgloss.NewStyle().Foreground(s.color.Lipgloss()).Render(strings.Repeat(components.HueGlyph, 2))
			cells[i] = chip + " " + s.name + " " + m.styles.muted.Render(s.color.Hex())
		}
		blocks = append(blocks, block{view: strings.Join(cells, "   ")})
	}
	return blocks
}

func (m *Model) barBlocks() []block {
	bar := m.bar.ViewWithContext(m.barContext())
	res := m.bar.LastLayout()
	summary := fmt.Sprintf(
		"width %d of %d · policy %s · %d of %d hidden",
		m.barWidth, m.maxBarWidth(), m.bar.Options().Policy,
		res.OverflowRange.Len(), len(m.bar.Items()),
	)

	blocks := []block{
		{view: m.styles.muted.Render(summary)},
		{view: bar, bar: true},
	}
	if m.barWidth >= 2 {
		ruler := "└" + strings.Repeat("─", m.barWidth-2) + "┘"
		blocks = append(blocks, block{view: m.styles.muted.Render(ruler)})
	}
	if m.status != "" {
		blocks = append(blocks, block{view: m.styles.status.Render(m.status)})
	}
	return blocks
}

func (m Model) renderFooter() string {
	var rows []string
	if m.status != "" && m.page != PageCommandBar {
		rows = append(rows, m.styles.status.Render(m.status))
	}
	rows = append(rows, m.help.View(pageHelp{keyMap: m.keys, page: m.page}))
	return m.styles.footer.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
