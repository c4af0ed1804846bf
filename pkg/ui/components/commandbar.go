package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/fluent/pkg/overflowrow"
	"github.com/alexisbeaulieu97/fluent/pkg/ui"
)

// OverflowKey is the key of a command bar's overflow button.
const OverflowKey = "overflow"

// CommandBar lays out keyed commands on one row and moves the ones that do
// not fit behind an overflow button, which opens a Flyout listing them.
type CommandBar struct {
	BaseComponent
	items     []ui.Keyed
	row       *overflowrow.Row
	indicator *Button
	flyout    *Flyout
	open      bool
	last      overflowrow.Result
}

// NewCommandBar creates a bar over items.
func NewCommandBar(opts overflowrow.Options, items ...ui.Keyed) *CommandBar {
	return &CommandBar{
		BaseComponent: NewBaseComponent(),
		items:         items,
		row:           overflowrow.New(opts),
		indicator:     SubtleButton(OverflowGlyph).WithKey(OverflowKey),
		flyout:        NewFlyout(),
	}
}

// View renders the bar.
func (c *CommandBar) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext lays the bar out within the context width and renders it,
// with the flyout under the overflow button when open.
func (c *CommandBar) ViewWithContext(ctx RenderContext) string {
	res, views := c.layout(ctx)
	style := c.ComputeStyle(ctx.Theme)
	if len(res.Placements) == 0 {
		return style.Render("")
	}

	pos := lipgloss.Top
	switch c.row.Options().VerticalAlign {
	case overflowrow.AlignCenter:
		pos = lipgloss.Center
	case overflowrow.AlignBottom:
		pos = lipgloss.Bottom
	}

	parts := make([]string, 0, 2*len(res.Placements))
	cursor := 0
	for _, p := range res.Placements {
		if gap := p.X - cursor; gap > 0 {
			parts = append(parts, strings.Repeat(" ", gap))
		}
		parts = append(parts, views[p.Key])
		cursor = p.X + p.Size.Width
	}
	if tail := res.Width - cursor; tail > 0 {
		parts = append(parts, strings.Repeat(" ", tail))
	}
	bar := lipgloss.JoinHorizontal(pos, parts...)

	if c.open && res.ShowsIndicator() && !res.OverflowRange.Empty() {
		menu := c.flyout.ViewWithContext(ctx)
		indent := res.Indicator.X
		if w := ctx.AvailableWidth(-1); w >= 0 {
			indent = min(indent, max(w-lipgloss.Width(menu), 0))
		}
		bar = lipgloss.JoinVertical(lipgloss.Left, bar, indentBlock(menu, indent))
	}
	return style.Render(bar)
}

// Layout runs a layout pass for ctx and records the hidden range.
func (c *CommandBar) Layout(ctx RenderContext) overflowrow.Result {
	res, _ := c.layout(ctx)
	return res
}

func (c *CommandBar) layout(ctx RenderContext) (overflowrow.Result, map[string]string) {
	views := make(map[string]string, len(c.items)+1)
	measurables := make([]overflowrow.Measurable, len(c.items))
	for i, item := range c.items {
		measurables[i] = &renderedItem{item: item, ctx: ctx, views: views}
	}
	indicator := &renderedItem{item: c.indicator.WithSelected(c.open), ctx: ctx, views: views}

	c.last = c.row.Layout(measurables, indicator, ctx.Constraints.Row())
	c.flyout.SetItems(c.labels(c.last.OverflowRange))
	if c.last.OverflowRange.Empty() {
		c.open = false
	}
	return c.last, views
}

func (c *CommandBar) labels(r overflowrow.Range) []string {
	labels := make([]string, 0, r.Len())
	for i := r.Start; i < r.End && i < len(c.items); i++ {
		labels = append(labels, ItemLabel(c.items[i]))
	}
	return labels
}

// ItemLabel is the flyout text for a command: its drawn text when it has
// one, otherwise its key.
func ItemLabel(item ui.Keyed) string {
	if texter, ok := item.(interface{ Text() string }); ok {
		return texter.Text()
	}
	return item.Key()
}

// renderedItem measures a component by rendering it, keeping the view so
// the bar draws exactly what was measured.
type renderedItem struct {
	item  ui.Keyed
	ctx   RenderContext
	views map[string]string
}

func (r *renderedItem) Key() string {
	return r.item.Key()
}

func (r *renderedItem) Measure(overflowrow.Constraints) overflowrow.Size {
	view, ok := r.views[r.item.Key()]
	if !ok {
		view = Render(r.item, r.ctx.WithConstraints(Unconstrained()))
		r.views[r.item.Key()] = view
	}
	return overflowrow.Size{Width: lipgloss.Width(view), Height: lipgloss.Height(view)}
}

func indentBlock(block string, indent int) string {
	if indent <= 0 {
		return block
	}
	pad := strings.Repeat(" ", indent)
	lines := strings.Split(block, "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}

// Items returns the commands.
func (c *CommandBar) Items() []ui.Keyed {
	return c.items
}

// SetItems replaces the commands.
func (c *CommandBar) SetItems(items ...ui.Keyed) *CommandBar {
	c.items = items
	return c
}

// Options returns the overflow options.
func (c *CommandBar) Options() overflowrow.Options {
	return c.row.Options()
}

// SetOptions replaces the overflow options.
func (c *CommandBar) SetOptions(opts overflowrow.Options) *CommandBar {
	c.row.SetOptions(opts)
	return c
}

// OverflowRange returns the hidden range of the last layout pass.
func (c *CommandBar) OverflowRange() overflowrow.Range {
	return c.row.OverflowRange()
}

// LastLayout returns the result of the last layout pass.
func (c *CommandBar) LastLayout() overflowrow.Result {
	return c.last
}

// HiddenKeys returns the keys of the hidden commands from the last pass.
func (c *CommandBar) HiddenKeys() []string {
	r := c.row.OverflowRange()
	keys := make([]string, 0, r.Len())
	for i := r.Start; i < r.End && i < len(c.items); i++ {
		keys = append(keys, c.items[i].Key())
	}
	return keys
}

// Flyout returns the overflow menu.
func (c *CommandBar) Flyout() *Flyout {
	return c.flyout
}

// IsOpen reports whether the overflow menu is shown.
func (c *CommandBar) IsOpen() bool {
	return c.open
}

// SetOpen opens or closes the overflow menu. Opening is ignored while nothing
// is hidden.
func (c *CommandBar) SetOpen(open bool) *CommandBar {
	c.open = open && !c.row.OverflowRange().Empty()
	return c
}

// Toggle flips the overflow menu.
func (c *CommandBar) Toggle() *CommandBar {
	return c.SetOpen(!c.open)
}

// SelectedHidden returns the command highlighted in the open flyout.
func (c *CommandBar) SelectedHidden() (ui.Keyed, bool) {
	idx := c.flyout.Selected()
	r := c.row.OverflowRange()
	if !c.open || idx < 0 || r.Start+idx >= r.End || r.Start+idx >= len(c.items) {
		return nil, false
	}
	return c.items[r.Start+idx], true
}
