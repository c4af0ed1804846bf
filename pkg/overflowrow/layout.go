// Package overflowrow decides which items of a horizontal row fit in the
// available width and which spill into an overflow menu.
//
// Items are taken greedily in a policy-specific order until the next one no
// longer fits. When anything is hidden (or the indicator is forced) items are
// given back in reverse order until the overflow indicator plus one spacing
// unit fits. The pass is linear in the item count and cheap enough to rerun on
// every layout.
package overflowrow

// Options configure a row. The zero value hides a suffix with no spacing.
type Options struct {
	Policy                   Policy
	Spacing                  int
	AlwaysShowOverflowAction bool
	Arrangement              Arrangement
	VerticalAlign            VerticalAlign
}

// Row holds the options of one overflow row and the overflow range computed
// by its last layout pass. A Row is owned by a single component.
type Row struct {
	opts     Options
	overflow Range
}

// New returns a Row with the given options.
func New(opts Options) *Row {
	return &Row{opts: opts}
}

// Options returns the row's options.
func (r *Row) Options() Options {
	return r.opts
}

// SetOptions replaces the options; the next Layout uses them.
func (r *Row) SetOptions(opts Options) {
	r.opts = opts
}

// OverflowRange returns the hidden range from the last layout pass.
func (r *Row) OverflowRange() Range {
	return r.overflow
}

// Layout runs a layout pass and records its overflow range.
func (r *Row) Layout(items []Measurable, indicator Measurable, c Constraints) Result {
	res := Layout(items, indicator, r.opts, c)
	r.overflow = res.OverflowRange
	return res
}

// Layout places items and the overflow indicator within c.
func Layout(items []Measurable, indicator Measurable, opts Options, c Constraints) Result {
	n := len(items)
	if n == 0 {
		return Result{}
	}
	if c.HasMaxWidth() && c.MaxWidth <= 0 {
		return Result{OverflowRange: Range{Start: 0, End: n}}
	}

	spacing := opts.Spacing
	if spacing < 0 {
		spacing = 0
	}

	m := newMeasurer(items, indicator, Constraints{MaxWidth: c.MaxWidth, MaxHeight: c.MaxHeight})
	order := takeOrder(n, opts.Policy)

	if !c.HasMaxWidth() {
		return arrange(m, order, n, opts, c, opts.AlwaysShowOverflowAction && indicator != nil, spacing)
	}

	remaining := c.MaxWidth
	kept := 0
	for _, idx := range order {
		need := m.item(idx).Width
		if kept > 0 {
			need += spacing
		}
		if need > remaining {
			break
		}
		remaining -= need
		kept++
	}

	showIndicator := false
	if (kept < n || opts.AlwaysShowOverflowAction) && indicator != nil {
		indicatorWidth := m.indicator().Width
		cost := func() int {
			if kept > 0 {
				return indicatorWidth + spacing
			}
			return indicatorWidth
		}
		for kept > 0 && remaining < cost() {
			refund := m.item(order[kept-1]).Width
			if kept > 1 {
				refund += spacing
			}
			remaining += refund
			kept--
		}
		showIndicator = remaining >= cost()
	}

	return arrange(m, order, kept, opts, c, showIndicator, spacing)
}

// takeOrder lists item indexes in the order they are kept. Center alternates
// end, start, end, ... so that giving items back in reverse evicts the start
// side first whenever both sides hold the same number of items.
func takeOrder(n int, policy Policy) []int {
	order := make([]int, 0, n)
	switch policy {
	case PolicyStart:
		for i := n - 1; i >= 0; i-- {
			order = append(order, i)
		}
	case PolicyCenter:
		lo, hi := 0, n-1
		for lo <= hi {
			order = append(order, hi)
			hi--
			if lo <= hi {
				order = append(order, lo)
				lo++
			}
		}
	default:
		for i := 0; i < n; i++ {
			order = append(order, i)
		}
	}
	return order
}

// overflowRange derives the hidden interval once kept items are known.
func overflowRange(n, kept int, policy Policy) (hidden Range, indicatorSlot int) {
	switch policy {
	case PolicyStart:
		return Range{Start: 0, End: n - kept}, n - kept
	case PolicyCenter:
		fromStart := kept / 2
		fromEnd := kept - fromStart
		return Range{Start: fromStart, End: n - fromEnd}, fromStart
	default:
		return Range{Start: kept, End: n}, n
	}
}

func arrange(m *measurer, order []int, kept int, opts Options, c Constraints, showIndicator bool, spacing int) Result {
	n := len(order)
	hidden, slot := overflowRange(n, kept, opts.Policy)

	visible := make([]Placement, 0, kept+1)
	var indicatorAt = -1
	for i := 0; i < n; i++ {
		if i == slot && showIndicator {
			indicatorAt = len(visible)
			visible = append(visible, indicatorPlacement(m))
		}
		if hidden.Contains(i) {
			continue
		}
		visible = append(visible, Placement{Index: i, Key: m.items[i].Key(), Size: m.item(i)})
	}
	if slot == n && showIndicator {
		indicatorAt = len(visible)
		visible = append(visible, indicatorPlacement(m))
	}

	res := Result{OverflowRange: hidden}
	if len(visible) == 0 {
		return res
	}

	content := spacing * (len(visible) - 1)
	height := 0
	for _, p := range visible {
		content += p.Size.Width
		if p.Size.Height > height {
			height = p.Size.Height
		}
	}
	if c.MaxHeight >= 0 && height > c.MaxHeight {
		height = c.MaxHeight
	}

	width := content
	if c.MinWidth > width {
		width = c.MinWidth
	}
	if c.HasMaxWidth() && width > c.MaxWidth {
		width = c.MaxWidth
	}

	free := width - content
	x := justifyOffset(opts.Arrangement, free, len(visible))
	gap := spacing + justifySpacing(opts.Arrangement, free, len(visible))
	for i := range visible {
		visible[i].X = x
		visible[i].Y = alignOffset(opts.VerticalAlign, height, visible[i].Size.Height)
		x += visible[i].Size.Width + gap
	}

	res.Placements = visible
	res.ContentWidth = content
	res.Width = width
	res.Height = height
	if indicatorAt >= 0 {
		ind := visible[indicatorAt]
		res.Indicator = &ind
	}
	return res
}

func indicatorPlacement(m *measurer) Placement {
	return Placement{Index: IndicatorIndex, Key: m.indicatorItem.Key(), Size: m.indicator()}
}

// justifyOffset returns where the first child starts.
func justifyOffset(a Arrangement, free, count int) int {
	if free <= 0 || count == 0 {
		return 0
	}
	switch a {
	case ArrangeEnd:
		return free
	case ArrangeCenter:
		return free / 2
	case ArrangeSpaceAround:
		return free / (count * 2)
	case ArrangeSpaceEvenly:
		return free / (count + 1)
	default:
		return 0
	}
}

// justifySpacing returns the extra gap inserted between children.
func justifySpacing(a Arrangement, free, count int) int {
	if free <= 0 || count <= 1 {
		return 0
	}
	switch a {
	case ArrangeSpaceBetween:
		return free / (count - 1)
	case ArrangeSpaceAround:
		return free / count
	case ArrangeSpaceEvenly:
		return free / (count + 1)
	default:
		return 0
	}
}

func alignOffset(a VerticalAlign, rowHeight, itemHeight int) int {
	switch a {
	case AlignBottom:
		return rowHeight - itemHeight
	case AlignCenter:
		return (rowHeight - itemHeight) / 2
	default:
		return 0
	}
}

// measurer memoises sizes so every item is measured at most once per pass and
// items never reached by the greedy walk are never measured.
type measurer struct {
	items         []Measurable
	indicatorItem Measurable
	constraints   Constraints

	sizes    []Size
	measured []bool

	indicatorSize     Size
	indicatorMeasured bool
}

func newMeasurer(items []Measurable, indicator Measurable, c Constraints) *measurer {
	return &measurer{
		items:         items,
		indicatorItem: indicator,
		constraints:   c,
		sizes:         make([]Size, len(items)),
		measured:      make([]bool, len(items)),
	}
}

func (m *measurer) item(i int) Size {
	if !m.measured[i] {
		m.sizes[i] = sanitize(m.items[i].Measure(m.constraints))
		m.measured[i] = true
	}
	return m.sizes[i]
}

func (m *measurer) indicator() Size {
	if !m.indicatorMeasured {
		m.indicatorSize = sanitize(m.indicatorItem.Measure(m.constraints))
		m.indicatorMeasured = true
	}
	return m.indicatorSize
}

func sanitize(s Size) Size {
	if s.Width < 0 {
		s.Width = 0
	}
	if s.Height < 0 {
		s.Height = 0
	}
	return s
}
