package overflowrow

// Size is a measured width/height pair in cells.
type Size struct {
	Width  int
	Height int
}

// Constraints bound a layout pass. A negative MaxWidth or MaxHeight means
// unbounded on that axis.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MaxHeight int
}

// Unbounded returns constraints with no limits.
func Unbounded() Constraints {
	return Constraints{MinWidth: 0, MaxWidth: -1, MaxHeight: -1}
}

// WithMaxWidth returns constraints limited to maxWidth cells horizontally.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MinWidth: 0, MaxWidth: maxWidth, MaxHeight: -1}
}

// WithWidth returns constraints that make the row exactly width cells wide,
// leaving the arrangement to distribute any free space.
func WithWidth(width int) Constraints {
	return Constraints{MinWidth: width, MaxWidth: width, MaxHeight: -1}
}

// HasMaxWidth reports whether the width is bounded.
func (c Constraints) HasMaxWidth() bool {
	return c.MaxWidth >= 0
}

// Measurable is a row item. Key identifies the item across layout passes so
// overflow menus can render it stably.
type Measurable interface {
	Key() string
	Measure(c Constraints) Size
}

// Fixed is a Measurable with a predetermined size.
type Fixed struct {
	ID   string
	Dims Size
}

// FixedItem builds a Fixed measurable.
func FixedItem(key string, width, height int) Fixed {
	return Fixed{ID: key, Dims: Size{Width: width, Height: height}}
}

// Key implements Measurable.
func (f Fixed) Key() string { return f.ID }

// Measure implements Measurable.
func (f Fixed) Measure(Constraints) Size { return f.Dims }

// Policy selects which end of the sequence is sacrificed first.
type Policy int

const (
	// PolicyEnd keeps items from the start and hides a suffix.
	PolicyEnd Policy = iota
	// PolicyStart keeps items from the end and hides a prefix.
	PolicyStart
	// PolicyCenter keeps items from both ends and hides the middle.
	PolicyCenter
)

func (p Policy) String() string {
	switch p {
	case PolicyStart:
		return "start"
	case PolicyCenter:
		return "center"
	default:
		return "end"
	}
}

// ParsePolicy maps "end", "start" and "center" to a Policy.
func ParsePolicy(s string) (Policy, bool) {
	switch s {
	case "", "end":
		return PolicyEnd, true
	case "start":
		return PolicyStart, true
	case "center":
		return PolicyCenter, true
	default:
		return PolicyEnd, false
	}
}

// Arrangement distributes free horizontal space among the visible children.
type Arrangement int

const (
	ArrangeStart Arrangement = iota
	ArrangeEnd
	ArrangeCenter
	ArrangeSpaceBetween
	ArrangeSpaceAround
	ArrangeSpaceEvenly
)

// ParseArrangement maps a kebab-case name to an Arrangement.
func ParseArrangement(s string) (Arrangement, bool) {
	switch s {
	case "", "start":
		return ArrangeStart, true
	case "end":
		return ArrangeEnd, true
	case "center":
		return ArrangeCenter, true
	case "space-between":
		return ArrangeSpaceBetween, true
	case "space-around":
		return ArrangeSpaceAround, true
	case "space-evenly":
		return ArrangeSpaceEvenly, true
	default:
		return ArrangeStart, false
	}
}

// VerticalAlign positions children of differing heights.
type VerticalAlign int

const (
	AlignTop VerticalAlign = iota
	AlignCenter
	AlignBottom
)

// Range is a half-open index interval [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of indexes in the range.
func (r Range) Len() int {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// Empty reports whether the range holds no index.
func (r Range) Empty() bool {
	return r.Len() == 0
}

// Contains reports whether i lies in the range.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

// IndicatorIndex is the Placement.Index of the overflow indicator.
const IndicatorIndex = -1

// Placement positions one visible child relative to the row's origin.
type Placement struct {
	Index int
	Key   string
	X     int
	Y     int
	Size  Size
}

// IsIndicator reports whether the placement is the overflow indicator.
func (p Placement) IsIndicator() bool {
	return p.Index == IndicatorIndex
}

// Result is the outcome of one layout pass.
type Result struct {
	// OverflowRange holds the indexes hidden behind the indicator.
	OverflowRange Range
	// Placements lists visible children, indicator included, in visual order.
	Placements []Placement
	// Indicator is nil when the indicator is not shown.
	Indicator *Placement
	// ContentWidth is the width of the visible children plus spacing.
	ContentWidth int
	Width        int
	Height       int
}

// ShowsIndicator reports whether the overflow indicator was placed.
func (r Result) ShowsIndicator() bool {
	return r.Indicator != nil
}

// Kept returns the indexes of visible items in ascending order.
func (r Result) Kept() []int {
	kept := make([]int, 0, len(r.Placements))
	for _, p := range r.Placements {
		if !p.IsIndicator() {
			kept = append(kept, p.Index)
		}
	}
	return kept
}

// Hidden returns the items in the overflow range.
func (r Result) Hidden(items []Measurable) []Measurable {
	start, end := r.OverflowRange.Start, r.OverflowRange.End
	if start < 0 {
		start = 0
	}
	if end > len(items) {
		end = len(items)
	}
	if end <= start {
		return nil
	}
	hidden := make([]Measurable, end-start)
	copy(hidden, items[start:end])
	return hidden
}
