package gallery

import (
	"github.com/alexisbeaulieu97/fluent/pkg/color"
	"github.com/alexisbeaulieu97/fluent/pkg/overflowrow"
)

// Page determines which screen to render
type Page int

const (
	PageSliders Page = iota
	PageColor
	PageCommandBar
)

// Pages lists the pages in tab order.
var Pages = []Page{PageSliders, PageColor, PageCommandBar}

func (p Page) String() string {
	switch p {
	case PageColor:
		return "Color"
	case PageCommandBar:
		return "Command bar"
	default:
		return "Sliders"
	}
}

// Slider Messages

// SliderChangedMsg reports a slider value produced by a drag or a key step.
// Finished is set once the gesture completed and the value settled.
type SliderChangedMsg struct {
	ID       string
	Value    float64
	Finished bool
}

// Color Messages

// ColorAppliedMsg replaces the colour being edited, e.g. from the hex field.
type ColorAppliedMsg struct {
	Color color.Color
}

// Command Bar Messages

// BarWidthMsg sets the width available to the command bar.
type BarWidthMsg struct {
	Width int
}

// PolicyChangedMsg selects the overflow policy of the command bar.
type PolicyChangedMsg struct {
	Policy overflowrow.Policy
}

// CommandInvokedMsg reports a command chosen from the bar or its flyout.
type CommandInvokedMsg struct {
	Key   string
	Label string
}

// Error Messages

// ErrorMsg indicates a recoverable error to show in the banner
type ErrorMsg struct {
	Err error
}

// ClearErrorMsg requests error banner dismissal
type ClearErrorMsg struct{}
