package components

import (
	"github.com/charmbracelet/lipgloss"
)

// InfoBar is an inline status message with a severity icon and an optional
// bold title.
type InfoBar struct {
	BaseComponent
	title    string
	message  string
	severity Severity
}

// NewInfoBar creates an informational bar.
func NewInfoBar(message string) *InfoBar {
	return &InfoBar{
		BaseComponent: NewBaseComponent(),
		message:       message,
	}
}

// View renders the bar.
func (i *InfoBar) View() string {
	return i.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the bar across the available width.
func (i *InfoBar) ViewWithContext(ctx RenderContext) string {
	style := i.ComputeStyle(ctx.Theme).
		Border(ctx.Theme.Borders.Normal, false, false, false, true).
		PaddingLeft(1).
		PaddingRight(1)
	if strategy := ctx.Theme.Variants.Get(i.severity); strategy != nil {
		style = strategy.Apply(style, ctx.Theme)
	}
	if w := ctx.AvailableWidth(0); w > 0 {
		style = style.Width(max(w-style.GetHorizontalBorderSize(), 0))
	}

	line := i.severity.Icon() + " "
	if i.title != "" {
		line += lipgloss.NewStyle().Bold(true).Render(i.title) + " "
	}
	return style.Render(line + i.message)
}

// WithSeverity sets the bar severity.
func (i *InfoBar) WithSeverity(severity Severity) *InfoBar {
	i.severity = severity
	return i
}

// WithTitle adds a bold title before the message.
func (i *InfoBar) WithTitle(title string) *InfoBar {
	i.title = title
	return i
}

// Message returns the bar message.
func (i *InfoBar) Message() string {
	return i.message
}

// SetMessage updates the bar message.
func (i *InfoBar) SetMessage(message string) *InfoBar {
	i.message = message
	return i
}

// Icon returns the glyph drawn for the severity.
func (s Severity) Icon() string {
	switch s {
	case SeveritySuccess:
		return "✓"
	case SeverityCaution:
		return "!"
	case SeverityCritical:
		return "✗"
	default:
		return "ℹ"
	}
}
