package gallery

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/fluent/pkg/ui/components"
)

// bodyIndent is the left margin of page content.
const bodyIndent = 2

// styles holds the gallery chrome derived from one theme.
type styles struct {
	tab       lipgloss.Style
	activeTab lipgloss.Style
	tabBar    lipgloss.Style
	body      lipgloss.Style
	section   lipgloss.Style
	status    lipgloss.Style
	muted     lipgloss.Style
	footer    lipgloss.Style
}

func newStyles(theme components.Theme) styles {
	p := theme.Palette
	return styles{
		tab: lipgloss.NewStyle().
			Foreground(p.Neutral.Base).
			PaddingLeft(1).
			PaddingRight(1),
		activeTab: lipgloss.NewStyle().
			Foreground(p.Accent.Base).
			Bold(true).
			Underline(true).
			PaddingLeft(1).
			PaddingRight(1),
		tabBar: lipgloss.NewStyle().
			BorderStyle(theme.Borders.Normal).
			BorderBottom(true).
			BorderForeground(p.Neutral.Muted),
		body: lipgloss.NewStyle().
			PaddingLeft(bodyIndent),
		section: components.TypographyStyle(theme, components.TypographyVariantSubtitle),
		status: lipgloss.NewStyle().
			Foreground(p.Accent.Base),
		muted: components.TypographyStyle(theme, components.TypographyVariantCaption),
		footer: lipgloss.NewStyle().
			Foreground(p.Neutral.Base).
			PaddingLeft(bodyIndent),
	}
}
