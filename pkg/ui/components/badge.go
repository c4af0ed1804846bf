package components

// Badge is a small status pill.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
}

// NewBadge creates a neutral badge.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
	}
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the given theme context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	style := b.ComputeStyle(ctx.Theme)
	if strategy := ctx.Theme.Variants.Get(b.variant); strategy != nil {
		style = strategy.Apply(style, ctx.Theme)
	}
	return style.Render(b.text)
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// SetText updates the badge text.
func (b *Badge) SetText(text string) *Badge {
	b.text = text
	return b
}

// AccentBadge creates an accent badge.
func AccentBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantAccent)
}

// SuccessBadge creates a success badge.
func SuccessBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantSuccess)
}

// CautionBadge creates a caution badge.
func CautionBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantCaution)
}

// CriticalBadge creates a critical badge.
func CriticalBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantCritical)
}
