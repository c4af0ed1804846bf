package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/fluent/pkg/color"
)

// ColourSet is a semantic colour slot:
//
//   - Base: the fill or brand colour
//   - OnBase: text drawn on top of Base
//   - Muted: a quieter variant for rests and tracks
//   - Contrast: an accent that stands out against Base
//
// Every colour adapts to light and dark terminals.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes the semantic colour slots used by components.
type Palette struct {
	Accent   ColourSet
	Surface  ColourSet
	Neutral  ColourSet
	Success  ColourSet
	Caution  ColourSet
	Critical ColourSet
	Info     ColourSet
}

// AccentRamp holds the lighter and darker accent shades derived from one
// accent colour, the way system accent palettes are built.
type AccentRamp struct {
	Base   color.Color
	Light1 color.Color
	Light2 color.Color
	Light3 color.Color
	Dark1  color.Color
	Dark2  color.Color
	Dark3  color.Color
}

// NewAccentRamp derives shades by moving value and saturation in HSV space.
func NewAccentRamp(base color.Color) AccentRamp {
	hsv := base.HSV()
	lighten := func(step float64) color.Color {
		return hsv.
			WithSaturation(hsv.S * (1 - 0.2*step)).
			WithValue(hsv.V + (1-hsv.V)*0.3*step).
			RGB()
	}
	darken := func(step float64) color.Color {
		return hsv.WithValue(hsv.V * (1 - 0.2*step)).RGB()
	}

	return AccentRamp{
		Base:   base,
		Light1: lighten(1),
		Light2: lighten(2),
		Light3: lighten(3),
		Dark1:  darken(1),
		Dark2:  darken(2),
		Dark3:  darken(3),
	}
}

// ColourSet maps the ramp onto an adaptive colour slot: the base shade on
// light terminals and the second light shade on dark ones.
func (r AccentRamp) ColourSet() ColourSet {
	ac := func(light, dark color.Color) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light.Hex(), Dark: dark.Hex()}
	}
	return ColourSet{
		Base:     ac(r.Base, r.Light2),
		OnBase:   lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#000000"},
		Muted:    ac(r.Light2, r.Dark1),
		Contrast: ac(r.Dark2, r.Light3),
	}
}

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
	SpacingSizeExtraLarge
)

const spacingSizeCount = int(SpacingSizeExtraLarge) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores distinct spacing scales for padding and margin.
type SpacingConfig struct {
	Margin  spacingTable
	Padding spacingTable
}

// TypographyVariant names one of the Fluent type ramp styles.
type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantCaption
	TypographyVariantBodyStrong
	TypographyVariantSubtitle
	TypographyVariantTitle
	TypographyVariantCode
)

// TypographyScale holds the type ramp.
type TypographyScale struct {
	Body       lipgloss.Style
	Caption    lipgloss.Style
	BodyStrong lipgloss.Style
	Subtitle   lipgloss.Style
	Title      lipgloss.Style
	Code       lipgloss.Style
}

type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

// SliderGlyphs are the runes a slider track is drawn with.
type SliderGlyphs struct {
	Filled        string
	Rest          string
	Thumb         string
	ThumbDragging string
	Tick          string
}

// HueGlyph is the cell used to paint colour strips.
const HueGlyph = "█"

// OverflowGlyph labels the overflow button of a command bar.
const OverflowGlyph = "⋯"

// VariantRegistry maps component variants to their styling strategies so a
// theme decides how each variant looks.
type VariantRegistry struct {
	strategies map[interface{}]StyleStrategy
}

// NewVariantRegistry creates a new variant registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{
		strategies: make(map[interface{}]StyleStrategy),
	}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant interface{}, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not found.
func (vr *VariantRegistry) Get(variant interface{}) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is an immutable set of styling data. Derive new themes with the With
// methods rather than mutating a shared one.
type Theme struct {
	Name       string
	Palette    Palette
	Accent     AccentRamp
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
	Slider     SliderGlyphs
	Variants   *VariantRegistry
}

// DefaultAccent is the Fluent default accent colour.
var DefaultAccent = color.MustParseHex("#0078d4")

// DefaultTheme returns the light theme.
func DefaultTheme() Theme {
	return LightTheme()
}

// LightTheme returns the Fluent light theme.
func LightTheme() Theme {
	return buildTheme("light", DefaultAccent, false)
}

// DarkTheme returns the Fluent dark theme.
func DarkTheme() Theme {
	return buildTheme("dark", DefaultAccent, true)
}

// ThemeByName resolves "light" or "dark".
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "light":
		return LightTheme(), nil
	case "dark":
		return DarkTheme(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q", name)
	}
}

// WithAccent returns a copy of the theme recoloured around accent.
func (t Theme) WithAccent(accent color.Color) Theme {
	return buildTheme(t.Name, accent, t.Name == "dark")
}

func buildTheme(name string, accent color.Color, dark bool) Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	ramp := NewAccentRamp(accent)
	accentSet := ramp.ColourSet()
	if accent == DefaultAccent {
		accentSet.Base = ac("#0078d4", "#60cdff")
	}

	palette := Palette{
		Accent: accentSet,
		Surface: ColourSet{
			Base:     ac("#f3f3f3", "#202020"),
			OnBase:   ac("#1a1a1a", "#ffffff"),
			Muted:    ac("#e5e5e5", "#2d2d2d"),
			Contrast: accentSet.Base,
		},
		Neutral: ColourSet{
			Base:     ac("#8a8a8a", "#9a9a9a"),
			OnBase:   ac("#ffffff", "#000000"),
			Muted:    ac("#c4c4c4", "#505050"),
			Contrast: ac("#1a1a1a", "#ffffff"),
		},
		Success: ColourSet{
			Base:     ac("#0f7b0f", "#6ccb5f"),
			OnBase:   ac("#ffffff", "#000000"),
			Muted:    ac("#dff6dd", "#393d1b"),
			Contrast: ac("#1a1a1a", "#ffffff"),
		},
		Caution: ColourSet{
			Base:     ac("#9d5d00", "#fce100"),
			OnBase:   ac("#ffffff", "#000000"),
			Muted:    ac("#fff4ce", "#433519"),
			Contrast: ac("#1a1a1a", "#ffffff"),
		},
		Critical: ColourSet{
			Base:     ac("#c42b1c", "#ff99a4"),
			OnBase:   ac("#ffffff", "#000000"),
			Muted:    ac("#fde7e9", "#442726"),
			Contrast: ac("#1a1a1a", "#ffffff"),
		},
		Info: ColourSet{
			Base:     ac("#005fb7", "#99ebff"),
			OnBase:   ac("#ffffff", "#000000"),
			Muted:    ac("#f6f6f6", "#272727"),
			Contrast: ac("#1a1a1a", "#ffffff"),
		},
	}

	if dark {
		palette.Surface.Base = ac("#202020", "#202020")
		palette.Surface.OnBase = ac("#ffffff", "#ffffff")
		palette.Surface.Muted = ac("#2d2d2d", "#2d2d2d")
	}

	theme := Theme{
		Name:    name,
		Palette: palette,
		Accent:  ramp,
		Borders: BorderSet{
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
		},
		Spacing: SpacingConfig{
			Padding: defaultSpacingTable(),
			Margin:  defaultSpacingTable(),
		},
		Typography: defaultTypography(palette),
		Slider: SliderGlyphs{
			Filled:        "━",
			Rest:          "─",
			Thumb:         "●",
			ThumbDragging: "◉",
			Tick:          "┴",
		},
		Variants: NewVariantRegistry(),
	}
	registerButtonVariants(theme.Variants)
	registerBadgeVariants(theme.Variants)
	registerInfoBarVariants(theme.Variants)
	return theme
}

func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingSizeNone:       0,
		SpacingSizeExtraSmall: 1,
		SpacingSizeSmall:      2,
		SpacingSizeMedium:     3,
		SpacingSizeLarge:      4,
		SpacingSizeExtraLarge: 6,
	}
}

func defaultTypography(p Palette) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Surface.OnBase)
	return TypographyScale{
		Body:       body,
		Caption:    body.Foreground(p.Neutral.Base),
		BodyStrong: body.Bold(true),
		Subtitle:   body.Bold(true).Foreground(p.Accent.Base),
		Title:      body.Bold(true).Underline(true),
		Code:       body.Background(p.Surface.Muted).Padding(0, 1),
	}
}

type ButtonVariant int

const (
	// ButtonVariantStandard is the default neutral button.
	ButtonVariantStandard ButtonVariant = iota
	// ButtonVariantAccent fills the button with the accent colour.
	ButtonVariantAccent
	// ButtonVariantSubtle has no fill until selected, as in command bars.
	ButtonVariantSubtle
)

func registerButtonVariants(registry *VariantRegistry) {
	registry.Register(ButtonVariantStandard, NewCompositeStrategy(
		Background(PaletteSurfaceMuted),
		PaddingX(SpacingSizeExtraSmall),
	))
	registry.Register(ButtonVariantAccent, NewCompositeStrategy(
		Background(PaletteAccent),
		PaddingX(SpacingSizeExtraSmall),
	))
	registry.Register(ButtonVariantSubtle, NewCompositeStrategy(
		Foreground(PaletteSurfaceText),
		PaddingX(SpacingSizeExtraSmall),
	))
}

// BadgeVariant specifies the visual style of a badge.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantAccent
	BadgeVariantSuccess
	BadgeVariantCaution
	BadgeVariantCritical
	BadgeVariantInfo
)

func registerBadgeVariants(registry *VariantRegistry) {
	slots := map[BadgeVariant]PaletteSlot{
		BadgeVariantDefault:  PaletteNeutral,
		BadgeVariantAccent:   PaletteAccent,
		BadgeVariantSuccess:  PaletteSuccess,
		BadgeVariantCaution:  PaletteCaution,
		BadgeVariantCritical: PaletteCritical,
		BadgeVariantInfo:     PaletteInfo,
	}
	for variant, slot := range slots {
		registry.Register(variant, NewCompositeStrategy(
			Background(slot),
			PaddingX(SpacingSizeExtraSmall),
		))
	}
}

// Severity selects the colour and icon of an InfoBar.
type Severity int

const (
	SeverityInformational Severity = iota
	SeveritySuccess
	SeverityCaution
	SeverityCritical
)

func registerInfoBarVariants(registry *VariantRegistry) {
	registry.Register(SeverityInformational, NewCompositeStrategy(Tint(PaletteInfo)))
	registry.Register(SeveritySuccess, NewCompositeStrategy(Tint(PaletteSuccess)))
	registry.Register(SeverityCaution, NewCompositeStrategy(Tint(PaletteCaution)))
	registry.Register(SeverityCritical, NewCompositeStrategy(Tint(PaletteCritical)))
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	default:
		return lipgloss.HiddenBorder()
	}
}

// PaddingValue returns the padding value for the given size.
func PaddingValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Padding, size)
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}

// TypographyStyle returns the specified typography style from the given theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantCaption:
		return typo.Caption
	case TypographyVariantBodyStrong:
		return typo.BodyStrong
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantCode:
		return typo.Code
	default:
		return typo.Body
	}
}

// PaletteSlot selects a colour set from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PaletteAccent   PaletteSlot = func(p Palette) ColourSet { return p.Accent }
	PaletteSurface  PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteNeutral  PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
	PaletteSuccess  PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteCaution  PaletteSlot = func(p Palette) ColourSet { return p.Caution }
	PaletteCritical PaletteSlot = func(p Palette) ColourSet { return p.Critical }
	PaletteInfo     PaletteSlot = func(p Palette) ColourSet { return p.Info }

	// PaletteSurfaceMuted is the resting fill of standard controls.
	PaletteSurfaceMuted PaletteSlot = func(p Palette) ColourSet {
		return ColourSet{Base: p.Surface.Muted, OnBase: p.Surface.OnBase, Muted: p.Surface.Muted, Contrast: p.Accent.Base}
	}
	// PaletteSurfaceText treats surface text as the base colour.
	PaletteSurfaceText PaletteSlot = func(p Palette) ColourSet {
		return ColourSet{Base: p.Surface.OnBase, OnBase: p.Surface.Base, Muted: p.Neutral.Base, Contrast: p.Accent.Base}
	}
)

// Background applies a slot's fill with its matching foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Tint applies a slot's muted fill with its base colour as text, as used by
// status surfaces.
func Tint(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Muted).Foreground(cs.Base).BorderForeground(cs.Base)
	}
}

// Foreground applies a slot's base colour without touching the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// BorderColour colours the border with a slot's base colour.
func BorderColour(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Base)
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(spacingLookup(theme.Spacing.Padding, size))
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

func MarginY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Margin, size)
		return base.MarginTop(value).MarginBottom(value)
	}
}

// Typography applies a type ramp style.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}

// CardBaseStyle is the appliers bundle for page cards.
func CardBaseStyle() []StyleFunc {
	return []StyleFunc{
		Border(BorderVariantRounded),
		BorderColour(PaletteNeutral),
		PaddingX(SpacingSizeExtraSmall),
	}
}
