package config

import (
	"github.com/alexisbeaulieu97/fluent/pkg/color"
	"github.com/alexisbeaulieu97/fluent/pkg/overflowrow"
	"github.com/alexisbeaulieu97/fluent/pkg/slider"
)

// Gallery describes the scene the gallery and the render command show.
type Gallery struct {
	Version  string       `yaml:"version" validate:"required,semver"`
	Title    string       `yaml:"title" validate:"required,min=1,max=100"`
	Theme    string       `yaml:"theme,omitempty" validate:"omitempty,oneof=light dark"`
	Accent   string       `yaml:"accent,omitempty" validate:"omitempty,hexcolor"`
	Sliders  []SliderSpec `yaml:"sliders,omitempty" validate:"omitempty,dive"`
	Colors   []ColorSpec  `yaml:"colors,omitempty" validate:"omitempty,dive"`
	Overflow OverflowSpec `yaml:"overflow"`
}

// SliderSpec declares one slider on the sliders page.
type SliderSpec struct {
	ID     string  `yaml:"id" validate:"required,item_id"`
	Label  string  `yaml:"label" validate:"required,max=32"`
	Start  float64 `yaml:"start"`
	End    float64 `yaml:"end" validate:"gtefield=Start"`
	Value  float64 `yaml:"value"`
	Steps  int     `yaml:"steps,omitempty" validate:"min=0,max=100"`
	Snap   *bool   `yaml:"snap,omitempty"`
	Format string  `yaml:"format,omitempty"`
}

// ColorSpec names a colour swatch on the colour page.
type ColorSpec struct {
	Name string `yaml:"name" validate:"required"`
	Hex  string `yaml:"hex" validate:"required,hexcolor"`
}

// OverflowSpec configures the command bar page.
type OverflowSpec struct {
	Policy             string        `yaml:"policy,omitempty" validate:"omitempty,overflow_policy"`
	Arrangement        string        `yaml:"arrangement,omitempty" validate:"omitempty,arrangement"`
	Spacing            int           `yaml:"spacing,omitempty" validate:"min=0,max=16"`
	AlwaysShowOverflow bool          `yaml:"always_show_overflow,omitempty"`
	Items              []CommandSpec `yaml:"items,omitempty" validate:"omitempty,dive"`
}

// CommandSpec is one command bar button.
type CommandSpec struct {
	ID    string `yaml:"id" validate:"required,item_id"`
	Label string `yaml:"label" validate:"required,max=32"`
	Icon  string `yaml:"icon,omitempty"`
}

// SnapEnabled reports whether the slider snaps; snapping is on unless
// explicitly disabled.
func (s SliderSpec) SnapEnabled() bool {
	return s.Snap == nil || *s.Snap
}

// Options converts the declaration into slider state options.
func (s SliderSpec) Options() slider.Options {
	return slider.Options{
		Value:       s.Value,
		Range:       slider.Range{Start: s.Start, End: s.End},
		Steps:       s.Steps,
		Snap:        s.SnapEnabled(),
		ThumbRadius: 0.5,
	}
}

// Color parses the swatch hex code.
func (c ColorSpec) Color() (color.Color, error) {
	return color.ParseHex(c.Hex)
}

// Options converts the declaration into overflow row options. Unknown names fall
// back to the defaults; Validate rejects them first.
func (o OverflowSpec) Options() overflowrow.Options {
	policy, _ := overflowrow.ParsePolicy(o.Policy)
	arrangement, _ := overflowrow.ParseArrangement(o.Arrangement)
	return overflowrow.Options{
		Policy:                   policy,
		Spacing:                  o.Spacing,
		AlwaysShowOverflowAction: o.AlwaysShowOverflow,
		Arrangement:              arrangement,
		VerticalAlign:            overflowrow.AlignCenter,
	}
}

// ThemeName returns the configured theme, "dark" when unset.
func (g *Gallery) ThemeName() string {
	if g == nil || g.Theme == "" {
		return "dark"
	}
	return g.Theme
}
