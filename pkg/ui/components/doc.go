// Package components is a theme-aware Fluent component library for terminal
// applications, rendered with lipgloss.
//
// # Architecture
//
// The library has three layers:
//
//  1. Theme: immutable palette, accent ramp, spacing, type ramp and slider glyphs
//  2. Modifiers: StyleFunc values that apply theme data to a lipgloss.Style
//  3. Components: composable elements that render to strings
//
// Themes travel explicitly in a RenderContext, never through globals:
//
//	ctx := components.DefaultContext().WithTheme(components.DarkTheme())
//	out := bar.ViewWithContext(ctx.WithConstraints(components.WithMaxWidth(80)))
//
// View() renders with the light theme and no constraints.
//
// # Components
//
// Primitives: Text, Header, Divider, Spacer.
//
// Layout: Stack, Container, Card.
//
// Controls:
//   - Button: a keyed command, usable as a command bar item
//   - Badge and InfoBar: status surfaces
//   - Slider: draws a slider.State, with step ticks
//   - ColorPicker: per-channel HSV gradient strips with a swatch
//   - CommandBar: an overflow row of commands with a Flyout for the hidden ones
//   - Flyout: a bordered selection menu
//
// Slider state is owned by the host program; the Slider component only reads
// it while rendering.
package components
