// Package ui defines the contract shared by every renderable component.
package ui

// Renderable is anything that can draw itself to a terminal string.
type Renderable interface {
	View() string
}

// Keyed is a Renderable with a stable identity across layout passes.
type Keyed interface {
	Renderable
	Key() string
}
