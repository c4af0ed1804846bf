package gallery

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	nextPage key.Binding
	prevPage key.Binding
	jump     key.Binding
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	shrink   key.Binding
	grow     key.Binding
	overflow key.Binding
	policy   key.Binding
	editHex  key.Binding
	confirm  key.Binding
	cancel   key.Binding
	help     key.Binding
	quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		nextPage: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next page")),
		prevPage: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous page")),
		jump:     key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "jump to page")),
		up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "focus up")),
		down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "focus down")),
		left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "step down")),
		right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "step up")),
		shrink:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "narrower")),
		grow:     key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "wider")),
		overflow: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "overflow")),
		policy:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "policy")),
		editHex:  key.NewBinding(key.WithKeys("e", "#"), key.WithHelp("e", "edit hex")),
		confirm:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.nextPage, k.left, k.right, k.help, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.nextPage, k.prevPage, k.jump, k.up, k.down},
		{k.left, k.right, k.editHex, k.confirm, k.cancel},
		{k.shrink, k.grow, k.overflow, k.policy},
		{k.help, k.quit},
	}
}

// pageHelp narrows the short help to the bindings the page reacts to.
type pageHelp struct {
	keyMap
	page Page
}

func (p pageHelp) ShortHelp() []key.Binding {
	k := p.keyMap
	switch p.page {
	case PageColor:
		return []key.Binding{k.nextPage, k.left, k.right, k.editHex, k.quit}
	case PageCommandBar:
		return []key.Binding{k.nextPage, k.shrink, k.grow, k.overflow, k.policy, k.quit}
	default:
		return []key.Binding{k.nextPage, k.left, k.right, k.help, k.quit}
	}
}
