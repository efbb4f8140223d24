package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/gridmark/gridmark/internal/core/grid"
)

// keyMap declares the normal-mode bindings shown in help.
type keyMap struct {
	Move         key.Binding
	Edit         key.Binding
	AddRow       key.Binding
	AddColumn    key.Binding
	DeleteRow    key.Binding
	DeleteColumn key.Binding
	Duplicate    key.Binding
	RowIndex     key.Binding
	Narrow       key.Binding
	Widen        key.Binding
	AutoFit      key.Binding
	Preview      key.Binding
	Write        key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Move:         key.NewBinding(key.WithKeys("up", "down", "left", "right", "h", "j", "k", "l"), key.WithHelp("←↓↑→", "move")),
		Edit:         key.NewBinding(key.WithKeys("enter", "i"), key.WithHelp("enter", "edit cell")),
		AddRow:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add row")),
		AddColumn:    key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "add column")),
		DeleteRow:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete row")),
		DeleteColumn: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete column")),
		Duplicate:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "duplicate row")),
		RowIndex:     key.NewBinding(key.WithKeys("#"), key.WithHelp("#", "row numbers")),
		Narrow:       key.NewBinding(key.WithKeys("<"), key.WithHelp("<", "narrow column")),
		Widen:        key.NewBinding(key.WithKeys(">"), key.WithHelp(">", "widen column")),
		AutoFit:      key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fit column")),
		Preview:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "preview")),
		Write:        key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "write now")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Edit, k.AddRow, k.DeleteRow, k.Preview, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Edit, k.AddRow, k.AddColumn, k.Duplicate},
		{k.DeleteRow, k.DeleteColumn, k.RowIndex, k.Narrow, k.Widen},
		{k.AutoFit, k.Preview, k.Write, k.Help, k.Quit},
	}
}

// parseCombo converts a Bubble Tea key string like "ctrl+enter" or
// "shift+alt+down" into the grid navigation combo.
func parseCombo(s string) grid.Combo {
	var combo grid.Combo
	parts := strings.Split(s, "+")
	combo.Key = parts[len(parts)-1]
	for _, mod := range parts[:len(parts)-1] {
		switch mod {
		case "ctrl":
			combo.Ctrl = true
		case "alt":
			combo.Alt = true
		case "shift":
			combo.Shift = true
		case "cmd", "meta", "super":
			combo.Meta = true
		}
	}
	return combo
}
