// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings of the mapping editor.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Run applies the typed editor command.
	Run key.Binding

	// Clear empties the command input.
	Clear key.Binding

	// Save stores the working mapping.
	Save key.Binding

	// Lookup lists stored mappings of the current concepts.
	Lookup key.Binding

	// Switch swaps both sides.
	Switch key.Binding

	// Focus toggles between the command input and the mapping list.
	Focus key.Binding

	// Up and Down navigate the mapping list.
	Up   key.Binding
	Down key.Binding

	// Load opens the selected mapping in the editor.
	Load key.Binding

	// Help toggles the command reference.
	Help key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Run:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		Clear:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Lookup: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "lookup")),
		Switch: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "switch")),
		Focus:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Load:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "load")),
		Help:   key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
	}
}

// EditorHelp returns the hints shown while typing commands.
func (k *KeyMap) EditorHelp() []key.Binding {
	return []key.Binding{k.Run, k.Save, k.Lookup, k.Focus, k.Help, k.Quit}
}

// ListHelp returns the hints shown while browsing mappings.
func (k *KeyMap) ListHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Load, k.Focus, k.Quit}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
