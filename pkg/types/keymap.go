package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the mode-level keybindings.
// It lives in pkg/types so the model and the views share one table.
type KeyMap struct {
	// View mode
	Quit   key.Binding
	Edit   key.Binding
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Both modes
	Save key.Binding

	// Edit mode
	LeaveEdit key.Binding
}

// BufferKeyMap is the buffer's own input contract used while editing.
type BufferKeyMap struct {
	Left, Right, Up, Down key.Binding
	WordLeft, WordRight   key.Binding
	Home, End             key.Binding
	DocStart, DocEnd      key.Binding
	PageUp, PageDown      key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding
	Tab               key.Binding
}

// DefaultKeyMap returns the View/Edit mode bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:   key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc/q", "quit")),
		Edit:   key.NewBinding(key.WithKeys("i", "enter"), key.WithHelp("i/enter", "edit")),
		Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("←/h", "left")),
		Right:  key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("→/l", "right")),
		Top:    key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "first line")),
		Bottom: key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "last line")),

		Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),

		LeaveEdit: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "view mode")),
	}
}

// DefaultBufferKeyMap returns the editing bindings.
// Word movement accepts both alt and ctrl arrows since terminals disagree.
func DefaultBufferKeyMap() BufferKeyMap {
	return BufferKeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),

		Home:     key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:      key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),
		DocStart: key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "document start")),
		DocEnd:   key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "document end")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdown", "page down")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent")),
	}
}
