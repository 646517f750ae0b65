package tui

import (
	"strings"

	"mdtui/internal/buffer"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// forwardToBuffer applies an Edit-mode key to the buffer. Keys the buffer
// has no use for are dropped.
func (m *Model) forwardToBuffer(msg tea.KeyMsg) {
	b := m.doc.Buffer()
	k := m.bufKeys

	if msg.Paste {
		b.InsertText(string(msg.Runes))
		return
	}

	switch {
	case key.Matches(msg, k.WordLeft):
		b.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, k.WordRight):
		b.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})
	case key.Matches(msg, k.Left):
		b.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirLeft})
	case key.Matches(msg, k.Right):
		b.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirRight})
	case key.Matches(msg, k.Up):
		b.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp})
	case key.Matches(msg, k.Down):
		b.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown})
	case key.Matches(msg, k.Home):
		b.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, k.End):
		b.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(msg, k.DocStart):
		b.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(msg, k.DocEnd):
		b.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})
	case key.Matches(msg, k.PageUp):
		b.MoveRows(-m.textRows())
	case key.Matches(msg, k.PageDown):
		b.MoveRows(m.textRows())
	case key.Matches(msg, k.Backspace):
		b.DeleteBackward()
	case key.Matches(msg, k.Delete):
		b.DeleteForward()
	case key.Matches(msg, k.Enter):
		b.InsertNewline()
	case key.Matches(msg, k.Tab):
		col := b.Cursor().Col
		b.InsertText(strings.Repeat(" ", m.tabWidth-col%m.tabWidth))
	default:
		switch msg.Type {
		case tea.KeyRunes:
			if !msg.Alt {
				b.InsertText(string(msg.Runes))
			}
		case tea.KeySpace:
			b.InsertRune(' ')
		}
	}
}
