package tui

import (
	"fmt"
	"path/filepath"

	"mdtui/internal/buffer"
	log "mdtui/internal/log"
	"mdtui/pkg/types"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

func (m *Model) handleKeyMsg(msg tea.KeyMsg) {
	if !m.state.Mode.Valid() {
		log.LogWithFields(
			log.F("mode", int(m.state.Mode)),
			log.F("key", msg.String()),
		).Error("key received in unknown mode, ignoring")
		return
	}

	switch m.state.Mode {
	case types.View:
		m.handleViewKeys(msg)
	case types.Edit:
		m.handleEditKeys(msg)
	case types.Exit:
		return
	}
	m.follow()
}

// handleViewKeys never changes buffer content.
func (m *Model) handleViewKeys(msg tea.KeyMsg) {
	b := m.doc.Buffer()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.setMode(types.Exit)
	case key.Matches(msg, m.keys.Edit):
		m.setMode(types.Edit)
	case key.Matches(msg, m.keys.Save):
		m.save()
	case key.Matches(msg, m.keys.Up):
		b.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp})
	case key.Matches(msg, m.keys.Down):
		b.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown})
	case key.Matches(msg, m.keys.Left):
		b.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirLeft})
	case key.Matches(msg, m.keys.Right):
		b.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirRight})
	case key.Matches(msg, m.keys.Top):
		b.MoveRows(-b.LineCount())
	case key.Matches(msg, m.keys.Bottom):
		b.MoveRows(b.LineCount())
	}
}

// handleEditKeys checks the reserved keys before anything reaches the buffer.
func (m *Model) handleEditKeys(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.LeaveEdit):
		m.setMode(types.View)
	case key.Matches(msg, m.keys.Save):
		m.save()
	default:
		m.forwardToBuffer(msg)
	}
}

func (m *Model) handleMouseMsg(msg tea.MouseMsg) {
	if m.state.Mode != types.View && m.state.Mode != types.Edit {
		return
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.doc.Buffer().Scroll(-1, m.textRows())
	case tea.MouseButtonWheelDown:
		m.doc.Buffer().Scroll(1, m.textRows())
	}
}

// save writes the document and always lands in View mode. The outcome is
// reported through the status line.
func (m *Model) save() {
	m.setMode(types.View)

	if err := m.doc.Save(); err != nil {
		log.LogError(err, "save failed")
		m.state.Status = Status{Text: err.Error(), IsError: true}
		return
	}

	size := humanize.Bytes(uint64(len(m.doc.Text())))
	m.state.Status = Status{Text: fmt.Sprintf("Saved %s (%s)", filepath.Base(m.doc.Path()), size)}
}
