package components

import (
	"mdtui/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// StatusBar is the one-line message shown under the editor pane after a save.
type StatusBar struct {
	text    string
	isError bool
	width   int
}

func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

func (s *StatusBar) SetText(text string, isError bool) {
	s.text = text
	s.isError = isError
}

func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

func (s *StatusBar) Visible() bool {
	return s.text != ""
}

func (s *StatusBar) View() string {
	if s.text == "" {
		return ""
	}

	text := s.text
	if s.width > 0 {
		text = runewidth.Truncate(text, s.width, "…")
	}
	return s.Style().Render(text)
}

// Style returns the style used for the current message.
func (s *StatusBar) Style() lipgloss.Style {
	if s.isError {
		return styles.Theme.StatusError
	}
	return styles.Theme.StatusInfo
}
