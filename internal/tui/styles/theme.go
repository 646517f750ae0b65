package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the editor frame styles
var Theme = struct {
	Border      lipgloss.Style
	Title       lipgloss.Style
	Mode        lipgloss.Style
	EditMode    lipgloss.Style
	Position    lipgloss.Style
	Gutter      lipgloss.Style
	Cursor      lipgloss.Style
	EditCursor  lipgloss.Style
	Unfocused   lipgloss.Style
	StatusInfo  lipgloss.Style
	StatusError lipgloss.Style
}{
	Border: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7B61FF")),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")),
	Mode: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#5A9")).
		Bold(true),
	EditMode: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#73F59F")).
		Bold(true),
	Position: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#959595")),
	Gutter: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666666")),
	Cursor: lipgloss.NewStyle().
		Reverse(true),
	EditCursor: lipgloss.NewStyle().
		Reverse(true).
		Blink(true),
	Unfocused: lipgloss.NewStyle().
		Faint(true),
	StatusInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00FF00")),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF0000")),
}

// BorderChars is the rounded border drawn around the editor pane
var BorderChars = lipgloss.RoundedBorder()
