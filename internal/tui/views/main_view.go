package views

import (
	"fmt"
	"strings"
	"unicode"

	"mdtui/internal/tui/common"
	"mdtui/internal/tui/components"
	"mdtui/internal/tui/styles"
	"mdtui/pkg/types"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// palette is the set of styles for one frame; it depends on mode and focus.
type palette struct {
	border   lipgloss.Style
	title    lipgloss.Style
	mode     lipgloss.Style
	position lipgloss.Style
	gutter   lipgloss.Style
	text     lipgloss.Style
	cursor   lipgloss.Style
}

func newPalette(mode types.Mode, focused bool) palette {
	p := palette{
		border:   styles.Theme.Border,
		title:    styles.Theme.Title,
		mode:     styles.Theme.Mode,
		position: styles.Theme.Position,
		gutter:   styles.Theme.Gutter,
		text:     lipgloss.NewStyle(),
		cursor:   styles.Theme.Cursor,
	}
	if mode == types.Edit {
		p.mode = styles.Theme.EditMode
		p.cursor = styles.Theme.EditCursor
	}
	if !focused {
		faint := styles.Theme.Unfocused
		p.border, p.title, p.mode, p.position, p.gutter, p.text = faint, faint, faint, faint, faint, faint
		p.cursor = p.cursor.Faint(true)
	}
	return p
}

// RenderMainView draws the editor pane and, when present, the status line.
// Nothing is drawn once the editor has exited.
func RenderMainView(m common.ModelReader) string {
	if m.Mode() == types.Exit {
		return ""
	}

	width, height := m.Size()
	lines := m.Lines()
	row, col := m.Cursor()

	status := components.NewStatusBar()
	status.SetText(m.Status())
	status.SetWidth(width)

	layout := common.NewLayout(width, height, status.Visible(), m.LineNumbers(), len(lines))
	p := newPalette(m.Mode(), m.Focused())
	inner := max(layout.Width-2, 0)

	var sb strings.Builder
	sb.WriteString(topEdge(m.Name(), inner, p))
	sb.WriteString("\n")

	body := append([]string{strings.Repeat(" ", inner)}, renderText(lines, row, col, m.Top(), layout, p)...)
	for _, line := range body {
		sb.WriteString(p.border.Render(styles.BorderChars.Left))
		sb.WriteString(line)
		sb.WriteString(p.border.Render(styles.BorderChars.Right))
		sb.WriteString("\n")
	}

	sb.WriteString(bottomEdge(m.Mode().Indicator(), Position(row, col), inner, p))

	if status.Visible() {
		sb.WriteString("\n")
		sb.WriteString(status.View())
	}
	return fitWidth(sb.String(), layout.Width)
}

// fitWidth cuts every line to at most width cells. Only terminals narrower
// than the border and one text column are affected.
func fitWidth(frame string, width int) string {
	lines := strings.Split(frame, "\n")
	for i, line := range lines {
		if ansi.StringWidth(line) > width {
			lines[i] = ansi.Truncate(line, width, "")
		}
	}
	return strings.Join(lines, "\n")
}

// Position formats the cursor indicator: 1-based line, 0-based column.
func Position(row, col int) string {
	return fmt.Sprintf("[%d:%d]", row+1, col)
}

func topEdge(name string, inner int, p palette) string {
	b := styles.BorderChars
	title := ""
	if name != "" {
		title = runewidth.Truncate("["+name+"]", inner, "…]")
	}
	tw := runewidth.StringWidth(title)
	if tw > inner {
		title, tw = "", 0
	}
	left := (inner - tw) / 2
	right := inner - tw - left

	return p.border.Render(b.TopLeft+strings.Repeat(b.Top, left)) +
		p.title.Render(title) +
		p.border.Render(strings.Repeat(b.Top, right)+b.TopRight)
}

func bottomEdge(mode, pos string, inner int, p palette) string {
	b := styles.BorderChars
	mw, pw := runewidth.StringWidth(mode), runewidth.StringWidth(pos)
	if mw+pw > inner {
		pos, pw = "", 0
	}
	if mw > inner {
		mode, mw = "", 0
	}
	fill := inner - mw - pw

	return p.border.Render(b.BottomLeft) +
		p.mode.Render(mode) +
		p.border.Render(strings.Repeat(b.Bottom, fill)) +
		p.position.Render(pos) +
		p.border.Render(b.BottomRight)
}

// renderText returns exactly layout.TextRows rows of layout.Width-2 columns,
// starting at buffer row top.
func renderText(lines []string, row, col, top int, layout common.Layout, p palette) []string {
	left := 0
	if row >= 0 && row < len(lines) {
		runes := displayRunes(lines[row])
		cursorX := runewidth.StringWidth(string(runes[:min(col, len(runes))]))
		if cursorX >= layout.TextWidth {
			left = cursorX - layout.TextWidth + 1
		}
	}

	content := make([]string, 0, len(lines)+layout.TextRows)
	for i, line := range lines {
		cursorCol := -1
		if i == row {
			cursorCol = col
		}
		content = append(content,
			gutter(i+1, layout.GutterSize, p)+
				clipLine(displayRunes(line), left, layout.TextWidth, cursorCol, p))
	}
	// Blank rows below the last line let the offset reach the final line.
	for i := 1; i < layout.TextRows; i++ {
		content = append(content, gutter(0, layout.GutterSize, p))
	}

	vp := viewport.New(max(layout.Width-2, 0), layout.TextRows)
	vp.SetContent(strings.Join(content, "\n"))
	vp.SetYOffset(top)
	return strings.Split(vp.View(), "\n")
}

func gutter(n, size int, p palette) string {
	if size == 0 {
		return ""
	}
	if n == 0 {
		return strings.Repeat(" ", size)
	}
	return p.gutter.Render(fmt.Sprintf("%*d ", size-1, n))
}

// displayRunes replaces tabs and control characters with single spaces so
// every rune has a predictable cell width.
func displayRunes(line string) []rune {
	runes := []rune(line)
	for i, r := range runes {
		if unicode.IsControl(r) {
			runes[i] = ' '
		}
	}
	return runes
}

// clipLine renders the cells [left, left+width) of a line. cursorCol is the
// rune index of the cursor, or -1 when the cursor is on another line.
func clipLine(runes []rune, left, width, cursorCol int, p palette) string {
	var sb, plain strings.Builder
	flush := func() {
		if plain.Len() > 0 {
			sb.WriteString(p.text.Render(plain.String()))
			plain.Reset()
		}
	}

	x := 0
	for i, r := range runes {
		w := runewidth.RuneWidth(r)
		if x < left {
			x += w
			continue
		}
		if x+w > left+width {
			break
		}
		if i == cursorCol {
			flush()
			sb.WriteString(p.cursor.Render(string(r)))
		} else {
			plain.WriteRune(r)
		}
		x += w
	}
	flush()

	if cursorCol >= len(runes) {
		sb.WriteString(p.cursor.Render(" "))
	}
	return sb.String()
}
