// Package buffer implements the line buffer behind the editor pane.
//
// Coordinates are 0-based (Row, Col) in runes. The buffer also owns the
// vertical scroll offset so that scrolling and cursor movement stay consistent.
package buffer

import "strings"

// Pos is a cursor position.
type Pos struct {
	Row int
	Col int
}

// Buffer holds text lines, the cursor and the first visible row.
type Buffer struct {
	lines  [][]rune
	cursor Pos
	top    int

	// wantCol is the column vertical moves try to return to.
	wantCol int
}

// New creates a buffer from lines. No lines yields a single empty line.
func New(lines []string) *Buffer {
	b := &Buffer{}
	b.setLines(lines)
	return b
}

// FromText splits text on "\n". A single trailing newline does not produce an
// extra empty line.
func FromText(text string) *Buffer {
	return New(SplitLines(text))
}

// SplitLines splits text into lines the way the document file format defines
// them: "\n" separates lines and terminates the last one.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

func (b *Buffer) setLines(lines []string) {
	b.lines = make([][]rune, 0, len(lines))
	for _, s := range lines {
		b.lines = append(b.lines, []rune(s))
	}
	if len(b.lines) == 0 {
		b.lines = append(b.lines, []rune{})
	}
	b.cursor = Pos{}
	b.top = 0
	b.wantCol = 0
}

// Lines returns a copy of the buffer content.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = string(l)
	}
	return out
}

func (b *Buffer) LineCount() int { return len(b.lines) }

func (b *Buffer) Cursor() Pos { return b.cursor }

// Top returns the first visible row.
func (b *Buffer) Top() int { return b.top }

// SetCursor moves the cursor, clamping to the content.
func (b *Buffer) SetCursor(p Pos) {
	b.cursor = b.clampPos(p)
	b.wantCol = b.cursor.Col
}

func (b *Buffer) lastRow() int {
	return len(b.lines) - 1
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	if p.Row < 0 {
		p.Row = 0
	}
	if p.Row > b.lastRow() {
		p.Row = b.lastRow()
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if n := b.lineLen(p.Row); p.Col > n {
		p.Col = n
	}
	return p
}

// Scroll moves the viewport by delta rows without moving the text. The first
// visible row may go as far as the last line, leaving blank rows below it.
// The cursor is pulled into the visible window when it falls outside.
func (b *Buffer) Scroll(delta, rows int) {
	if rows < 1 {
		rows = 1
	}
	b.top += delta
	if b.top > b.lastRow() {
		b.top = b.lastRow()
	}
	if b.top < 0 {
		b.top = 0
	}

	bottom := b.top + rows - 1
	if bottom > b.lastRow() {
		bottom = b.lastRow()
	}
	switch {
	case b.cursor.Row < b.top:
		b.cursor = b.clampPos(Pos{Row: b.top, Col: b.wantCol})
	case b.cursor.Row > bottom:
		b.cursor = b.clampPos(Pos{Row: bottom, Col: b.wantCol})
	}
}

// Follow adjusts the viewport so the cursor row is visible in a window of
// rows lines.
func (b *Buffer) Follow(rows int) {
	if rows < 1 {
		rows = 1
	}
	if b.cursor.Row < b.top {
		b.top = b.cursor.Row
	}
	if b.cursor.Row >= b.top+rows {
		b.top = b.cursor.Row - rows + 1
	}
}
