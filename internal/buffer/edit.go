package buffer

import "strings"

// InsertText inserts s at the cursor. "\r\n" and "\r" are treated as line
// breaks; every other rune is inserted literally.
func (b *Buffer) InsertText(s string) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	for _, r := range s {
		if r == '\n' {
			b.InsertNewline()
			continue
		}
		b.InsertRune(r)
	}
}

// InsertRune inserts r before the cursor and advances it.
func (b *Buffer) InsertRune(r rune) {
	row, col := b.cursor.Row, b.cursor.Col
	line := b.lines[row]

	next := make([]rune, 0, len(line)+1)
	next = append(next, line[:col]...)
	next = append(next, r)
	next = append(next, line[col:]...)
	b.lines[row] = next

	b.cursor.Col = col + 1
	b.wantCol = b.cursor.Col
}

// InsertNewline splits the current line at the cursor.
func (b *Buffer) InsertNewline() {
	row, col := b.cursor.Row, b.cursor.Col
	line := b.lines[row]

	head := append([]rune(nil), line[:col]...)
	tail := append([]rune(nil), line[col:]...)

	lines := make([][]rune, 0, len(b.lines)+1)
	lines = append(lines, b.lines[:row]...)
	lines = append(lines, head, tail)
	lines = append(lines, b.lines[row+1:]...)
	b.lines = lines

	b.cursor = Pos{Row: row + 1, Col: 0}
	b.wantCol = 0
}

// DeleteBackward removes the rune before the cursor. At column 0 the line is
// joined onto the previous one.
func (b *Buffer) DeleteBackward() {
	row, col := b.cursor.Row, b.cursor.Col
	if col > 0 {
		line := b.lines[row]
		b.lines[row] = append(line[:col-1:col-1], line[col:]...)
		b.cursor.Col = col - 1
		b.wantCol = b.cursor.Col
		return
	}
	if row == 0 {
		return
	}
	prevLen := len(b.lines[row-1])
	b.joinWithNext(row - 1)
	b.cursor = Pos{Row: row - 1, Col: prevLen}
	b.wantCol = prevLen
}

// DeleteForward removes the rune under the cursor. At end of line the next
// line is joined onto this one.
func (b *Buffer) DeleteForward() {
	row, col := b.cursor.Row, b.cursor.Col
	line := b.lines[row]
	if col < len(line) {
		b.lines[row] = append(line[:col:col], line[col+1:]...)
		return
	}
	if row == b.lastRow() {
		return
	}
	b.joinWithNext(row)
}

func (b *Buffer) joinWithNext(row int) {
	joined := make([]rune, 0, len(b.lines[row])+len(b.lines[row+1]))
	joined = append(joined, b.lines[row]...)
	joined = append(joined, b.lines[row+1]...)

	lines := make([][]rune, 0, len(b.lines)-1)
	lines = append(lines, b.lines[:row]...)
	lines = append(lines, joined)
	lines = append(lines, b.lines[row+2:]...)
	b.lines = lines
}
