package common

import (
	"strconv"

	"mdtui/pkg/types"
)

// ModelReader defines the interface that views use to read model state
type ModelReader interface {
	types.StateReader
	Size() (width, height int)
	LineNumbers() bool
}

// Layout is the geometry of the editor pane for a given terminal size.
type Layout struct {
	Width      int // outer width including borders
	Height     int // outer height including borders
	TextRows   int // visible text rows
	TextWidth  int // columns available for text after the gutter
	GutterSize int // line number gutter width including its trailing space
}

const (
	// DefaultWidth and DefaultHeight are used until the first resize event.
	DefaultWidth  = 80
	DefaultHeight = 24

	borderRows  = 2
	paddingRows = 1
	borderCols  = 2
)

// NewLayout computes the pane geometry. statusShown reserves the last
// terminal row for the status line. lineCount sizes the gutter.
func NewLayout(width, height int, statusShown, lineNumbers bool, lineCount int) Layout {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	if statusShown {
		height--
	}

	l := Layout{Width: width, Height: height}
	l.TextRows = max(height-borderRows-paddingRows, 1)

	if lineNumbers {
		digits := len(strconv.Itoa(max(lineCount, 1)))
		l.GutterSize = digits + 1
	}
	// No room for text next to the gutter: drop the gutter.
	if width-borderCols-l.GutterSize < 1 {
		l.GutterSize = 0
	}
	l.TextWidth = max(width-borderCols-l.GutterSize, 1)
	return l
}
