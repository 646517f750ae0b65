package types

// Mode represents the current interaction mode of the editor
type Mode int

const (
	// View is the default mode for navigation; it never changes the buffer
	View Mode = iota
	// Edit forwards keystrokes to the buffer as text edits
	Edit
	// Exit is terminal: the program stops once it is reached
	Exit
)

func (m Mode) String() string {
	switch m {
	case View:
		return "view"
	case Edit:
		return "edit"
	case Exit:
		return "exit"
	}
	return "unknown"
}

// Indicator returns the label shown in the frame's bottom border.
func (m Mode) Indicator() string {
	switch m {
	case View:
		return "[VIEW]"
	case Edit:
		return "[EDIT]"
	}
	return ""
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	return m >= View && m <= Exit
}

// StateReader defines the interface that views use to read editor state
type StateReader interface {
	Mode() Mode
	Focused() bool
	Name() string
	Lines() []string
	Cursor() (row, col int)
	Top() int
	Status() (text string, isError bool)
}
