package tui

import (
	"mdtui/internal/document"
	log "mdtui/internal/log"
	"mdtui/internal/tui/common"
	"mdtui/internal/tui/views"
	"mdtui/pkg/types"

	tea "github.com/charmbracelet/bubbletea"
)

// Status is the outcome message of the last save.
type Status struct {
	Text    string
	IsError bool
}

// State is everything the key dispatch reads and writes besides the buffer.
type State struct {
	Mode   types.Mode
	Focus  bool
	Status Status
}

type Model struct {
	state State
	doc   *document.Document

	keys    types.KeyMap
	bufKeys types.BufferKeyMap

	width       int
	height      int
	tabWidth    int
	lineNumbers bool
}

// Option configures a Model
type Option func(*Model)

// WithTabWidth sets how many columns a Tab press advances to.
func WithTabWidth(n int) Option {
	return func(m *Model) {
		if n > 0 {
			m.tabWidth = n
		}
	}
}

func WithLineNumbers(show bool) Option {
	return func(m *Model) {
		m.lineNumbers = show
	}
}

func WithKeyMap(keys types.KeyMap) Option {
	return func(m *Model) {
		m.keys = keys
	}
}

// New creates an editor for doc. It starts in View mode and assumes the
// terminal has focus until told otherwise.
func New(doc *document.Document, opts ...Option) *Model {
	if doc == nil {
		doc = document.New()
	}
	m := &Model{
		state: State{
			Mode:  types.View,
			Focus: true,
		},
		doc:         doc,
		keys:        types.DefaultKeyMap(),
		bufKeys:     types.DefaultBufferKeyMap(),
		tabWidth:    4,
		lineNumbers: true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// View implements tea.Model
func (m *Model) View() string {
	return views.RenderMainView(m)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state.Mode == types.Exit {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.FocusMsg:
		m.state.Focus = true
		return m, nil
	case tea.BlurMsg:
		m.state.Focus = false
		return m, nil
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.follow()
		return m, nil
	case tea.KeyMsg:
		m.state.Status = Status{}
		m.handleKeyMsg(msg)
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		m.state.Status = Status{}
		m.handleMouseMsg(msg)
	default:
		return m, nil
	}

	if m.state.Mode == types.Exit {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) setMode(mode types.Mode) {
	if m.state.Mode == mode {
		return
	}
	log.LogWithFields(
		log.F("from", m.state.Mode.String()),
		log.F("to", mode.String()),
	).Debug("mode changed")
	m.state.Mode = mode
}

func (m *Model) textRows() int {
	return common.NewLayout(m.width, m.height, m.state.Status.Text != "", m.lineNumbers, m.doc.Buffer().LineCount()).TextRows
}

// follow scrolls so the cursor stays on screen.
func (m *Model) follow() {
	m.doc.Buffer().Follow(m.textRows())
}

// State returns a copy of the editor state.
func (m *Model) State() State {
	return m.state
}

func (m *Model) Document() *document.Document {
	return m.doc
}

// Getters used by the views

func (m *Model) Mode() types.Mode {
	return m.state.Mode
}

func (m *Model) Focused() bool {
	return m.state.Focus
}

func (m *Model) Name() string {
	return m.doc.Name()
}

func (m *Model) Lines() []string {
	return m.doc.Lines()
}

func (m *Model) Cursor() (row, col int) {
	p := m.doc.Buffer().Cursor()
	return p.Row, p.Col
}

func (m *Model) Top() int {
	return m.doc.Buffer().Top()
}

func (m *Model) Status() (text string, isError bool) {
	return m.state.Status.Text, m.state.Status.IsError
}

func (m *Model) Size() (width, height int) {
	return m.width, m.height
}

func (m *Model) LineNumbers() bool {
	return m.lineNumbers
}
