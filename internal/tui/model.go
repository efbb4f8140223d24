package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/gridmark/gridmark/internal/core/eventbus"
	"github.com/gridmark/gridmark/internal/core/grid"
	"github.com/gridmark/gridmark/internal/core/logging"
	"github.com/gridmark/gridmark/internal/core/notify"
	"github.com/gridmark/gridmark/internal/editor"
)

// UIState represents the current state of the TUI.
type UIState int

const (
	stateNormal UIState = iota
	stateEditing
	stateHelp
	statePreview
)

// Options configures the TUI behavior.
type Options struct {
	Handle *editor.Handle     // open table session
	Bus    *eventbus.EventBus // event bus for cross-component communication
	Theme  string             // palette name from config
}

// Model is the main Bubble Tea model for the grid editor.
type Model struct {
	handle *editor.Handle
	keys   keyMap
	styles Styles
	help   help.Model
	log    zerolog.Logger

	state    UIState
	snapshot grid.Snapshot
	cursor   grid.CellRef
	input    textinput.Model
	preview  viewport.Model

	events chan tea.Msg

	status      string
	statusLevel notify.Level
	rowOffset   int
	width       int
	height      int
	quitting    bool
}

// NewModel creates the editor model for an open table session.
func NewModel(opts Options) Model {
	styles := NewStyles(ThemePalette(opts.Theme))

	input := textinput.New()
	input.Prompt = ""

	m := Model{
		handle:   opts.Handle,
		keys:     newKeyMap(),
		styles:   styles,
		help:     help.New(),
		log:      logging.Document("tui", opts.Handle.Doc.Path()),
		snapshot: opts.Handle.Session.Snapshot(),
		cursor:   grid.CellRef{Row: 0, Col: 0},
		input:    input,
		events:   bridgeEvents(opts.Bus, opts.Handle.Doc.Path()),
	}
	m.handle.Session.Focus(0, 0)
	return m
}

// Init starts listening for bridged bus events.
func (m Model) Init() tea.Cmd {
	return waitEvent(m.events)
}

// session is a shorthand for the underlying grid session.
func (m Model) session() *grid.Session {
	return m.handle.Session
}

// setStatus records a status-line message with a severity.
func (m *Model) setStatus(level notify.Level, msg string) {
	m.status = msg
	m.statusLevel = level
}
