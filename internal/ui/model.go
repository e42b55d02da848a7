package ui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jigglemouse/jiggle/internal/config"
	"github.com/jigglemouse/jiggle/internal/jiggle"
)

// state represents the different states of the TUI.
type state int

const (
	stateMenu state = iota
	stateThresholdInput
	stateIntervalInput
	stateRunning
)

// Model holds the current state of the UI, including user input and
// the coordinator's published snapshot.
type Model struct {
	State        state
	Selected     int
	Input        string
	Coordinator  *jiggle.Coordinator
	Settings     *config.Store
	Snap         jiggle.Snapshot
	ErrorMessage string
	ShowHelp     bool
	Version      string
	Keys         KeyMap
	Help         help.Model
}

// InitialModel returns the initial model for the TUI.
func InitialModel(coord *jiggle.Coordinator, settings *config.Store) Model {
	return Model{
		State:       stateMenu,
		Selected:    0,
		Input:       "",
		Coordinator: coord,
		Settings:    settings,
		Keys:        DefaultKeys(),
		Help:        NewHelpModel(),
	}
}

// SetVersion records the version string shown in the help view.
func (m *Model) SetVersion(v string) {
	m.Version = v
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	if m.State == stateRunning {
		return tick()
	}
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := Update(msg, m)
	return newModel, cmd
}

// View implements tea.Model
func (m Model) View() string {
	return View(m)
}
