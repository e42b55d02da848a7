package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jigglemouse/jiggle/internal/util"
)

// tickMsg is sent once per second while the running view is shown.
type tickMsg time.Time

// Update handles messages and updates the model accordingly.
func Update(msg tea.Msg, m Model) (Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && m.ShowHelp {
		if key.Matches(k, m.Keys.ToggleHelp, m.Keys.Quit, m.Keys.Back) {
			m.ShowHelp = false
		}
		return m, nil
	}

	switch m.State {
	case stateMenu:
		return updateMenu(msg, m)
	case stateThresholdInput, stateIntervalInput:
		return updateInput(msg, m)
	case stateRunning:
		return updateRunning(msg, m)
	}

	return m, nil
}

func updateMenu(msg tea.Msg, m Model) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Up):
			if m.Selected > 0 {
				m.Selected--
			}
		case key.Matches(msg, m.Keys.Down):
			if m.Selected < 3 {
				m.Selected++
			}
		case key.Matches(msg, m.Keys.Select):
			switch m.Selected {
			case 0:
				m.Coordinator.Start()
				if !m.Coordinator.IsRunning() {
					m.ErrorMessage = "Could not start: accessibility permission not granted. Grant access and try again."
					return m, nil
				}
				m.State = stateRunning
				m.ErrorMessage = ""
				m.Snap = m.Coordinator.Snapshot()
				return m, tick()
			case 1:
				m.State = stateThresholdInput
				m.Input = ""
				m.ErrorMessage = ""
				return m, nil
			case 2:
				m.State = stateIntervalInput
				m.Input = ""
				m.ErrorMessage = ""
				return m, nil
			case 3:
				m.Coordinator.Stop()
				return m, tea.Quit
			}
		case key.Matches(msg, m.Keys.ToggleHelp):
			m.ShowHelp = true
		case key.Matches(msg, m.Keys.Quit, m.Keys.Back):
			m.Coordinator.Stop()
			return m, tea.Quit
		}
	}

	return m, nil
}

func updateInput(msg tea.Msg, m Model) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Submit):
			if m.Input == "" {
				m.ErrorMessage = "Please enter a duration"
				return m, nil
			}
			d, err := util.ParseDuration(m.Input)
			if err != nil {
				m.ErrorMessage = "Invalid duration (try \"30s\", \"2m\" or plain seconds)"
				return m, nil
			}
			if m.State == stateThresholdInput {
				m.Settings.SetIdleThreshold(d)
			} else {
				m.Settings.SetMoveInterval(d)
			}
			m.State = stateMenu
			m.ErrorMessage = ""
			return m, nil
		case key.Matches(msg, m.Keys.Back):
			m.State = stateMenu
			m.ErrorMessage = ""
			return m, nil
		case key.Matches(msg, m.Keys.Backspace):
			if len(m.Input) > 0 {
				m.Input = m.Input[:len(m.Input)-1]
				m.ErrorMessage = ""
			}
			return m, nil
		case msg.String() == "ctrl+c":
			m.Coordinator.Stop()
			return m, tea.Quit
		default:
			if len(msg.String()) == 1 && len(m.Input) < 8 {
				m.Input += msg.String()
				m.ErrorMessage = ""
			}
			return m, nil
		}
	}
	return m, nil
}

func updateRunning(msg tea.Msg, m Model) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Stop), msg.String() == "enter":
			m.Coordinator.Stop()
			m.State = stateMenu
			m.ErrorMessage = ""
			return m, nil
		case key.Matches(msg, m.Keys.ToggleHelp):
			m.ShowHelp = true
			return m, nil
		case key.Matches(msg, m.Keys.Quit):
			m.Coordinator.Stop()
			return m, tea.Quit
		}
	case tickMsg:
		m.Snap = m.Coordinator.Snapshot()
		return m, tick()
	}
	return m, nil
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
