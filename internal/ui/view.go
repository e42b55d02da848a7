package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/jigglemouse/jiggle/internal/jiggle"
)

// View renders the current state of the model to a string.
func View(m Model) string {
	if m.ShowHelp {
		return helpView(m)
	}

	switch m.State {
	case stateMenu:
		return menuView(m)
	case stateThresholdInput:
		return inputView(m, "Idle Threshold", "How long the system must be idle before jiggling starts:")
	case stateIntervalInput:
		return inputView(m, "Move Interval", "Time between cursor moves while jiggling:")
	case stateRunning:
		return runningView(m)
	}

	return ""
}

func menuView(m Model) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render("Jiggle"))
	b.WriteString("\n\n")

	settings := m.Settings.Snapshot()
	menuItems := []string{
		"Start jiggling",
		fmt.Sprintf("Set idle threshold (now %s)", settings.IdleThreshold.Duration),
		fmt.Sprintf("Set move interval (now %s)", settings.MoveInterval.Duration),
		"Quit",
	}

	for i, opt := range menuItems {
		if i == m.Selected {
			b.WriteString(Current.Selected.Render("> " + opt))
		} else {
			b.WriteString(Current.Unselected.Render("  " + opt))
		}
		b.WriteString("\n")
	}

	if m.ErrorMessage != "" {
		b.WriteString("\n" + Current.Error.Render(m.ErrorMessage))
	}

	b.WriteString("\n\n" + m.Help.View(m.Keys.ForState(stateMenu)))
	return b.String()
}

func inputView(m Model, title, prompt string) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render(title))
	b.WriteString("\n\n")

	b.WriteString(Current.Unselected.Render(prompt))
	b.WriteString("\n")
	input := m.Input
	if input == "" {
		input = " "
	}
	b.WriteString(Current.InputBox.Render(input))
	b.WriteString("\n\n")

	b.WriteString(m.Help.View(m.Keys.ForState(m.State)))

	if m.ErrorMessage != "" {
		b.WriteString("\n\n" + Current.Error.Render(m.ErrorMessage))
	}

	return b.String()
}

func runningView(m Model) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render("Jiggle Active"))
	b.WriteString("\n\n")

	switch m.Snap.State {
	case jiggle.StateJiggling:
		b.WriteString(Current.Active.Render("● Jiggling — keeping the cursor moving"))
	default:
		b.WriteString(Current.Paused.Render("○ Monitoring — waiting for inactivity"))
	}
	b.WriteString("\n\n")

	b.WriteString(Current.Stat.Render(fmt.Sprintf("System idle: %s", formatSeconds(m.Snap.IdleTime))))
	b.WriteString("\n")
	b.WriteString(Current.Stat.Render(fmt.Sprintf("Cursor still: %s", formatSeconds(m.Snap.StillTime))))
	b.WriteString("\n")
	b.WriteString(Current.Unselected.Render("Last jiggle: " + formatLastJiggle(m.Snap.LastJiggle)))
	b.WriteString("\n")

	b.WriteString("\n" + m.Help.View(m.Keys.ForState(stateRunning)))

	if m.ErrorMessage != "" {
		b.WriteString("\n\n" + Current.Error.Render(m.ErrorMessage))
	}

	return b.String()
}

func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%ds", int(d.Seconds()))
}

func formatLastJiggle(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	ago := time.Since(t).Round(time.Second)
	return fmt.Sprintf("%s ago", ago)
}

func helpView(m Model) string {
	expanded := m.Help
	expanded.ShowAll = true
	keys := expanded.View(m.Keys.ForState(m.State))

	help := fmt.Sprintf(`Jiggle Help (version %s)

Jiggle keeps your machine from looking idle by moving the cursor
after a period of inactivity, and steps aside the moment you touch
the mouse or keyboard.

Usage:
  jiggle [flags]

Flags:
  -t, --threshold string   Idle time before jiggling starts (e.g. "30s", "2m", or seconds)
  -i, --interval string    Time between cursor moves (e.g. "10s", or seconds)
      --config string      Path to config file
      --log string         Log file path
  -v, --version            Show version information

Keys:
%s

Press 'q' or 'Esc' to close help`, m.Version, keys)

	return Current.Help.Render(help)
}
