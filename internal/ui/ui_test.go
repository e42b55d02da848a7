package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/jigglemouse/jiggle/internal/config"
	"github.com/jigglemouse/jiggle/internal/idle"
	"github.com/jigglemouse/jiggle/internal/jiggle"
)

type stubIdleSource struct{}

func (stubIdleSource) Stream(ctx context.Context, interval time.Duration) <-chan idle.Reading {
	ch := make(chan idle.Reading)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch
}

type stubClassifier struct{ still time.Duration }

func (s *stubClassifier) Sample(time.Duration)         {}
func (s *stubClassifier) StillTime() time.Duration     { return s.still }
func (s *stubClassifier) UserMoving() bool             { return false }
func (s *stubClassifier) SetStillTime(d time.Duration) { s.still = d }
func (s *stubClassifier) Reset()                       { s.still = 0 }

type stubActuator struct{}

func (stubActuator) Jiggle()        {}
func (stubActuator) InFlight() bool { return false }

type deniedPermission struct{}

func (deniedPermission) Granted() bool { return false }
func (deniedPermission) Request()      {}

func newTestModel(t *testing.T, opts ...jiggle.Option) Model {
	t.Helper()
	store := config.NewStore(config.Default())
	coord := jiggle.New(stubIdleSource{}, &stubClassifier{}, stubActuator{}, store, zap.NewNop(), opts...)
	t.Cleanup(coord.Stop)
	return InitialModel(coord, store)
}

func TestInitialModel(t *testing.T) {
	m := newTestModel(t)
	if m.State != stateMenu {
		t.Error("expected initial state to be stateMenu")
	}
	if m.Selected != 0 {
		t.Error("expected initial selected to be 0")
	}
	if m.Input != "" {
		t.Error("expected initial input to be empty")
	}
	if m.ErrorMessage != "" {
		t.Error("expected initial error message to be empty")
	}
}

func TestMenuView(t *testing.T) {
	m := newTestModel(t)
	view := View(m)

	expectedOptions := []string{
		"Start jiggling",
		"Set idle threshold",
		"Set move interval",
		"Quit",
	}

	for _, opt := range expectedOptions {
		if !strings.Contains(view, opt) {
			t.Errorf("expected view to contain option %q", opt)
		}
	}

	lines := strings.Split(view, "\n")
	foundCursor := false
	for _, line := range lines {
		if strings.Contains(line, ">") && strings.Contains(line, "Start jiggling") {
			foundCursor = true
			break
		}
	}
	if !foundCursor {
		t.Error("expected cursor to be at first option")
	}
}

func TestMenuNavigation(t *testing.T) {
	m := newTestModel(t)

	m, _ = Update(tea.KeyMsg{Type: tea.KeyDown}, m)
	assert.Equal(t, 1, m.Selected)

	m, _ = Update(tea.KeyMsg{Type: tea.KeyUp}, m)
	assert.Equal(t, 0, m.Selected)

	m, _ = Update(tea.KeyMsg{Type: tea.KeyUp}, m)
	assert.Equal(t, 0, m.Selected, "up at top stays at top")
}

func TestStartEntersRunning(t *testing.T) {
	m := newTestModel(t)

	m, cmd := Update(tea.KeyMsg{Type: tea.KeyEnter}, m)
	assert.Equal(t, stateRunning, m.State)
	assert.NotNil(t, cmd, "running state must schedule ticks")
	assert.True(t, m.Coordinator.IsRunning())
}

func TestStartWithoutPermissionShowsError(t *testing.T) {
	m := newTestModel(t, jiggle.WithPermission(deniedPermission{}))

	m, _ = Update(tea.KeyMsg{Type: tea.KeyEnter}, m)
	assert.Equal(t, stateMenu, m.State)
	assert.NotEmpty(t, m.ErrorMessage)
	assert.False(t, m.Coordinator.IsRunning())
}

func TestStopReturnsToMenu(t *testing.T) {
	m := newTestModel(t)

	m, _ = Update(tea.KeyMsg{Type: tea.KeyEnter}, m)
	assert.Equal(t, stateRunning, m.State)

	m, _ = Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}, m)
	assert.Equal(t, stateMenu, m.State)
	assert.False(t, m.Coordinator.IsRunning())
}

func TestThresholdInput(t *testing.T) {
	m := newTestModel(t)
	m.Selected = 1

	m, _ = Update(tea.KeyMsg{Type: tea.KeyEnter}, m)
	assert.Equal(t, stateThresholdInput, m.State)

	for _, r := range "45s" {
		m, _ = Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}, m)
	}
	assert.Equal(t, "45s", m.Input)

	m, _ = Update(tea.KeyMsg{Type: tea.KeyEnter}, m)
	assert.Equal(t, stateMenu, m.State)
	assert.Equal(t, 45*time.Second, m.Settings.Snapshot().IdleThreshold.Duration)
}

func TestInvalidThresholdInput(t *testing.T) {
	m := newTestModel(t)
	m.State = stateThresholdInput
	m.Input = "nope"

	m, _ = Update(tea.KeyMsg{Type: tea.KeyEnter}, m)
	assert.Equal(t, stateThresholdInput, m.State)
	assert.NotEmpty(t, m.ErrorMessage)
}

func TestRunningViewShowsSnapshot(t *testing.T) {
	m := newTestModel(t)
	m.State = stateRunning
	m.Snap = jiggle.Snapshot{
		State:     jiggle.StateJiggling,
		Active:    true,
		IdleTime:  42 * time.Second,
		StillTime: 40 * time.Second,
	}

	view := View(m)
	assert.Contains(t, view, "Jiggling")
	assert.Contains(t, view, "42s")
	assert.Contains(t, view, "40s")
	assert.Contains(t, view, "never")
}

func TestViewsRenderContextualKeyHints(t *testing.T) {
	m := newTestModel(t)

	view := View(m)
	for _, hint := range []string{"select", "toggle help", "quit"} {
		assert.Contains(t, view, hint, "menu hint line comes from the key map")
	}

	m.State = stateRunning
	assert.Contains(t, View(m), "stop")

	m.State = stateIntervalInput
	assert.Contains(t, View(m), "apply")
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t)

	m, _ = Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}}, m)
	assert.True(t, m.ShowHelp)
	assert.Contains(t, View(m), "Jiggle Help")

	m, _ = Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}}, m)
	assert.False(t, m.ShowHelp)
}
