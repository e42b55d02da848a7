package main

import (
	"fmt"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jigglemouse/jiggle/internal/activity"
	"github.com/jigglemouse/jiggle/internal/actuator"
	"github.com/jigglemouse/jiggle/internal/config"
	"github.com/jigglemouse/jiggle/internal/idle"
	"github.com/jigglemouse/jiggle/internal/jiggle"
	"github.com/jigglemouse/jiggle/internal/notify"
	"github.com/jigglemouse/jiggle/internal/permission"
	"github.com/jigglemouse/jiggle/internal/screen"
	"github.com/jigglemouse/jiggle/internal/ui"
)

const appVersion = "1.0.2"

func main() {
	flags, err := config.ParseFlags(appVersion)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := newLogger(flags.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	store := config.NewStore(flags.Settings)

	scr := screen.NewSystem(logger)
	monitor := idle.NewMonitor(logger)
	classifier := activity.New(scr, logger)

	act := actuator.New(scr, logger)
	act.OnComplete(classifier.MaskMovement)

	coord := jiggle.New(monitor, classifier, act, store, logger,
		jiggle.WithNotifier(notify.New(logger)),
		jiggle.WithPermission(permission.New(scr, logger)),
	)

	model := ui.InitialModel(coord, store)
	model.SetVersion(appVersion)

	// Set up signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, getSignalsForPlatform()...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithoutSignalHandler(),
	)

	// Handle signals in a separate goroutine
	go func() {
		sig := <-sigChan
		logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
		coord.Stop()
		p.Kill()
	}()

	if _, err := p.Run(); err != nil {
		logger.Error("program exited with error", zap.Error(err))
		coord.Stop()
		os.Exit(1)
	}

	coord.Stop()
}

// newLogger builds a file-backed logger so log output does not fight
// the TUI for the terminal.
func newLogger(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return logger, nil
}
