package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/jigglemouse/jiggle/internal/util"
)

// Flags holds the parsed command line options.
type Flags struct {
	Settings    Settings
	ConfigPath  string
	LogFile     string
	ShowVersion bool
}

// ParseFlags parses command line arguments on top of the config file.
// Flag values, when given, override file values.
func ParseFlags(version string) (*Flags, error) {
	flags := flag.NewFlagSet("jiggle", flag.ExitOnError)

	configPath := flags.String("config", DefaultPath(), "Path to config file")
	threshold := flags.String("threshold", "", "Idle time before jiggling starts (e.g. \"30s\", \"2m\" or seconds)")
	flags.StringVar(threshold, "t", "", "Idle time before jiggling starts (e.g. \"30s\", \"2m\" or seconds)")
	interval := flags.String("interval", "", "Time between jiggle moves (e.g. \"10s\" or seconds)")
	flags.StringVar(interval, "i", "", "Time between jiggle moves (e.g. \"10s\" or seconds)")
	logFile := flags.String("log", "jiggle.log", "Log file path")
	showVersion := flags.Bool("version", false, "Show version information")
	flags.BoolVar(showVersion, "v", false, "Show version information")

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		return nil, err
	}

	if *showVersion {
		fmt.Printf("jiggle version: %s\n", version)
		os.Exit(0)
	}

	settings, err := Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v, using defaults\n", err)
	}

	if *threshold != "" {
		d, err := util.ParseDuration(*threshold)
		if err != nil {
			return nil, err
		}
		settings.IdleThreshold.Duration = d
	}
	if *interval != "" {
		d, err := util.ParseDuration(*interval)
		if err != nil {
			return nil, err
		}
		settings.MoveInterval.Duration = d
	}
	settings.Clamp()

	return &Flags{
		Settings:    settings,
		ConfigPath:  *configPath,
		LogFile:     *logFile,
		ShowVersion: *showVersion,
	}, nil
}
