// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Only flags set on the command line override config and environment

package main

import (
	"flag"
	"time"

	"github.com/mauromedda/kilo-go/internal/config"
)

type cliArgs struct {
	configPath   string
	mode         string
	rows         int
	quitKey      string
	marker       string
	banner       string
	nonBlocking  bool
	readTimeout  time.Duration
	pollInterval time.Duration
	logFile      string
	verbose      bool
	version      bool

	set map[string]bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.configPath, "config", "", "YAML config file (default $"+config.EnvConfig+")")
	flag.StringVar(&args.mode, "mode", config.ModeDisplay, "Loop mode: display or echo")
	flag.IntVar(&args.rows, "rows", 24, "Display rows; 0 uses the terminal height")
	flag.StringVar(&args.quitKey, "quit-key", "q", "Letter that quits together with Ctrl")
	flag.StringVar(&args.marker, "marker", "~", "Placeholder drawn at the start of each row")
	flag.StringVar(&args.banner, "banner", "", "Welcome text drawn a third of the way down")
	flag.BoolVar(&args.nonBlocking, "non-blocking", false, "Timeout-bounded reads instead of blocking reads")
	flag.DurationVar(&args.readTimeout, "read-timeout", 100*time.Millisecond, "Read timeout in non-blocking mode")
	flag.DurationVar(&args.pollInterval, "poll-interval", 10*time.Millisecond, "Wait after a would-block read")
	flag.StringVar(&args.logFile, "log-file", "", "Append log lines to this file")
	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()

	args.set = make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { args.set[f.Name] = true })
	return args
}

// apply overlays the explicitly set flags onto s.
func (a cliArgs) apply(s *config.Settings) {
	if a.set["mode"] {
		s.Mode = a.mode
	}
	if a.set["rows"] {
		s.Rows = a.rows
	}
	if a.set["quit-key"] {
		s.QuitKey = a.quitKey
	}
	if a.set["marker"] {
		s.RowMarker = a.marker
	}
	if a.set["banner"] {
		s.Banner = a.banner
	}
	if a.set["non-blocking"] {
		s.NonBlocking = a.nonBlocking
	}
	if a.set["read-timeout"] {
		s.ReadTimeout = a.readTimeout
	}
	if a.set["poll-interval"] {
		s.PollInterval = a.pollInterval
	}
	if a.set["log-file"] {
		s.LogFile = a.logFile
	}
	if a.set["verbose"] {
		s.Verbose = a.verbose
	}
}
