// ABOUTME: CLI entry point for kilo with terminal crash recovery
// ABOUTME: Parses flags, loads config, runs one raw-mode session, maps the result to an exit code

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mauromedda/kilo-go/internal/app"
	"github.com/mauromedda/kilo-go/internal/config"
	"github.com/mauromedda/kilo-go/internal/log"
	"github.com/mauromedda/kilo-go/pkg/tui/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("kilo %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	os.Exit(run(args))
}

// run performs the full initialization sequence and the session. Every
// deferred cleanup has run by the time it returns the exit status.
func run(args cliArgs) int {
	path := args.configPath
	if path == "" {
		path = os.Getenv(config.EnvConfig)
	}
	s, err := config.Load(path, args.apply)
	if err != nil {
		fmt.Fprintf(os.Stderr, "kilo: loading config: %v\n", err)
		return 1
	}

	if s.Verbose {
		log.SetLevel(log.LevelDebug)
	}
	if s.LogFile != "" {
		f, err := log.OpenFile(s.LogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "kilo: %v\n", err)
			return 1
		}
		defer f.Close()
	}

	// Reads wake up periodically, so a termination signal unwinds
	// through the restore path instead of killing the process raw.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	a := app.New(terminal.NewProcessTerminal(), s)
	defer terminal.RestoreOnPanic(a.Controller(), os.Stderr)

	err = a.Run(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, app.Diagnostic(err))
	}
	log.Info("exit status %d", app.ExitCode(err))
	return app.ExitCode(err)
}
