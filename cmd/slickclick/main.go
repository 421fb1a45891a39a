package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/GoblinRules/SlickClick/internal/config"
)

const (
	appName    = "SlickClick"
	appVersion = "1.2.3"
)

// newSlogLogger writes to stderr and, when a log file can be opened, to the
// per-launch log file as well. The file is truncated on every start so it
// only ever holds the current session.
func newSlogLogger(level slog.Level) (*slog.Logger, func()) {
	out := io.Writer(os.Stderr)
	cleanup := func() {}

	path := config.LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err == nil {
		if file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600); err == nil {
			out = io.MultiWriter(os.Stderr, file)
			cleanup = func() { _ = file.Close() }
		}
	}

	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: level,
	}))
	return logger, cleanup
}

func parseLogLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warning", "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid --log-level %q (expected debug|info|warning|error)", value)
	}
}

func run(args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet("slickclick", flag.ContinueOnError)
	flags.SetOutput(stderr)

	var logLevelRaw string
	flags.StringVar(&logLevelRaw, "log-level", "info", "Log verbosity. Allowed: debug, info, warning, error.")

	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
		return 2
	}

	level, err := parseLogLevel(logLevelRaw)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	logger, closeLog := newSlogLogger(level)
	defer closeLog()

	logger.Info("Starting", "app", appName, "version", appVersion)
	if err := runUI(logger); err != nil {
		logger.Error("Fatal error", "err", err)
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}
