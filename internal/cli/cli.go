// Package cli parses flowfield's command line into a Config.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ExitError carries the process exit code for a failed parse.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config holds the settings flowfield starts with.
type Config struct {
	Rows      int
	Columns   int
	Script    string
	PNG       string
	CellSize  int
	LogFile   string
	LogLevel  string
	LogFormat string

	// Level is LogLevel parsed by Parse.
	Level slog.Level
}

// Headless reports whether the run renders a PNG and exits without a UI.
func (c *Config) Headless() bool {
	return c.PNG != ""
}

// Parse processes command-line arguments. It returns the Config, whether the
// program should exit cleanly (help requested), or an *ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("flowfield", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
flowfield - label a grid with distances from source cells.

Usage:
  flowfield [options]

Keys:
  arrows/hjkl move   s toggle source   b toggle barrier   a toggle active
  r reset   y copy labels   p export PNG   q quit
  left click toggles a barrier, right click toggles a source

Options:
`)
		flagSet.PrintDefaults()
	}

	cfg := &Config{}
	flagSet.IntVar(&cfg.Rows, "rows", 10, "Number of grid rows.")
	flagSet.IntVar(&cfg.Columns, "cols", 10, "Number of grid columns.")
	flagSet.StringVar(&cfg.Script, "script", "", "Edit script applied at start-up (one \"source X,Y\" or \"barrier X,Y\" per line).")
	flagSet.StringVar(&cfg.PNG, "png", "", "Render the field to this PNG file and exit.")
	flagSet.IntVar(&cfg.CellSize, "cell-size", 30, "PNG cell size in pixels.")
	flagSet.StringVar(&cfg.LogFile, "log-file", "", "Write logs to this file. Logs are discarded when empty.")
	flagSet.StringVar(&cfg.LogLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flagSet.StringVar(&cfg.LogFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %v", flagSet.Args())}
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if err := cfg.validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return cfg, false, nil
}

func (c *Config) validate() error {
	if c.Rows < 1 || c.Columns < 1 {
		return fmt.Errorf("invalid grid size %dx%d: rows and cols must be at least 1", c.Rows, c.Columns)
	}
	if c.CellSize < 8 {
		return fmt.Errorf("invalid cell size %d: must be at least 8", c.CellSize)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q: use 'text' or 'json'", c.LogFormat)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		_ = c.Level.UnmarshalText([]byte(c.LogLevel))
	default:
		return fmt.Errorf("invalid log level %q: use 'debug', 'info', 'warn' or 'error'", c.LogLevel)
	}

	return nil
}
