// Command flowfield is an interactive terminal editor for a distance field:
// mark barriers and sources on a grid and watch every reachable cell get
// labeled with its distance from the nearest source.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/flowfield/field"
	"github.com/katalvlaran/flowfield/internal/cli"
	"github.com/katalvlaran/flowfield/internal/render"
	"github.com/katalvlaran/flowfield/internal/tui"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	cfg, exit, err := cli.Parse(args, stdout)
	if err != nil || exit {
		return err
	}

	logOut := io.Discard
	if cfg.LogFile != "" {
		lf, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer lf.Close()
		logOut = lf
	}
	logger := cli.NewLogger(cfg, logOut)

	f, err := field.New(cfg.Rows, cfg.Columns, field.WithLogger(logger))
	if err != nil {
		return err
	}
	if cfg.Script != "" {
		if err = applyScript(f, cfg.Script); err != nil {
			return err
		}
	}

	if cfg.Headless() {
		if err = render.SavePNG(cfg.PNG, f, cfg.CellSize); err != nil {
			return err
		}
		logger.Info("png written", "path", cfg.PNG, "layers", f.LastResult().Layers)
		return nil
	}

	m := tui.New(f, logger, cfg.CellSize)
	m.Copy = clipboard.WriteAll
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err = p.Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	logger.Info("exited", "sources", len(f.Sources()))

	return nil
}

func applyScript(f *field.Field, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open script: %w", err)
	}
	defer file.Close()

	edits, err := field.ParseScript(file)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return f.ApplyAll(edits)
}
