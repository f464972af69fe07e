package cli_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowfield/internal/cli"
)

func TestParse_Defaults(t *testing.T) {
	cfg, exit, err := cli.Parse(nil, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, exit)
	require.Equal(t, &cli.Config{
		Rows: 10, Columns: 10, CellSize: 30, LogLevel: "info", LogFormat: "text",
	}, cfg)
	require.False(t, cfg.Headless())
}

func TestParse_Flags(t *testing.T) {
	cfg, _, err := cli.Parse([]string{
		"-rows", "4", "-cols", "7", "-script", "edits.txt", "-png", "out.png",
		"-log-level", "DEBUG", "-log-format", "json",
	}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Rows)
	require.Equal(t, 7, cfg.Columns)
	require.Equal(t, "edits.txt", cfg.Script)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, slog.LevelDebug, cfg.Level)
	require.Equal(t, "json", cfg.LogFormat)
	require.True(t, cfg.Headless())
}

func TestParse_Help(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := cli.Parse([]string{"-h"}, &out)
	require.NoError(t, err)
	require.True(t, exit)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "toggle source")
}

func TestParse_Errors(t *testing.T) {
	cases := map[string][]string{
		"UnknownFlag": {"-nope"},
		"ZeroRows":    {"-rows", "0"},
		"SmallCell":   {"-cell-size", "2"},
		"BadFormat":   {"-log-format", "xml"},
		"BadLevel":    {"-log-level", "loud"},
		"Positional":  {"extra"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := cli.Parse(args, &bytes.Buffer{})
			var exitErr *cli.ExitError
			require.ErrorAs(t, err, &exitErr)
			require.Equal(t, 2, exitErr.Code)
		})
	}
}

func TestNewLogger(t *testing.T) {
	cfg, _, err := cli.Parse([]string{"-log-level", "warn", "-log-format", "json"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, slog.LevelWarn, cfg.Level)

	var buf bytes.Buffer
	logger := cli.NewLogger(cfg, &buf)
	require.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	logger.Warn("hello", "k", 1)
	require.Contains(t, buf.String(), `"msg":"hello"`)

	cfg, _, err = cli.Parse(nil, &bytes.Buffer{})
	require.NoError(t, err)
	buf.Reset()
	logger = cli.NewLogger(cfg, &buf)
	require.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
	logger.Info("plain")
	require.Contains(t, buf.String(), "msg=plain")
}
