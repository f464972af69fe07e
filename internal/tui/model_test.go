package tui_test

import (
	"errors"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowfield/field"
	"github.com/katalvlaran/flowfield/grid"
	"github.com/katalvlaran/flowfield/internal/tui"
)

func newModel(t *testing.T) (tui.Model, *field.Field) {
	t.Helper()
	f, err := field.New(3, 4)
	require.NoError(t, err)
	return tui.New(f, slog.New(slog.NewTextHandler(io.Discard, nil)), 10), f
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m tui.Model, msgs ...tea.Msg) tui.Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(tui.Model)
	}
	return m
}

func TestCursorMovementStaysInBounds(t *testing.T) {
	m, _ := newModel(t)
	m = send(m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, grid.Coord{}, m.Cursor())

	m = send(m, runes("l"), runes("l"), runes("j"), tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, grid.Coord{X: 3, Y: 1}, m.Cursor())

	m = send(m, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, grid.Coord{X: 3, Y: 1}, m.Cursor())
}

func TestKeyEdits(t *testing.T) {
	m, f := newModel(t)
	m = send(m, runes("s"))
	require.Equal(t, []grid.Coord{{X: 0, Y: 0}}, f.Sources())
	require.Contains(t, m.Status(), "12 labeled")

	m = send(m, runes("l"), runes("b"))
	cell, _ := f.Cell(grid.Coord{X: 1, Y: 0})
	require.Equal(t, grid.Barrier, cell.Kind)

	m = send(m, runes("j"), runes("a"))
	cell, _ = f.Cell(grid.Coord{X: 1, Y: 1})
	require.Equal(t, grid.Active, cell.Kind)

	m = send(m, runes("a"))
	cell, _ = f.Cell(grid.Coord{X: 1, Y: 1})
	require.Equal(t, grid.Inactive, cell.Kind)

	m = send(m, runes("k"), runes("a"))
	require.Contains(t, m.Status(), "not allowed")

	send(m, runes("r"))
	require.Empty(t, f.Sources())
	require.Zero(t, f.LastResult().Labeled)
}

func TestMouse(t *testing.T) {
	m, f := newModel(t)
	// Column 5 is inside cell 1 (4 columns per cell); row 3 is grid row 1.
	m = send(m, tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionMotion})
	require.Equal(t, grid.Coord{X: 1, Y: 1}, m.Cursor())
	require.Empty(t, f.Sources())

	m = send(m, tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	require.Equal(t, []grid.Coord{{X: 1, Y: 1}}, f.Sources())

	m = send(m, tea.MouseMsg{X: 0, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	cell, _ := f.Cell(grid.Coord{X: 0, Y: 0})
	require.Equal(t, grid.Barrier, cell.Kind)

	// Outside the grid: ignored.
	m = send(m, tea.MouseMsg{X: 40, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.Equal(t, grid.Coord{X: 0, Y: 0}, m.Cursor())
}

func TestCopyAndExport(t *testing.T) {
	m, _ := newModel(t)
	var copied, exported string
	m.Copy = func(text string) error { copied = text; return nil }
	m.Export = func(path string, _ *field.Field) error { exported = path; return nil }
	m.ExportPath = "out.png"

	m = send(m, runes("s"), runes("y"), runes("p"))
	require.True(t, strings.HasPrefix(copied, "S 2 3 4"), copied)
	require.Equal(t, "out.png", exported)
	require.Equal(t, "exported out.png", m.Status())

	m.Copy = func(string) error { return errors.New("no clipboard") }
	m = send(m, runes("y"))
	require.Equal(t, "copy: no clipboard", m.Status())
}

func TestExportUsesCellSize(t *testing.T) {
	m, _ := newModel(t)
	m.ExportPath = filepath.Join(t.TempDir(), "field.png")
	m = send(m, runes("p"))
	require.Equal(t, "exported "+m.ExportPath, m.Status())

	file, err := os.Open(m.ExportPath)
	require.NoError(t, err)
	defer file.Close()
	cfg, err := png.DecodeConfig(file)
	require.NoError(t, err)
	require.Equal(t, 4*10, cfg.Width)
	require.Equal(t, 3*10, cfg.Height)
}

func TestQuit(t *testing.T) {
	m, _ := newModel(t)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView(t *testing.T) {
	m, _ := newModel(t)
	m = send(m, runes("s"))
	out := m.View()
	require.Contains(t, out, "cursor (0,0)")
	require.Contains(t, out, "sources 1")
	require.Contains(t, out, "layers 6")
}
