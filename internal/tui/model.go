// Package tui is the interactive terminal front end: it turns key presses and
// mouse clicks into field edits and draws the labeled grid.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/flowfield/field"
	"github.com/katalvlaran/flowfield/grid"
	"github.com/katalvlaran/flowfield/internal/render"
)

const (
	// cellWidth is the number of terminal columns per grid cell.
	cellWidth = 4
	// headerLines precede the grid in View; mouse rows are offset by it.
	headerLines = 2
)

// Model is the bubbletea model wrapping a field.
type Model struct {
	field   *field.Field
	cursor  grid.Coord
	overlay Overlay
	status  string
	log     *slog.Logger

	// Copy places text on the system clipboard.
	Copy func(text string) error
	// Export writes a PNG snapshot of the field to path.
	Export func(path string, f *field.Field) error
	// ExportPath is where Export writes.
	ExportPath string
}

// New returns a model over f with the cursor at the origin. Exported PNG
// snapshots use cellSize pixels per cell.
func New(f *field.Field, logger *slog.Logger, cellSize int) Model {
	m := Model{
		field:      f,
		overlay:    Overlay{},
		log:        logger,
		Copy:       func(string) error { return nil },
		Export:     func(path string, f *field.Field) error { return render.SavePNG(path, f, cellSize) },
		ExportPath: "flowfield.png",
	}
	m.overlay.Hover(m.cursor)

	return m
}

// Cursor returns the highlighted coordinate.
func (m Model) Cursor() grid.Coord {
	return m.cursor
}

// Status returns the last status line message.
func (m Model) Status() string {
	return m.status
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		m.moveCursor(-1, 0)
	case "right", "l":
		m.moveCursor(1, 0)
	case "up", "k":
		m.moveCursor(0, -1)
	case "down", "j":
		m.moveCursor(0, 1)
	case "s", " ":
		m.edit(field.OpToggleSource, m.cursor)
	case "b", "enter":
		m.edit(field.OpToggleBarrier, m.cursor)
	case "a":
		m.toggleActive()
	case "r":
		m.field.Reset()
		m.status = "reset"
	case "y":
		if err := m.Copy(m.field.String()); err != nil {
			m.fail("copy", err)
		} else {
			m.status = "copied labels to clipboard"
		}
	case "p":
		if err := m.Export(m.ExportPath, m.field); err != nil {
			m.fail("export", err)
		} else {
			m.status = "exported " + m.ExportPath
		}
	}

	return m, nil
}

// handleMouse maps terminal cells to grid cells: hover moves the highlight,
// a left press toggles a barrier and a right press toggles a source.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	c := grid.Coord{X: msg.X / cellWidth, Y: msg.Y - headerLines}
	if !m.field.InBounds(c) {
		return m
	}
	m.cursor = c
	m.overlay.Hover(c)
	if msg.Action != tea.MouseActionPress {
		return m
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		m.edit(field.OpToggleBarrier, c)
	case tea.MouseButtonRight:
		m.edit(field.OpToggleSource, c)
	}

	return m
}

func (m *Model) moveCursor(dx, dy int) {
	next := grid.Coord{X: m.cursor.X + dx, Y: m.cursor.Y + dy}
	if !m.field.InBounds(next) {
		return
	}
	m.cursor = next
	m.overlay.Hover(next)
}

func (m *Model) edit(op field.EditOp, c grid.Coord) {
	if err := m.field.Apply(field.Edit{Op: op, At: c}); err != nil {
		m.fail(op.String(), err)
		return
	}
	res := m.field.LastResult()
	m.status = fmt.Sprintf("%s (%d,%d): %d labeled, %d unreachable", op, c.X, c.Y, res.Labeled, res.Unreachable)
}

func (m *Model) toggleActive() {
	cell, err := m.field.Cell(m.cursor)
	if err != nil {
		m.fail("active", err)
		return
	}
	on := cell.Kind != grid.Active
	if err = m.field.SetActive(m.cursor, on); err != nil {
		m.fail("active", err)
		return
	}
	m.status = fmt.Sprintf("active (%d,%d): %t", m.cursor.X, m.cursor.Y, on)
}

func (m *Model) fail(what string, err error) {
	m.log.Warn("action failed", "action", what, "error", err)
	m.status = what + ": " + err.Error()
}

// View implements tea.Model.
func (m Model) View() string {
	rows, cols := m.field.Dims()
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("flowfield  s:source  b:barrier  a:active  r:reset  y:copy  p:png  q:quit"))
	sb.WriteByte('\n')
	sb.WriteString(fmt.Sprintf("cursor (%d,%d)  sources %d  layers %d\n",
		m.cursor.X, m.cursor.Y, len(m.field.Sources()), m.field.LastResult().Layers))

	snap := m.field.Snapshot()
	for y := 0; y < rows; y++ {
		cells := make([]string, 0, cols)
		for _, v := range snap[y*cols : (y+1)*cols] {
			cells = append(cells, cellView(v, m.overlay.Highlighted(v.At)))
		}
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		sb.WriteByte('\n')
	}
	sb.WriteString(statusStyle.Render(m.status))

	return sb.String()
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Faint(true)
)

func cellView(v field.CellView, highlighted bool) string {
	bg := render.CellColor(v, highlighted)
	text := render.Label(v)
	if v.Kind == grid.Source {
		text = "S"
	}

	return lipgloss.NewStyle().
		Width(cellWidth).
		Align(lipgloss.Right).
		Background(lipgloss.Color(render.Hex(bg))).
		Foreground(lipgloss.Color(render.Hex(render.TextColor(bg)))).
		Render(text)
}
