package field

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/flowfield/grid"
)

// ParseEdit parses "source X,Y" or "barrier X,Y" (also "s X,Y" / "b X,Y").
// Bounds are not checked here; Apply does that against the actual grid.
func ParseEdit(s string) (Edit, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Edit{}, fmt.Errorf("%w: %q: want \"<op> X,Y\"", ErrParseEdit, s)
	}

	var op EditOp
	switch strings.ToLower(fields[0]) {
	case "source", "s":
		op = OpToggleSource
	case "barrier", "b":
		op = OpToggleBarrier
	default:
		return Edit{}, fmt.Errorf("%w: %q: unknown op %q", ErrParseEdit, s, fields[0])
	}

	xs, ys, ok := strings.Cut(fields[1], ",")
	if !ok {
		return Edit{}, fmt.Errorf("%w: %q: coordinate must be X,Y", ErrParseEdit, s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return Edit{}, fmt.Errorf("%w: %q: coordinate must be two integers", ErrParseEdit, s)
	}

	return Edit{Op: op, At: grid.Coord{X: x, Y: y}}, nil
}

// ParseScript reads one edit per line. Blank lines and lines starting with
// '#' are skipped. Errors carry the 1-based line number.
func ParseScript(r io.Reader) ([]Edit, error) {
	var edits []Edit
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		e, err := ParseEdit(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		edits = append(edits, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("field: read script: %w", err)
	}

	return edits, nil
}
