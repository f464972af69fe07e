package render

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/katalvlaran/flowfield/field"
)

// ErrCellSize indicates a PNG cell size below MinCellSize.
var ErrCellSize = errors.New("render: cell size too small")

// MinCellSize is the smallest cell edge, in pixels, that still fits a label.
const MinCellSize = 8

// Image draws the field as a grid of cellSize×cellSize squares with a 1px
// border and the distance label centered in each labeled cell.
func Image(f *field.Field, cellSize int) (image.Image, error) {
	dc, err := draw(f, cellSize)
	if err != nil {
		return nil, err
	}

	return dc.Image(), nil
}

// WritePNG encodes the rendered field as PNG to w.
func WritePNG(w io.Writer, f *field.Field, cellSize int) error {
	dc, err := draw(f, cellSize)
	if err != nil {
		return err
	}

	return dc.EncodePNG(w)
}

// SavePNG renders the field and writes it to path.
func SavePNG(path string, f *field.Field, cellSize int) error {
	dc, err := draw(f, cellSize)
	if err != nil {
		return err
	}
	if err = dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}

	return nil
}

func draw(f *field.Field, cellSize int) (*gg.Context, error) {
	if cellSize < MinCellSize {
		return nil, fmt.Errorf("%w: %d (min %d)", ErrCellSize, cellSize, MinCellSize)
	}
	face, err := labelFace(float64(cellSize) / 2)
	if err != nil {
		return nil, err
	}

	rows, cols := f.Dims()
	dc := gg.NewContext(cols*cellSize, rows*cellSize)
	dc.SetColor(unlabeledColor)
	dc.Clear()
	dc.SetFontFace(face)
	dc.SetLineWidth(1)

	s := float64(cellSize)
	for _, v := range f.Snapshot() {
		x, y := float64(v.At.X)*s, float64(v.At.Y)*s
		bg := CellColor(v, false)

		dc.DrawRectangle(x, y, s, s)
		dc.SetColor(bg)
		dc.Fill()

		dc.DrawRectangle(x+0.5, y+0.5, s-1, s-1)
		dc.SetColor(borderColor)
		dc.Stroke()

		if text := Label(v); text != "" {
			dc.SetColor(TextColor(bg))
			dc.DrawStringAnchored(text, x+s/2, y+s/2, 0.5, 0.5)
		}
	}

	return dc, nil
}

// labelFace loads the Go Mono face at the given point size.
func labelFace(size float64) (font.Face, error) {
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("render: parse font: %w", err)
	}

	return truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
