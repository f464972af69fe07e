// Package render maps field cells to display colors and draws PNG snapshots.
package render

import (
	"fmt"
	"image/color"

	"github.com/katalvlaran/flowfield/field"
	"github.com/katalvlaran/flowfield/grid"
)

// HighlightDim scales the channels of a hovered cell. Lower is darker.
const HighlightDim = 0.75

var (
	barrierColor   = color.RGBA{A: 0xff}
	sourceColor    = color.RGBA{R: 0xe6, G: 0x29, B: 0x37, A: 0xff}
	unlabeledColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	borderColor    = color.RGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xff}
)

// CellColor returns the fill color of a cell. Labeled open cells fade from
// white toward blue (Inactive) or green (Active) as the distance grows.
func CellColor(v field.CellView, highlighted bool) color.RGBA {
	var c color.RGBA
	switch {
	case v.Kind == grid.Barrier:
		c = barrierColor
	case v.Kind == grid.Source:
		c = sourceColor
	case !v.Labeled:
		c = unlabeledColor
	default:
		fade := channel(1 - 1/float64(v.Distance))
		if v.Kind == grid.Active {
			c = color.RGBA{R: fade, G: 0xff, B: fade, A: 0xff}
		} else {
			c = color.RGBA{R: fade, G: fade, B: 0xff, A: 0xff}
		}
	}
	if highlighted {
		c = Dim(c, HighlightDim)
	}

	return c
}

// Dim scales the color channels of c by k, keeping it opaque.
func Dim(c color.RGBA, k float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: 0xff,
	}
}

// Hex formats c as "#rrggbb".
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// TextColor picks black or white for legible text on background bg.
func TextColor(bg color.RGBA) color.RGBA {
	// Rec. 601 luma
	luma := 0.299*float64(bg.R) + 0.587*float64(bg.G) + 0.114*float64(bg.B)
	if luma < 128 {
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}

	return color.RGBA{A: 0xff}
}

// Label returns the text drawn inside a cell, or "" when there is none.
func Label(v field.CellView) string {
	if v.Kind == grid.Barrier || !v.Labeled {
		return ""
	}

	return fmt.Sprint(v.Distance)
}

func channel(f float64) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 0xff
	}

	return uint8(f * 0xff)
}
