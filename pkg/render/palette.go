// pkg/render/palette.go
package render

import "image/color"

// PaletteSize is the number of hues in Rainbow.
const PaletteSize = 12

// Rainbow holds twelve fully saturated hues spanning the visible spectrum.
var Rainbow = [PaletteSize]color.RGBA{
	{255, 0, 0, 255},   // red
	{255, 128, 0, 255}, // orange
	{255, 255, 0, 255}, // yellow
	{128, 255, 0, 255}, // chartreuse
	{0, 255, 0, 255},   // green
	{0, 255, 128, 255}, // spring green
	{0, 255, 255, 255}, // cyan
	{0, 128, 255, 255}, // azure
	{0, 0, 255, 255},   // blue
	{128, 0, 255, 255}, // violet
	{255, 0, 255, 255}, // magenta
	{255, 0, 128, 255}, // rose
}

// ColorCursor walks a palette one color per call, wrapping at the end.
// A new cursor sits before the first color.
type ColorCursor struct {
	palette [PaletteSize]color.RGBA
	index   int
}

// NewColorCursor returns a cursor over palette positioned before its first entry.
func NewColorCursor(palette [PaletteSize]color.RGBA) *ColorCursor {
	return &ColorCursor{palette: palette, index: -1}
}

// Next advances the cursor and returns the color it lands on.
func (c *ColorCursor) Next() color.RGBA {
	c.index++
	if c.index >= len(c.palette) {
		c.index = 0
	}
	return c.palette[c.index]
}

// Index reports the position of the last color returned, or -1 before the first call.
func (c *ColorCursor) Index() int {
	return c.index
}
