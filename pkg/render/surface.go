// pkg/render/surface.go
package render

import (
	"errors"
	"image/color"
	"math"

	"nested-polygons/pkg/geometry"
)

// Filled is the stroke width that asks a Surface to fill the polygon instead of outlining it.
const Filled float32 = 0

// ErrSurfaceUnavailable is returned when a surface has nothing to draw on.
var ErrSurfaceUnavailable = errors.New("drawing surface unavailable")

// Surface is the drawing primitive polygons are submitted to.
type Surface interface {
	// Clear fills the whole surface with c.
	Clear(c color.RGBA) error
	// DrawPolygon draws the closed polygon through points. A strokeWidth of
	// Filled paints the interior; a positive width strokes the edges only.
	DrawPolygon(c color.RGBA, points []geometry.Point, strokeWidth float32) error
}

// snap rounds a real-valued point to the nearest pixel.
func snap(p geometry.Point) (float32, float32) {
	return float32(math.Round(p.X)), float32(math.Round(p.Y))
}
