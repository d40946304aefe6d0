// pkg/render/raster_surface.go
package render

import (
	"image"
	"image/color"

	"nested-polygons/pkg/geometry"

	"github.com/gogpu/gg"
)

// RasterSurface renders into an in-memory image with the gg software
// rasterizer. It needs no window, so it also serves headless checks.
type RasterSurface struct {
	dc *gg.Context
}

// NewRasterSurface allocates a width×height raster.
func NewRasterSurface(width, height int) *RasterSurface {
	if width <= 0 || height <= 0 {
		return &RasterSurface{}
	}
	return &RasterSurface{dc: gg.NewContext(width, height)}
}

// Image returns the rendered pixels, or nil for an unavailable surface.
func (s *RasterSurface) Image() image.Image {
	if s.dc == nil {
		return nil
	}
	return s.dc.Image()
}

// Close releases the rasterizer.
func (s *RasterSurface) Close() error {
	if s.dc == nil {
		return nil
	}
	return s.dc.Close()
}

func (s *RasterSurface) Clear(c color.RGBA) error {
	if s.dc == nil {
		return ErrSurfaceUnavailable
	}
	s.dc.ClearWithColor(gg.FromColor(c))
	return nil
}

func (s *RasterSurface) DrawPolygon(c color.RGBA, points []geometry.Point, strokeWidth float32) error {
	if s.dc == nil {
		return ErrSurfaceUnavailable
	}
	if len(points) == 0 {
		return nil
	}

	for i, p := range points {
		x, y := snap(p)
		if i == 0 {
			s.dc.MoveTo(float64(x), float64(y))
		} else {
			s.dc.LineTo(float64(x), float64(y))
		}
	}
	s.dc.ClosePath()
	s.dc.SetColor(c)

	if strokeWidth == Filled {
		return s.dc.Fill()
	}
	s.dc.SetLineWidth(float64(strokeWidth))
	return s.dc.Stroke()
}
