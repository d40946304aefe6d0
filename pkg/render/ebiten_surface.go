// pkg/render/ebiten_surface.go
package render

import (
	"image/color"

	"nested-polygons/pkg/geometry"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface draws polygons into an ebiten image.
// Vertex and index buffers are reused between calls.
type EbitenSurface struct {
	target   *ebiten.Image
	whiteImg *ebiten.Image
	vs       []ebiten.Vertex
	is       []uint16
}

// NewEbitenSurface wraps target. A nil target yields a surface that reports
// ErrSurfaceUnavailable on every call.
func NewEbitenSurface(target *ebiten.Image) *EbitenSurface {
	s := &EbitenSurface{
		target: target,
		vs:     make([]ebiten.Vertex, 0, 128),
		is:     make([]uint16, 0, 192),
	}
	if target != nil {
		s.whiteImg = ebiten.NewImage(1, 1)
		s.whiteImg.Fill(color.White)
	}
	return s
}

// Image returns the image the surface draws into.
func (s *EbitenSurface) Image() *ebiten.Image {
	return s.target
}

func (s *EbitenSurface) Clear(c color.RGBA) error {
	if s.target == nil {
		return ErrSurfaceUnavailable
	}
	s.target.Fill(c)
	return nil
}

func (s *EbitenSurface) DrawPolygon(c color.RGBA, points []geometry.Point, strokeWidth float32) error {
	if s.target == nil {
		return ErrSurfaceUnavailable
	}
	if len(points) == 0 {
		return nil
	}

	path := vector.Path{}
	for i, p := range points {
		x, y := snap(p)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()

	if strokeWidth == Filled {
		s.vs, s.is = path.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	} else {
		s.vs, s.is = path.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], &vector.StrokeOptions{
			Width:      strokeWidth,
			LineJoin:   vector.LineJoinMiter,
			MiterLimit: 10,
		})
	}
	for i := range s.vs {
		s.vs[i].ColorR = float32(c.R) / 255
		s.vs[i].ColorG = float32(c.G) / 255
		s.vs[i].ColorB = float32(c.B) / 255
		s.vs[i].ColorA = float32(c.A) / 255
	}
	s.target.DrawTriangles(s.vs, s.is, s.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
	return nil
}
