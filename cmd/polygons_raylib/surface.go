package main

import (
	"image/color"
	"math"

	"nested-polygons/pkg/geometry"
	"nested-polygons/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// raylibSurface рисует в текущую цель raylib: окно между BeginDrawing/EndDrawing
// или текстуру между BeginTextureMode/EndTextureMode.
type raylibSurface struct {
	buf []rl.Vector2
}

func newRaylibSurface() *raylibSurface {
	return &raylibSurface{buf: make([]rl.Vector2, 0, 64)}
}

func (s *raylibSurface) Clear(c color.RGBA) error {
	if !rl.IsWindowReady() {
		return render.ErrSurfaceUnavailable
	}
	rl.ClearBackground(c)
	return nil
}

func (s *raylibSurface) DrawPolygon(c color.RGBA, points []geometry.Point, strokeWidth float32) error {
	if !rl.IsWindowReady() {
		return render.ErrSurfaceUnavailable
	}
	if len(points) == 0 {
		return nil
	}

	s.buf = s.buf[:0]
	for _, p := range points {
		s.buf = append(s.buf, rl.NewVector2(float32(math.Round(p.X)), float32(math.Round(p.Y))))
	}

	if strokeWidth == render.Filled {
		// Вершины идут по часовой стрелке на экране, а DrawTriangle ждёт
		// обход против часовой, поэтому веер строим в обратном порядке.
		first := s.buf[0]
		for i := len(s.buf) - 1; i > 1; i-- {
			rl.DrawTriangle(first, s.buf[i], s.buf[i-1], c)
		}
		return nil
	}

	for i := range s.buf {
		next := s.buf[(i+1)%len(s.buf)]
		rl.DrawLineEx(s.buf[i], next, strokeWidth, c)
	}
	return nil
}
