// internal/scene/scene.go
package scene

import (
	"fmt"
	"image/color"
	"math"
	"unicode"

	"nested-polygons/internal/config"
	"nested-polygons/internal/state"
	"nested-polygons/pkg/geometry"
	"nested-polygons/pkg/render"
)

// ToggleKey — клавиша переключения заливки
const ToggleKey = ' '

// Scene рисует вложенные правильные многоугольники с общим центром
// и обрабатывает клавишу переключения режима.
type Scene struct {
	MaxSides   int
	SideLength float64
	Center     geometry.Point
	Background color.RGBA

	state *state.RenderState
}

// NewScene создаёт сцену с параметрами из config
func NewScene(st *state.RenderState) *Scene {
	return &Scene{
		MaxSides:   config.MaxPolygons,
		SideLength: config.SideLength,
		Center:     geometry.Point{X: config.ScreenWidth / 2, Y: config.ScreenHeight / 2},
		Background: config.BackgroundColor,
		state:      st,
	}
}

// State возвращает состояние отрисовки сцены
func (s *Scene) State() *state.RenderState {
	return s.state
}

// OffsetAngle — поворот многоугольника с n сторонами: пол-внешнего угла плюс четверть оборота
func OffsetAngle(n int) float64 {
	return math.Pi/float64(n) + math.Pi/2
}

// Render очищает поверхность и рисует многоугольники от MaxSides-1 до 3 сторон:
// сначала самый большой, меньшие ложатся поверх.
func (s *Scene) Render(surface render.Surface, st *state.RenderState) error {
	if err := surface.Clear(s.Background); err != nil {
		return fmt.Errorf("clear surface: %w", err)
	}

	width := st.Mode.StrokeWidth()
	for n := s.MaxSides - 1; n >= geometry.MinSides; n-- {
		points, err := geometry.Generate(n, s.SideLength, OffsetAngle(n), s.Center)
		if err != nil {
			return fmt.Errorf("polygon with %d sides: %w", n, err)
		}
		// Цвет не привязан к n: курсор просто сдвигается на каждый многоугольник
		if err := surface.DrawPolygon(st.Cursor.Next(), points, width); err != nil {
			return fmt.Errorf("draw polygon with %d sides: %w", n, err)
		}
	}
	return nil
}

// OnRedrawRequested перерисовывает сцену с её собственным состоянием
func (s *Scene) OnRedrawRequested(surface render.Surface) error {
	return s.Render(surface, s.state)
}

// OnKeyEvent переключает режим по пробелу и просит одну перерисовку.
// Остальные символы игнорируются.
func (s *Scene) OnKeyEvent(r rune) bool {
	if unicode.ToLower(r) != ToggleKey {
		return false
	}
	s.state.Toggle()
	return true
}
