// internal/state/state.go
package state

import (
	"nested-polygons/internal/config"
	"nested-polygons/pkg/render"
)

// Mode — режим отрисовки многоугольников
type Mode int

const (
	Outline Mode = iota // только контур
	Filled              // сплошная заливка
)

func (m Mode) String() string {
	switch m {
	case Outline:
		return "outline"
	case Filled:
		return "filled"
	default:
		return "unknown"
	}
}

// Toggle — единственный переход: OUTLINE <-> FILLED
func (m Mode) Toggle() Mode {
	if m == Filled {
		return Outline
	}
	return Filled
}

// StrokeWidth возвращает толщину линии для поверхности; 0 означает заливку
func (m Mode) StrokeWidth() float32 {
	if m == Filled {
		return render.Filled
	}
	return float32(config.StrokeWidth)
}

// RenderState — состояние, переживающее перерисовки.
// Курсор цвета не сбрасывается между кадрами.
type RenderState struct {
	Mode   Mode
	Cursor *render.ColorCursor
}

// NewRenderState создаёт состояние в режиме контура с курсором перед первым цветом
func NewRenderState() *RenderState {
	return &RenderState{
		Mode:   Outline,
		Cursor: render.NewColorCursor(config.Palette),
	}
}

// Toggle переключает режим заливки
func (s *RenderState) Toggle() {
	s.Mode = s.Mode.Toggle()
}
