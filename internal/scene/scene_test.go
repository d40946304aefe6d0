package scene

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"nested-polygons/internal/config"
	"nested-polygons/internal/state"
	"nested-polygons/pkg/geometry"
	"nested-polygons/pkg/render"
)

type drawCall struct {
	color  color.RGBA
	points []geometry.Point
	width  float32
}

// recordingSurface запоминает все вызовы вместо отрисовки
type recordingSurface struct {
	clears []color.RGBA
	draws  []drawCall
}

func (r *recordingSurface) Clear(c color.RGBA) error {
	r.clears = append(r.clears, c)
	return nil
}

func (r *recordingSurface) DrawPolygon(c color.RGBA, points []geometry.Point, strokeWidth float32) error {
	r.draws = append(r.draws, drawCall{color: c, points: points, width: strokeWidth})
	return nil
}

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestRenderDrawsLargestFirst(t *testing.T) {
	st := state.NewRenderState()
	sc := NewScene(st)
	surface := &recordingSurface{}

	if err := sc.Render(surface, st); err != nil {
		t.Fatal(err)
	}

	if len(surface.clears) != 1 || surface.clears[0] != config.BackgroundColor {
		t.Fatalf("clears = %v, want one clear with %v", surface.clears, config.BackgroundColor)
	}
	if len(surface.draws) != 32 {
		t.Fatalf("drew %d polygons, want 32", len(surface.draws))
	}
	for i, d := range surface.draws {
		want := 34 - i
		if len(d.points) != want {
			t.Errorf("draw %d has %d vertices, want %d", i, len(d.points), want)
		}
	}
}

func TestRenderGeometry(t *testing.T) {
	st := state.NewRenderState()
	sc := NewScene(st)
	surface := &recordingSurface{}
	if err := sc.Render(surface, st); err != nil {
		t.Fatal(err)
	}

	center := geometry.Point{X: 700, Y: 375}
	for _, d := range surface.draws {
		n := len(d.points)
		want, err := geometry.Generate(n, config.SideLength, math.Pi/float64(n)+math.Pi/2, center)
		if err != nil {
			t.Fatal(err)
		}
		for i := range want {
			if !approxEqual(d.points[i].X, want[i].X, 1e-9) || !approxEqual(d.points[i].Y, want[i].Y, 1e-9) {
				t.Errorf("n=%d vertex %d = %v, want %v", n, i, d.points[i], want[i])
			}
		}
	}
}

func TestRenderStrokeWidthFollowsMode(t *testing.T) {
	tests := []struct {
		name string
		mode state.Mode
		want float32
	}{
		{"outline", state.Outline, float32(config.StrokeWidth)},
		{"filled", state.Filled, render.Filled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := state.NewRenderState()
			st.Mode = tt.mode
			surface := &recordingSurface{}
			if err := NewScene(st).Render(surface, st); err != nil {
				t.Fatal(err)
			}
			for i, d := range surface.draws {
				if d.width != tt.want {
					t.Errorf("draw %d width = %v, want %v", i, d.width, tt.want)
				}
			}
		})
	}
}

func TestRenderColorsContinueAcrossRedraws(t *testing.T) {
	st := state.NewRenderState()
	sc := NewScene(st)
	surface := &recordingSurface{}

	for i := 0; i < 2; i++ {
		if err := sc.Render(surface, st); err != nil {
			t.Fatal(err)
		}
	}
	if len(surface.draws) != 64 {
		t.Fatalf("drew %d polygons over two passes, want 64", len(surface.draws))
	}
	for i, d := range surface.draws {
		if want := render.Rainbow[i%render.PaletteSize]; d.color != want {
			t.Errorf("draw %d color = %v, want %v", i, d.color, want)
		}
	}
	// Второй проход начинается не с красного: 32 % 12 = 8
	if surface.draws[32].color != render.Rainbow[8] {
		t.Errorf("second pass starts with %v, want %v", surface.draws[32].color, render.Rainbow[8])
	}
}

func TestRenderSmallMaxSides(t *testing.T) {
	st := state.NewRenderState()
	sc := NewScene(st)
	surface := &recordingSurface{}

	sc.MaxSides = 3
	if err := sc.Render(surface, st); err != nil {
		t.Fatal(err)
	}
	if len(surface.draws) != 0 {
		t.Errorf("MaxSides=3 drew %d polygons, want 0", len(surface.draws))
	}

	sc.MaxSides = 4
	if err := sc.Render(surface, st); err != nil {
		t.Fatal(err)
	}
	if len(surface.draws) != 1 || len(surface.draws[0].points) != 3 {
		t.Errorf("MaxSides=4 should draw a single triangle, got %d draws", len(surface.draws))
	}
}

func TestRenderUnavailableSurface(t *testing.T) {
	st := state.NewRenderState()
	err := NewScene(st).Render(render.NewRasterSurface(0, 0), st)
	if !errors.Is(err, render.ErrSurfaceUnavailable) {
		t.Errorf("Render() error = %v, want ErrSurfaceUnavailable", err)
	}
}

func TestOnKeyEvent(t *testing.T) {
	tests := []struct {
		name   string
		key    rune
		redraw bool
	}{
		{"space toggles", ' ', true},
		{"letter ignored", 'f', false},
		{"upper letter ignored", 'F', false},
		{"digit ignored", '1', false},
		{"tab ignored", '\t', false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := state.NewRenderState()
			sc := NewScene(st)
			if got := sc.OnKeyEvent(tt.key); got != tt.redraw {
				t.Errorf("OnKeyEvent(%q) = %v, want %v", tt.key, got, tt.redraw)
			}
			wantMode := state.Outline
			if tt.redraw {
				wantMode = state.Filled
			}
			if st.Mode != wantMode {
				t.Errorf("Mode after %q = %v, want %v", tt.key, st.Mode, wantMode)
			}
		})
	}
}

func TestOnKeyEventTwiceRestoresMode(t *testing.T) {
	st := state.NewRenderState()
	sc := NewScene(st)
	sc.OnKeyEvent(' ')
	sc.OnKeyEvent(' ')
	if st.Mode != state.Outline {
		t.Errorf("Mode after two toggles = %v, want %v", st.Mode, state.Outline)
	}
}

func TestOnRedrawRequestedUsesSceneState(t *testing.T) {
	st := state.NewRenderState()
	sc := NewScene(st)
	sc.OnKeyEvent(' ')

	surface := &recordingSurface{}
	if err := sc.OnRedrawRequested(surface); err != nil {
		t.Fatal(err)
	}
	if len(surface.draws) != 32 {
		t.Fatalf("drew %d polygons, want 32", len(surface.draws))
	}
	if surface.draws[0].width != render.Filled {
		t.Errorf("width = %v, want filled", surface.draws[0].width)
	}
	if sc.State() != st {
		t.Error("State() should return the state the scene was built with")
	}
}

func TestRenderRasterCenterPixel(t *testing.T) {
	surface := render.NewRasterSurface(config.ScreenWidth, config.ScreenHeight)
	defer surface.Close()

	st := state.NewRenderState()
	sc := NewScene(st)
	at := func(x, y int) color.RGBA {
		return color.RGBAModel.Convert(surface.Image().At(x, y)).(color.RGBA)
	}

	// В режиме контура центр остаётся цветом фона
	if err := sc.Render(surface, st); err != nil {
		t.Fatal(err)
	}
	if got := at(700, 375); got != config.BackgroundColor {
		t.Errorf("outline center pixel = %v, want %v", got, config.BackgroundColor)
	}

	// С заливкой центр закрашен последним нарисованным треугольником.
	// Курсор продолжил с 32: треугольник второго прохода — 64-й цвет.
	sc.OnKeyEvent(' ')
	if err := sc.OnRedrawRequested(surface); err != nil {
		t.Fatal(err)
	}
	if want := render.Rainbow[63%render.PaletteSize]; at(700, 375) != want {
		t.Errorf("filled center pixel = %v, want %v", at(700, 375), want)
	}
}
