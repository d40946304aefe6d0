// internal/app/ebiten_host.go
package app

import (
	"log"

	"nested-polygons/internal/config"
	"nested-polygons/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Убеждаемся, что EbitenHost соответствует интерфейсу ebiten.Game
var _ ebiten.Game = (*EbitenHost)(nil)

// EbitenHost — игровой цикл ebiten. Сцена рисуется в отдельный холст
// только по запросу, а каждый кадр холст просто копируется на экран.
type EbitenHost struct {
	loop     *Loop
	canvas   *ebiten.Image
	surface  *render.EbitenSurface
	keys     []rune
	started  bool
	hintFace font.Face
}

func NewEbitenHost(h Handler) *EbitenHost {
	canvas := ebiten.NewImage(config.ScreenWidth, config.ScreenHeight)
	return &EbitenHost{
		loop:     NewLoop(h),
		canvas:   canvas,
		surface:  render.NewEbitenSurface(canvas),
		keys:     make([]rune, 0, 8),
		hintFace: basicfont.Face7x13,
	}
}

func (g *EbitenHost) Update() error {
	if !g.started {
		if err := g.loop.Start(g.surface); err != nil {
			return err
		}
		g.started = true
	}

	g.keys = ebiten.AppendInputChars(g.keys[:0])
	return g.loop.HandleKeys(g.surface, g.keys)
}

func (g *EbitenHost) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas, nil)
	if config.ShowHint {
		text.Draw(screen, config.HintText, g.hintFace, config.HintX, config.HintY, config.HintColor)
	}
}

func (g *EbitenHost) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// RunEbiten открывает окно фиксированного размера и блокируется до его закрытия
func RunEbiten(h Handler) error {
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(config.TargetFPS)

	host := NewEbitenHost(h)
	if err := ebiten.RunGame(host); err != nil {
		return err
	}
	log.Printf("окно закрыто, перерисовок: %d", host.loop.Redraws())
	return nil
}
