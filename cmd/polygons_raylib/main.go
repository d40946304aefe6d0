// cmd/polygons_raylib/main.go
package main

import (
	"fmt"
	"log"

	"nested-polygons/internal/app"
	"nested-polygons/internal/config"
	"nested-polygons/internal/scene"
	"nested-polygons/internal/state"
	"nested-polygons/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// run — тот же цикл, что и у ebiten: сцена рисуется в текстуру по запросу,
// текстура выводится каждый кадр.
func run(h app.Handler) error {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, config.WindowTitle)
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return fmt.Errorf("init window: %w", render.ErrSurfaceUnavailable)
	}
	rl.SetTargetFPS(config.TargetFPS)

	target := rl.LoadRenderTexture(config.ScreenWidth, config.ScreenHeight)
	defer rl.UnloadRenderTexture(target)

	surface := newRaylibSurface()
	loop := app.NewLoop(h)

	rl.BeginTextureMode(target)
	err := loop.Start(surface)
	rl.EndTextureMode()
	if err != nil {
		return err
	}

	// Текстура хранится перевёрнутой, поэтому высота источника отрицательная
	src := rl.NewRectangle(0, 0, float32(target.Texture.Width), -float32(target.Texture.Height))
	keys := make([]rune, 0, 8)

	// --- Главный цикл ---
	for !rl.WindowShouldClose() {
		keys = keys[:0]
		for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
			keys = append(keys, rune(ch))
		}
		if len(keys) > 0 {
			rl.BeginTextureMode(target)
			err := loop.HandleKeys(surface, keys)
			rl.EndTextureMode()
			if err != nil {
				return err
			}
		}

		// --- Отрисовка ---
		rl.BeginDrawing()
		rl.ClearBackground(config.BackgroundColor)
		rl.DrawTextureRec(target.Texture, src, rl.NewVector2(0, 0), rl.White)
		if config.ShowHint {
			rl.DrawText(config.HintText, config.HintX, config.HintY-10, 10, config.HintColor)
		}
		rl.EndDrawing()
	}

	log.Printf("окно закрыто, перерисовок: %d", loop.Redraws())
	return nil
}

func main() {
	sc := scene.NewScene(state.NewRenderState())
	if err := run(sc); err != nil {
		log.Fatal(err)
	}
}
