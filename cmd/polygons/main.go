// cmd/polygons/main.go
package main

import (
	"log"

	"nested-polygons/internal/app"
	"nested-polygons/internal/scene"
	"nested-polygons/internal/state"
)

func main() {
	sc := scene.NewScene(state.NewRenderState()) // Режим контура, курсор перед первым цветом
	if err := app.RunEbiten(sc); err != nil {
		log.Fatal(err)
	}
}
