// internal/config/config.go
package config

import (
	"image/color"

	"nested-polygons/pkg/render"
)

const (
	ScreenWidth  = 1400
	ScreenHeight = 750
	WindowTitle  = "Polygons"
	TargetFPS    = 60

	SideLength  = 150.0
	MaxPolygons = 35  // рисуются многоугольники с 3..MaxPolygons-1 сторонами
	StrokeWidth = 1.0 // толщина контура в режиме обводки

	ShowHint = true // подсказка по управлению в углу окна
	HintText = "SPACE: fill / outline"
	HintX    = 10
	HintY    = 20
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	HintColor       = color.RGBA{240, 240, 240, 255}
	Palette         = render.Rainbow
)
