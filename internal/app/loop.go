// internal/app/loop.go
package app

import "nested-polygons/pkg/render"

// Handler — поведение, которое хост окна внедряет в свой цикл
type Handler interface {
	// OnRedrawRequested полностью перерисовывает поверхность
	OnRedrawRequested(surface render.Surface) error
	// OnKeyEvent обрабатывает введённый символ и сообщает, нужна ли перерисовка
	OnKeyEvent(r rune) bool
}

// Loop связывает ввод и перерисовку, общий для всех хостов.
// Каждая клавиша, запросившая перерисовку, перерисовывается до обработки
// следующей, так что переключение и его кадр не перемежаются с другим вводом.
type Loop struct {
	handler Handler
	redraws int
}

func NewLoop(h Handler) *Loop {
	return &Loop{handler: h}
}

// Start выполняет стартовую перерисовку
func (l *Loop) Start(surface render.Surface) error {
	return l.redraw(surface)
}

// HandleKeys передаёт символы обработчику по порядку
func (l *Loop) HandleKeys(surface render.Surface, keys []rune) error {
	for _, k := range keys {
		if !l.handler.OnKeyEvent(k) {
			continue
		}
		if err := l.redraw(surface); err != nil {
			return err
		}
	}
	return nil
}

// Redraws — сколько перерисовок выполнено
func (l *Loop) Redraws() int {
	return l.redraws
}

func (l *Loop) redraw(surface render.Surface) error {
	if err := l.handler.OnRedrawRequested(surface); err != nil {
		return err
	}
	l.redraws++
	return nil
}
