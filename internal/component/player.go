// internal/component/player.go
package component

// Direction — дискретное действие игрока, приходящее с клавиатуры.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
	DirSwitchAvatar
)

// PlayerStateComponent хранит всё состояние аватара игрока: позицию на
// сетке, производные пиксельные координаты и счётчики.
type PlayerStateComponent struct {
	GridCol int // колонка на сетке, 0..4
	GridRow int // ряд на сетке, 0..5; ряд 0 — цель

	// Производные от сетки значения, пересчитываются в MoveTo.
	PixelX, PixelY       float64
	CentroidX, CentroidY float64

	AvatarIndex int // индекс в списке аватаров
	// Размеры текущего спрайта аватара, нужны для центроида.
	AvatarW, AvatarH float64

	Collisions int // сколько раз сбит
	Goals      int // сколько раз дошёл до воды
}
