// internal/defs/types.go
package defs

// BodyRect описывает видимое тело спрайта внутри картинки: смещение от
// верхнего левого угла и размер, без прозрачных полей.
type BodyRect struct {
	OffsetX float64 `json:"offset_x"`
	OffsetY float64 `json:"offset_y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

// AvatarDefinition — один из спрайтов игрока. Порядок в списке определяет
// порядок переключения аватаров.
type AvatarDefinition struct {
	ID     string  `json:"id"`
	Sprite string  `json:"sprite"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// EnemyDefinition — описание жука: спрайт и его коллизионное тело.
type EnemyDefinition struct {
	ID     string   `json:"id"`
	Sprite string   `json:"sprite"`
	Body   BodyRect `json:"body"`
}
