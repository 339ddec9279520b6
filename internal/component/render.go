// internal/component/render.go
package component

// Sprite — компонент отрисовки: какой спрайт рисовать для сущности.
type Sprite struct {
	ID string // ключ в SpriteManager
}
