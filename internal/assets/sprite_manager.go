// internal/assets/sprite_manager.go
package assets

import (
	"log"

	"go-road-crossing/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// SpriteManager управляет загрузкой и кэшированием спрайтов. После
// загрузки размеры доступны синхронно.
type SpriteManager struct {
	images map[string]*ebiten.Image
}

// NewSpriteManager создает новый экземпляр SpriteManager.
func NewSpriteManager() *SpriteManager {
	return &SpriteManager{
		images: make(map[string]*ebiten.Image),
	}
}

// loadSingleSprite безопасно загружает один спрайт. Отсутствующий файл не
// останавливает игру: сущность просто не будет нарисована.
func (m *SpriteManager) loadSingleSprite(id, path string) {
	if _, ok := m.images[id]; ok {
		return
	}

	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		log.Printf("WARNING: Failed to load sprite %s from %s: %v", id, path, err)
		return
	}

	m.images[id] = img
	log.Printf("Successfully loaded sprite %s", id)
}

// LoadGameSprites загружает все спрайты, объявленные в библиотеках определений.
func (m *SpriteManager) LoadGameSprites() {
	for _, def := range defs.AvatarLibrary {
		m.loadSingleSprite(def.ID, def.Sprite)
	}
	for id, def := range defs.EnemyLibrary {
		m.loadSingleSprite(id, def.Sprite)
	}
}

// Get возвращает спрайт по ID.
func (m *SpriteManager) Get(id string) (*ebiten.Image, bool) {
	img, ok := m.images[id]
	return img, ok
}

// Size возвращает размеры спрайта в пикселях.
func (m *SpriteManager) Size(id string) (float64, float64, bool) {
	img, ok := m.images[id]
	if !ok {
		return 0, 0, false
	}
	b := img.Bounds()
	return float64(b.Dx()), float64(b.Dy()), true
}
