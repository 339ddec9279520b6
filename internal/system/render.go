// internal/system/render.go
package system

import (
	"go-road-crossing/internal/assets"
	"go-road-crossing/internal/config"
	"go-road-crossing/internal/defs"
	"go-road-crossing/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem отрисовывает поле, жуков и игрока. В режиме отладки поверх
// спрайтов рисуются коллизионное тело жука и круг игрока.
type RenderSystem struct {
	ecs          *entity.ECS
	sprites      *assets.SpriteManager
	DebugEnabled bool
}

func NewRenderSystem(ecs *entity.ECS, sprites *assets.SpriteManager) *RenderSystem {
	return &RenderSystem{ecs: ecs, sprites: sprites}
}

// Update продвигает таймеры визуальных эффектов.
func (s *RenderSystem) Update(deltaTime float64) {
	for id, flash := range s.ecs.DamageFlashes {
		flash.Timer += deltaTime
		if flash.Timer >= flash.Duration {
			delete(s.ecs.DamageFlashes, id)
		}
	}
}

// Draw рисует кадр. Ошибки отрисовки не моделируются: отсутствующий
// спрайт просто пропускается.
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawBackground(screen)
	s.drawEnemies(screen)
	s.drawPlayer(screen)
	if s.DebugEnabled {
		s.drawDebugOverlay(screen)
	}
}

func (s *RenderSystem) drawBackground(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	w := float32(config.ScreenWidth)
	h := float32(config.CellHeight)
	for row := 0; row < config.GridRows; row++ {
		y := float32(float64(row) * config.CellHeight)
		switch {
		case row == 0:
			vector.DrawFilledRect(screen, 0, y, w, h, config.WaterColor, false)
		case row >= config.LaneMin && row <= config.LaneMax:
			vector.DrawFilledRect(screen, 0, y, w, h, config.RoadColor, false)
			vector.StrokeLine(screen, 0, y, w, y, 2, config.LaneStripeColor, false)
		default:
			vector.DrawFilledRect(screen, 0, y, w, h, config.GrassColor, false)
		}
	}
}

func (s *RenderSystem) drawEnemies(screen *ebiten.Image) {
	for id := range s.ecs.Enemies {
		pos, hasPos := s.ecs.Positions[id]
		sprite, hasSprite := s.ecs.Sprites[id]
		if !hasPos || !hasSprite {
			continue
		}
		img, ok := s.sprites.Get(sprite.ID)
		if !ok {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(pos.X, pos.Y)
		screen.DrawImage(img, op)
	}
}

func (s *RenderSystem) drawPlayer(screen *ebiten.Image) {
	for id, player := range s.ecs.PlayerState {
		def := defs.AvatarLibrary[player.AvatarIndex]
		img, ok := s.sprites.Get(def.ID)
		if !ok {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(player.PixelX, player.PixelY)
		if _, flashing := s.ecs.DamageFlashes[id]; flashing {
			op.ColorScale.Scale(1.0, 0.3, 0.3, 1.0)
		}
		screen.DrawImage(img, op)
	}
}

func (s *RenderSystem) drawDebugOverlay(screen *ebiten.Image) {
	for id, enemy := range s.ecs.Enemies {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		body := EnemyBodyRect(enemy, *pos)
		vector.StrokeRect(screen, float32(body.X), float32(body.Y), float32(body.W), float32(body.H), 1, config.DebugRectColor, false)
	}
	for _, player := range s.ecs.PlayerState {
		vector.StrokeCircle(screen, float32(player.CentroidX), float32(player.CentroidY), float32(config.PlayerRadius), 1, config.DebugCircleColor, false)
	}
}
