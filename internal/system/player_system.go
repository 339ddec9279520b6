// internal/system/player_system.go
package system

import (
	"go-road-crossing/internal/component"
	"go-road-crossing/internal/config"
	"go-road-crossing/internal/defs"
	"go-road-crossing/internal/entity"
	"go-road-crossing/internal/event"
	"go-road-crossing/internal/types"
)

// PlayerSystem владеет состоянием аватара: дискретные шаги по сетке,
// смена аватара, сбросы после столкновения и после достижения цели.
type PlayerSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	playerID   types.EntityID
}

func NewPlayerSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, dispatcher: dispatcher}
}

// SetPlayer привязывает систему к сущности игрока.
func (s *PlayerSystem) SetPlayer(id types.EntityID) {
	s.playerID = id
}

func (s *PlayerSystem) player() *component.PlayerStateComponent {
	return s.ecs.PlayerState[s.playerID]
}

// HandleInput обрабатывает одно дискретное действие. Шаг за границу сетки
// игнорируется, но позиция пересчитывается всегда — даже пустое действие
// заканчивается вызовом MoveTo.
func (s *PlayerSystem) HandleInput(dir component.Direction) {
	p := s.player()
	if p == nil {
		return
	}

	col, row := p.GridCol, p.GridRow
	switch dir {
	case component.DirUp:
		if row > 0 {
			row--
		}
	case component.DirDown:
		if row < config.GridRows-1 {
			row++
		}
	case component.DirLeft:
		if col > 0 {
			col--
		}
	case component.DirRight:
		if col < config.GridCols-1 {
			col++
		}
	case component.DirSwitchAvatar:
		s.switchAvatar(p)
	}
	s.MoveTo(col, row)
}

// switchAvatar циклически переключает спрайт игрока.
func (s *PlayerSystem) switchAvatar(p *component.PlayerStateComponent) {
	p.AvatarIndex = (p.AvatarIndex + 1) % len(defs.AvatarLibrary)
	def := defs.AvatarLibrary[p.AvatarIndex]
	p.AvatarW = def.Width
	p.AvatarH = def.Height
	s.dispatcher.Dispatch(event.Event{Type: event.AvatarChanged, Data: p.AvatarIndex})
}

// MoveTo ставит игрока в клетку и пересчитывает пиксельную позицию и
// центроид. Верхний ряд — цель: счётчик увеличивается и игрок немедленно
// возвращается на старт, на ряду 0 он не остаётся ни одного кадра.
func (s *PlayerSystem) MoveTo(col, row int) {
	p := s.player()
	if p == nil {
		return
	}

	p.GridCol = col
	p.GridRow = row
	p.PixelX = float64(col) * config.CellWidth
	p.PixelY = float64(row)*config.CellHeight + config.PlayerPixelOffsetY
	p.CentroidX = p.PixelX + p.AvatarW/2
	p.CentroidY = p.PixelY + p.AvatarH/2

	if row == 0 {
		p.Goals++
		s.dispatcher.Dispatch(event.Event{Type: event.GoalReached, Data: p.Goals})
		s.Reset()
	}
}

// Reset возвращает игрока на стартовую клетку.
func (s *PlayerSystem) Reset() {
	s.MoveTo(config.PlayerStartCol, config.PlayerStartRow)
}

// OnEvent реализует event.Listener: жук сбил игрока.
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type != event.PlayerHit {
		return
	}
	p := s.player()
	if p == nil {
		return
	}
	p.Collisions++
	s.ecs.DamageFlashes[s.playerID] = &component.DamageFlash{
		Duration: config.DamageFlashDuration,
	}
	s.Reset()
}
