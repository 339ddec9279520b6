// internal/system/collision.go
package system

import (
	"go-road-crossing/internal/component"
	"go-road-crossing/internal/config"
	"go-road-crossing/internal/defs"
	"go-road-crossing/internal/entity"
	"go-road-crossing/internal/event"
	"go-road-crossing/pkg/geom"
)

// CollisionSystem проверяет каждого жука против центроида игрока и
// сообщает о столкновении событием. Жуки не держат ссылку на игрока.
type CollisionSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
}

func NewCollisionSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{ecs: ecs, dispatcher: dispatcher}
}

// Update выполняется каждый кадр после движения. Подписчик PlayerHit
// сбрасывает игрока синхронно, поэтому остальные жуки в этом же кадре
// проверяются уже против стартовой клетки.
func (s *CollisionSystem) Update() {
	for id, enemy := range s.ecs.Enemies {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		for _, player := range s.ecs.PlayerState {
			centroid := geom.Point{X: player.CentroidX, Y: player.CentroidY}
			if HitsPlayer(EnemyBodyRect(enemy, *pos), centroid, config.PlayerRadius) {
				s.dispatcher.Dispatch(event.Event{Type: event.PlayerHit, Data: id})
			}
		}
	}
}

// EnemyBodyRect возвращает коллизионное тело жука в мировых координатах:
// прямоугольник спрайта без прозрачных полей.
func EnemyBodyRect(enemy *component.Enemy, pos component.Position) geom.Rect {
	body := defs.EnemyLibrary[enemy.DefID].Body
	return geom.Rect{
		X: pos.X + body.OffsetX,
		Y: pos.Y + body.OffsetY,
		W: body.Width,
		H: body.Height,
	}
}

// HitsPlayer — трёхступенчатая проверка «точка с радиусом против
// прямоугольника». Порядок ступеней и угловой допуск фиксированы: это
// намеренное приближение под игровое ощущение, а не точная геометрия.
func HitsPlayer(body geom.Rect, centroid geom.Point, radius float64) bool {
	// 1. Вертикальная полоса: центроид над или под телом.
	if body.InHorizontalSpan(centroid.X) && body.VerticalEdgeDist(centroid) <= radius {
		return true
	}
	// 2. Горизонтальная полоса: центроид слева или справа от тела.
	if body.InVerticalSpan(centroid.Y) && body.HorizontalEdgeDist(centroid) <= radius {
		return true
	}
	// 3. Углы. Расстояние считается заново на каждом вызове; допуск
	// компенсирует скруглённые углы спрайта.
	return body.NearestCornerDist(centroid)+config.CornerTolerance <= radius
}
