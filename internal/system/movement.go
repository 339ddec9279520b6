// internal/system/movement.go
package system

import (
	"go-road-crossing/internal/component"
	"go-road-crossing/internal/config"
	"go-road-crossing/internal/entity"
	"go-road-crossing/internal/utils"
)

// MovementSystem двигает жуков по полосам и возвращает их на старт,
// когда они уходят за правый край экрана.
type MovementSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService
}

func NewMovementSystem(ecs *entity.ECS, rng *utils.PRNGService) *MovementSystem {
	return &MovementSystem{ecs: ecs, rng: rng}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, enemy := range s.ecs.Enemies {
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPos || !hasVel {
			continue
		}

		pos.X += vel.Speed * deltaTime

		if pos.X > config.EnemyEndX {
			next, x, speed := RespawnedState(*enemy, s.rng)
			*enemy = next
			pos.X = x
			vel.Speed = speed
		}

		// y всегда выводится из полосы, жук не может оказаться между рядами.
		pos.Y = LaneY(enemy.Lane)
	}
}

// LaneY возвращает пиксельную координату верхнего края спрайта для полосы.
func LaneY(lane int) float64 {
	return config.EnemyStartY + float64(lane)*config.RowHeight
}

// RespawnedState — чистая функция перехода «жук вышел за экран».
// Возвращает новое состояние жука, стартовую координату x и новую скорость.
// Полоса меняется с вероятностью LaneSwitchChance на случайную из 1..3,
// при этом может выпасть и прежняя.
func RespawnedState(e component.Enemy, rng *utils.PRNGService) (component.Enemy, float64, float64) {
	speed := rng.FloatRange(config.EnemySpeedMinFrac, config.EnemySpeedMinFrac+config.EnemySpeedSpanFrac) * config.EnemyMaxSpeed
	if rng.Chance(config.LaneSwitchChance) {
		e.Lane = config.LaneMin + rng.Intn(config.LaneCount)
	}
	return e, config.EnemyStartX, speed
}
