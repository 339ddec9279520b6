// internal/entity/ecs.go
package entity

import (
	"go-road-crossing/internal/component"
	"go-road-crossing/internal/types"
)

type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Enemies       map[types.EntityID]*component.Enemy
	Sprites       map[types.EntityID]*component.Sprite
	DamageFlashes map[types.EntityID]*component.DamageFlash
	PlayerState   map[types.EntityID]*component.PlayerStateComponent
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Sprites:       make(map[types.EntityID]*component.Sprite),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		PlayerState:   make(map[types.EntityID]*component.PlayerStateComponent),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}
