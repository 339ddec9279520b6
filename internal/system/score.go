// internal/system/score.go
package system

import (
	"go-road-crossing/internal/entity"
	"go-road-crossing/internal/event"
	"go-road-crossing/internal/interfaces"
	"go-road-crossing/internal/types"
)

// ScoreSystem слушает игровые события и публикует счётчики в ScoreSink.
// Ядро не знает, как именно счёт показывается игроку.
type ScoreSystem struct {
	ecs      *entity.ECS
	sink     interfaces.ScoreSink
	playerID types.EntityID
}

func NewScoreSystem(ecs *entity.ECS, sink interfaces.ScoreSink) *ScoreSystem {
	return &ScoreSystem{ecs: ecs, sink: sink}
}

// SetPlayer привязывает систему к сущности игрока.
func (s *ScoreSystem) SetPlayer(id types.EntityID) {
	s.playerID = id
}

// Sync публикует текущие значения счётчиков, например при старте игры.
func (s *ScoreSystem) Sync() {
	p, ok := s.ecs.PlayerState[s.playerID]
	if !ok || s.sink == nil {
		return
	}
	s.sink.SetScore(interfaces.ScoreCrossings, p.Goals)
	s.sink.SetScore(interfaces.ScoreHits, p.Collisions)
}

// OnEvent реализует event.Listener.
func (s *ScoreSystem) OnEvent(e event.Event) {
	if s.sink == nil {
		return
	}
	p, ok := s.ecs.PlayerState[s.playerID]
	if !ok {
		return
	}
	switch e.Type {
	case event.GoalReached:
		s.sink.SetScore(interfaces.ScoreCrossings, p.Goals)
	case event.PlayerHit:
		s.sink.SetScore(interfaces.ScoreHits, p.Collisions)
	}
}
