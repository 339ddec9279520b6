package app

import (
	"testing"

	"go-road-crossing/internal/assets"
	"go-road-crossing/internal/component"
	"go-road-crossing/internal/config"
	"go-road-crossing/internal/interfaces"
	"go-road-crossing/internal/types"
)

type fakeScoreSink struct {
	scores map[string]int
}

func newFakeScoreSink() *fakeScoreSink {
	return &fakeScoreSink{scores: make(map[string]int)}
}

func (s *fakeScoreSink) SetScore(name string, value int) {
	s.scores[name] = value
}

func newTestGame(t *testing.T) (*Game, *fakeScoreSink) {
	t.Helper()
	sink := newFakeScoreSink()
	return NewGame(assets.NewSpriteManager(), sink, 1), sink
}

func TestNewGameSpawnsEnemyFleet(t *testing.T) {
	g, _ := newTestGame(t)

	if len(g.ECS.Enemies) != config.EnemyCount {
		t.Fatalf("expected %d enemies, got %d", config.EnemyCount, len(g.ECS.Enemies))
	}

	seen := make(map[int]int)
	for id, enemy := range g.ECS.Enemies {
		if enemy.Lane < config.LaneMin || enemy.Lane > config.LaneMax {
			t.Errorf("enemy lane %d out of range", enemy.Lane)
		}
		seen[enemy.Lane]++

		pos := g.ECS.Positions[id]
		if pos == nil || pos.X != config.EnemyStartX {
			t.Errorf("enemy should start at x=%v, got %+v", config.EnemyStartX, pos)
		}
		vel := g.ECS.Velocities[id]
		min := config.EnemySpeedMinFrac * config.EnemyMaxSpeed
		max := (config.EnemySpeedMinFrac + config.EnemySpeedSpanFrac) * config.EnemyMaxSpeed
		if vel == nil || vel.Speed < min || vel.Speed >= max {
			t.Errorf("enemy speed out of range: %+v", vel)
		}
	}

	// По одному жуку на каждой полосе, дубль добавляет четвёртого.
	for lane := config.LaneMin; lane <= config.LaneMax; lane++ {
		if seen[lane] == 0 {
			t.Errorf("lane %d has no enemy", lane)
		}
	}
}

func TestNewGameCreatesPlayerAtHome(t *testing.T) {
	g, sink := newTestGame(t)

	p := g.ECS.PlayerState[g.PlayerID]
	if p == nil {
		t.Fatal("player entity missing")
	}
	if p.GridCol != config.PlayerStartCol || p.GridRow != config.PlayerStartRow {
		t.Errorf("expected player at (2,5), got (%d,%d)", p.GridCol, p.GridRow)
	}
	if sink.scores[interfaces.ScoreCrossings] != 0 || sink.scores[interfaces.ScoreHits] != 0 {
		t.Errorf("expected zeroed score sync, got %v", sink.scores)
	}
}

// Пять шагов вверх от старта: цель засчитана, игрок снова дома.
func TestGoalRoundTrip(t *testing.T) {
	g, sink := newTestGame(t)

	for i := 0; i < config.PlayerStartRow; i++ {
		g.HandleInput(component.DirUp)
	}

	p := g.ECS.PlayerState[g.PlayerID]
	if p.Goals != 1 {
		t.Errorf("expected 1 goal, got %d", p.Goals)
	}
	if p.GridCol != config.PlayerStartCol || p.GridRow != config.PlayerStartRow {
		t.Errorf("expected player back at (2,5), got (%d,%d)", p.GridCol, p.GridRow)
	}
	if sink.scores[interfaces.ScoreCrossings] != 1 {
		t.Errorf("expected crossings=1 in sink, got %d", sink.scores[interfaces.ScoreCrossings])
	}
}

// Кадр со столкновением: счётчик попаданий растёт, игрок сбрасывается.
func TestFrameWithCollision(t *testing.T) {
	g, sink := newTestGame(t)

	// Ставим игрока на вторую полосу и подводим под него жука.
	g.PlayerSystem.MoveTo(2, 2)
	p := g.ECS.PlayerState[g.PlayerID]

	var enemyID types.EntityID
	for id, enemy := range g.ECS.Enemies {
		if enemy.Lane == 2 {
			enemyID = id
			break
		}
	}
	if enemyID == 0 {
		t.Fatal("no enemy on lane 2")
	}
	g.ECS.Positions[enemyID].X = p.CentroidX - config.EnemyBodyWidth/2

	g.Update(0)

	if p.Collisions != 1 {
		t.Errorf("expected 1 collision, got %d", p.Collisions)
	}
	if p.GridCol != config.PlayerStartCol || p.GridRow != config.PlayerStartRow {
		t.Errorf("expected reset to (2,5), got (%d,%d)", p.GridCol, p.GridRow)
	}
	if sink.scores[interfaces.ScoreHits] != 1 {
		t.Errorf("expected hits=1 in sink, got %d", sink.scores[interfaces.ScoreHits])
	}
}
