package system

import (
	"testing"

	"go-road-crossing/internal/component"
	"go-road-crossing/internal/config"
	"go-road-crossing/internal/defs"
	"go-road-crossing/internal/entity"
	"go-road-crossing/internal/event"
	"go-road-crossing/internal/types"
)

func newTestPlayer(t *testing.T) (*PlayerSystem, *component.PlayerStateComponent, *entity.ECS, *event.Dispatcher) {
	t.Helper()
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	sys := NewPlayerSystem(ecs, dispatcher)

	id := ecs.NewEntity()
	def := defs.AvatarLibrary[0]
	ecs.PlayerState[id] = &component.PlayerStateComponent{
		AvatarW: def.Width,
		AvatarH: def.Height,
	}
	sys.SetPlayer(id)
	sys.Reset()
	return sys, ecs.PlayerState[id], ecs, dispatcher
}

func TestPlayerStartsAtHome(t *testing.T) {
	_, p, _, _ := newTestPlayer(t)
	if p.GridCol != config.PlayerStartCol || p.GridRow != config.PlayerStartRow {
		t.Errorf("expected start cell (2,5), got (%d,%d)", p.GridCol, p.GridRow)
	}
	if p.PixelX != 202 || p.PixelY != 382 {
		t.Errorf("expected pixel (202,382), got (%v,%v)", p.PixelX, p.PixelY)
	}
	if p.CentroidX != 235 || p.CentroidY != 426 {
		t.Errorf("expected centroid (235,426), got (%v,%v)", p.CentroidX, p.CentroidY)
	}
}

// Шаг за край сетки игнорируется на всех границах.
func TestPlayerGridBounds(t *testing.T) {
	tests := []struct {
		name     string
		col, row int
		dir      component.Direction
	}{
		{"Left edge", 0, 5, component.DirLeft},
		{"Right edge", config.GridCols - 1, 5, component.DirRight},
		{"Bottom edge", 2, config.GridRows - 1, component.DirDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys, p, _, _ := newTestPlayer(t)
			sys.MoveTo(tt.col, tt.row)
			sys.HandleInput(tt.dir)
			if p.GridCol != tt.col || p.GridRow != tt.row {
				t.Errorf("expected (%d,%d) unchanged, got (%d,%d)", tt.col, tt.row, p.GridCol, p.GridRow)
			}
		})
	}
}

func TestPlayerMoves(t *testing.T) {
	tests := []struct {
		name             string
		dir              component.Direction
		wantCol, wantRow int
	}{
		{"Up", component.DirUp, 2, 4},
		{"Down at bottom edge", component.DirDown, 2, 5},
		{"Left", component.DirLeft, 1, 5},
		{"Right", component.DirRight, 3, 5},
		{"Unknown is a no-op", component.DirNone, 2, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys, p, _, _ := newTestPlayer(t)
			sys.HandleInput(tt.dir)
			if p.GridCol != tt.wantCol || p.GridRow != tt.wantRow {
				t.Errorf("expected (%d,%d), got (%d,%d)", tt.wantCol, tt.wantRow, p.GridCol, p.GridRow)
			}
		})
	}
}

// Достижение верхнего ряда: счётчик растёт ровно на один, игрок
// немедленно оказывается на старте, а не на ряду 0.
func TestPlayerGoalCycle(t *testing.T) {
	sys, p, _, dispatcher := newTestPlayer(t)
	goals := &recordingListener{}
	dispatcher.Subscribe(event.GoalReached, goals)

	sys.MoveTo(2, 1)
	sys.HandleInput(component.DirUp)

	if p.Goals != 1 {
		t.Errorf("expected 1 goal, got %d", p.Goals)
	}
	if len(goals.events) != 1 {
		t.Errorf("expected 1 GoalReached event, got %d", len(goals.events))
	}
	if p.GridCol != config.PlayerStartCol || p.GridRow != config.PlayerStartRow {
		t.Errorf("expected reset to (2,5), got (%d,%d)", p.GridCol, p.GridRow)
	}
}

// Полный круг по списку аватаров возвращает исходный.
func TestPlayerAvatarCycling(t *testing.T) {
	sys, p, _, _ := newTestPlayer(t)
	n := len(defs.AvatarLibrary)

	for i := 0; i < n; i++ {
		sys.HandleInput(component.DirSwitchAvatar)
		if want := (i + 1) % n; p.AvatarIndex != want {
			t.Fatalf("after %d switches expected avatar %d, got %d", i+1, want, p.AvatarIndex)
		}
	}

	if p.AvatarIndex != 0 {
		t.Errorf("expected avatar index back to 0, got %d", p.AvatarIndex)
	}
	if p.GridCol != config.PlayerStartCol || p.GridRow != config.PlayerStartRow {
		t.Errorf("avatar switch must not move the player, got (%d,%d)", p.GridCol, p.GridRow)
	}
}

func TestPlayerHitResetsAndCounts(t *testing.T) {
	sys, p, ecs, dispatcher := newTestPlayer(t)
	dispatcher.Subscribe(event.PlayerHit, sys)

	sys.MoveTo(1, 2)
	dispatcher.Dispatch(event.Event{Type: event.PlayerHit, Data: types.EntityID(99)})

	if p.Collisions != 1 {
		t.Errorf("expected 1 collision, got %d", p.Collisions)
	}
	if p.GridCol != config.PlayerStartCol || p.GridRow != config.PlayerStartRow {
		t.Errorf("expected reset to (2,5), got (%d,%d)", p.GridCol, p.GridRow)
	}
	if _, ok := ecs.DamageFlashes[sys.playerID]; !ok {
		t.Error("expected damage flash to be armed after a hit")
	}
}
