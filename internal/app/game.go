// internal/app/game.go
package app

import (
	"go-road-crossing/internal/assets"
	"go-road-crossing/internal/component"
	"go-road-crossing/internal/config"
	"go-road-crossing/internal/defs"
	"go-road-crossing/internal/entity"
	"go-road-crossing/internal/event"
	"go-road-crossing/internal/interfaces"
	"go-road-crossing/internal/system"
	"go-road-crossing/internal/types"
	"go-road-crossing/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game holds the main game state and logic.
type Game struct {
	ECS             *entity.ECS
	MovementSystem  *system.MovementSystem
	CollisionSystem *system.CollisionSystem
	PlayerSystem    *system.PlayerSystem
	RenderSystem    *system.RenderSystem
	ScoreSystem     *system.ScoreSystem
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	PlayerID        types.EntityID

	gameTime float64
}

// NewGame initializes a new game instance. Seed 0 означает случайный сид.
func NewGame(sprites *assets.SpriteManager, sink interfaces.ScoreSink, seed int64) *Game {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             utils.NewPRNGService(seed),
	}
	g.MovementSystem = system.NewMovementSystem(ecs, g.Rng)
	g.CollisionSystem = system.NewCollisionSystem(ecs, eventDispatcher)
	g.PlayerSystem = system.NewPlayerSystem(ecs, eventDispatcher)
	g.RenderSystem = system.NewRenderSystem(ecs, sprites)
	g.ScoreSystem = system.NewScoreSystem(ecs, sink)

	g.spawnEnemies()
	g.createPlayerEntity()

	// Порядок подписки важен: сначала игрок обновляет счётчики и
	// сбрасывается, затем счёт уходит в панель.
	eventDispatcher.Subscribe(event.PlayerHit, g.PlayerSystem)
	eventDispatcher.Subscribe(event.PlayerHit, g.ScoreSystem)
	eventDispatcher.Subscribe(event.GoalReached, g.ScoreSystem)

	g.ScoreSystem.Sync()

	return g
}

// Update progresses the game state by one frame: движение, затем проверка
// столкновений, затем таймеры эффектов. Всё в одном потоке, в одном кадре.
func (g *Game) Update(deltaTime float64) {
	g.gameTime += deltaTime
	g.ECS.GameTime = g.gameTime

	g.MovementSystem.Update(deltaTime)
	g.CollisionSystem.Update()
	g.RenderSystem.Update(deltaTime)
}

// Draw отрисовывает игровое поле.
func (g *Game) Draw(screen *ebiten.Image) {
	g.RenderSystem.Draw(screen)
}

// HandleInput передаёт дискретное действие игроку.
func (g *Game) HandleInput(dir component.Direction) {
	g.PlayerSystem.HandleInput(dir)
}

// ToggleDebug включает и выключает отрисовку коллизионной геометрии.
func (g *Game) ToggleDebug() {
	g.RenderSystem.DebugEnabled = !g.RenderSystem.DebugEnabled
}

// GetGameTime возвращает прошедшее игровое время.
func (g *Game) GetGameTime() float64 {
	return g.gameTime
}

// spawnEnemies создаёт жуков один раз: по одному на каждую полосу плюс
// один дубль на случайной. Дальше они только переиспользуются респауном.
func (g *Game) spawnEnemies() {
	lanes := make([]int, 0, config.EnemyCount)
	for lane := config.LaneMin; lane <= config.LaneMax; lane++ {
		lanes = append(lanes, lane)
	}
	lanes = append(lanes, config.LaneMin+g.Rng.Intn(config.LaneCount))

	for _, lane := range lanes {
		id := g.ECS.NewEntity()
		g.ECS.Enemies[id] = &component.Enemy{DefID: "ENEMY_BUG", Lane: lane}
		g.ECS.Positions[id] = &component.Position{
			X: config.EnemyStartX,
			Y: system.LaneY(lane),
		}
		speed := g.Rng.FloatRange(config.EnemySpeedMinFrac, config.EnemySpeedMinFrac+config.EnemySpeedSpanFrac) * config.EnemyMaxSpeed
		g.ECS.Velocities[id] = &component.Velocity{Speed: speed}
		g.ECS.Sprites[id] = &component.Sprite{ID: "ENEMY_BUG"}
	}
}

func (g *Game) createPlayerEntity() {
	g.PlayerID = g.ECS.NewEntity()
	def := defs.AvatarLibrary[0]
	g.ECS.PlayerState[g.PlayerID] = &component.PlayerStateComponent{
		AvatarIndex: 0,
		AvatarW:     def.Width,
		AvatarH:     def.Height,
	}
	g.PlayerSystem.SetPlayer(g.PlayerID)
	g.ScoreSystem.SetPlayer(g.PlayerID)
	g.PlayerSystem.Reset()
}
