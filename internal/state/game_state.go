// internal/state/game_state.go
package state

import (
	game "go-road-crossing/internal/app"
	"go-road-crossing/internal/assets"
	"go-road-crossing/internal/component"
	"go-road-crossing/internal/config"
	"go-road-crossing/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — состояние игры
type GameState struct {
	sm         *StateMachine
	game       *game.Game
	scorePanel *ui.ScorePanel
}

func NewGameState(sm *StateMachine) *GameState {
	sprites := assets.NewSpriteManager()
	sprites.LoadGameSprites()

	scorePanel := ui.NewScorePanel(ui.NewFontFace(config.ScoreFontSize))
	gameLogic := game.NewGame(sprites, scorePanel, 0)

	return &GameState{
		sm:         sm,
		game:       gameLogic,
		scorePanel: scorePanel,
	}
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.game.ToggleDebug()
	}

	// Ввод доставляется до шага симуляции, в том же кадре: одно нажатие —
	// один дискретный шаг.
	if dir := pressedDirection(); dir != component.DirNone {
		g.game.HandleInput(dir)
	}

	g.game.Update(deltaTime)
}

// pressedDirection переводит клавиатуру в дискретное действие игрока.
// Неизвестные клавиши — пустое действие.
func pressedDirection() component.Direction {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		return component.DirUp
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		return component.DirDown
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		return component.DirLeft
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		return component.DirRight
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		return component.DirSwitchAvatar
	}
	return component.DirNone
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.game.Draw(screen)
	g.scorePanel.Draw(screen)
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
