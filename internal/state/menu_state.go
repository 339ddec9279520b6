// internal/state/menu_state.go
package state

import (
	"go-road-crossing/internal/config"
	"go-road-crossing/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// MenuState — титульный экран
type MenuState struct {
	sm        *StateMachine
	titleFace font.Face
	hintFace  font.Face
}

func NewMenuState(sm *StateMachine) *MenuState {
	return &MenuState{
		sm:        sm,
		titleFace: ui.NewFontFace(config.TitleFontSize),
		hintFace:  ui.NewFontFace(config.ScoreFontSize),
	}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewGameState(m.sm))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	title := "ROAD CROSSING"
	tb := text.BoundString(m.titleFace, title)
	tx := (config.ScreenWidth - tb.Dx()) / 2
	text.Draw(screen, title, m.titleFace, tx, config.ScreenHeight/2-40, config.TextLightColor)

	hint := "Press SPACE to start"
	hb := text.BoundString(m.hintFace, hint)
	hx := (config.ScreenWidth - hb.Dx()) / 2
	text.Draw(screen, hint, m.hintFace, hx, config.ScreenHeight/2+10, config.TextLightColor)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
