// internal/state/pause_state.go
package state

import (
	"go-road-crossing/internal/config"
	"go-road-crossing/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию: предыдущее состояние рисуется,
// но не обновляется.
type PauseState struct {
	sm            *StateMachine
	previousState State
	face          font.Face
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		sm:            sm,
		previousState: prevState,
		face:          ui.NewFontFace(config.TitleFontSize),
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}

	vector.DrawFilledRect(screen, 0, 0, float32(config.ScreenWidth), float32(config.ScreenHeight), config.PauseOverlayColor, false)

	msg := "PAUSED"
	b := text.BoundString(s.face, msg)
	x := (config.ScreenWidth - b.Dx()) / 2
	text.Draw(screen, msg, s.face, x, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
