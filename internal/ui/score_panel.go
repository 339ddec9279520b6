// internal/ui/score_panel.go
package ui

import (
	"fmt"

	"go-road-crossing/internal/config"
	"go-road-crossing/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// ScorePanel показывает счёт в углу экрана. Реализует interfaces.ScoreSink,
// поэтому ядро игры шлёт сюда счётчики, не зная про ebiten.
type ScorePanel struct {
	face      font.Face
	crossings int
	hits      int
}

func NewScorePanel(face font.Face) *ScorePanel {
	return &ScorePanel{face: face}
}

// SetScore реализует interfaces.ScoreSink.
func (p *ScorePanel) SetScore(name string, value int) {
	switch name {
	case interfaces.ScoreCrossings:
		p.crossings = value
	case interfaces.ScoreHits:
		p.hits = value
	}
}

// Draw отрисовывает панель счёта с лёгкой тенью под текстом.
func (p *ScorePanel) Draw(screen *ebiten.Image) {
	msg := fmt.Sprintf("Crossings: %d   Hits: %d", p.crossings, p.hits)
	x := config.ScorePanelOffsetX
	y := config.ScorePanelOffsetY
	text.Draw(screen, msg, p.face, x+1, y+1, config.TextShadeColor)
	text.Draw(screen, msg, p.face, x, y, config.TextLightColor)
}
