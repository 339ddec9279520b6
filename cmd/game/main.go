// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-road-crossing/internal/config"
	"go-road-crossing/internal/defs"
	"go-road-crossing/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

const startFromGame = false // true — начинать с игры, false — с меню

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	go func() {
		log.Println(http.ListenAndServe(config.PprofAddr, nil))
	}()

	defs.LoadAll("assets/data/avatars.json", "assets/data/enemies.json")

	sm := state.NewStateMachine()
	if startFromGame {
		sm.SetState(state.NewGameState(sm))
	} else {
		sm.SetState(state.NewMenuState(sm))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Road Crossing")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
