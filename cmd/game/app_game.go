package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"pixel-survivor/internal/config"
	"pixel-survivor/internal/state"
)

// AppGame adapts the state machine to ebiten's frame loop.
type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func newAppGame(sm *state.StateMachine) *AppGame {
	return &AppGame{stateMachine: sm, lastUpdateTime: time.Now()}
}

// Update передаёт в машину состояний прошедшее время в миллисекундах.
func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := float64(now.Sub(a.lastUpdateTime).Microseconds()) / 1000
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

// Layout follows the window size so the arena grows with it.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.stateMachine.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
