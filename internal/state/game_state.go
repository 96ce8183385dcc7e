// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pixel-survivor/internal/app"
	"pixel-survivor/internal/component"
	"pixel-survivor/internal/config"
	"pixel-survivor/internal/difficulty"
	"pixel-survivor/internal/event"
	"pixel-survivor/internal/ui"
	"pixel-survivor/internal/utils"
)

var playEvents = []event.EventType{event.LevelUp, event.GameOver, event.ChallengeSuccess}

// PlayState — активная сессия. Только в этом состоянии идёт симуляция.
type PlayState struct {
	sm          *StateMachine
	game        *app.Game
	pauseButton *ui.PauseButton
	levelBar    *ui.PlayerLevelIndicator

	skipDelta bool // первый кадр после входа идёт с dt = 0
	gameOver  bool
	cleared   bool
}

func NewPlayState(sm *StateMachine, mode component.Mode) *PlayState {
	services := sm.Services
	return &PlayState{
		sm:          sm,
		game:        app.NewGame(services.Progress, mode, services.Dispatcher, services.Rng),
		pauseButton: ui.NewPauseButton(config.PauseButtonSize),
		levelBar:    ui.NewPlayerLevelIndicator(),
	}
}

// Game returns the running session.
func (s *PlayState) Game() *app.Game {
	return s.game
}

// Enter начинает новую жизнь, если прошлая закончилась, и подписывается на события.
func (s *PlayState) Enter() {
	if s.game.NeedsStart() {
		s.game.Start(s.sm.Bounds)
	}
	s.skipDelta = true
	s.gameOver, s.cleared = false, false
	s.sm.Services.Dispatcher.SubscribeAll(s, playEvents...)
}

// OnEvent реализует интерфейс event.Listener.
func (s *PlayState) OnEvent(e event.Event) {
	switch e.Type {
	case event.GameOver:
		s.gameOver = true
	case event.ChallengeSuccess:
		s.cleared = true
	}
}

func (s *PlayState) Update(deltaTime float64) {
	if s.skipDelta {
		deltaTime = 0
		s.skipDelta = false
	}
	bounds := s.sm.Bounds
	s.pauseButton.Layout(bounds)
	s.levelBar.Layout(bounds)

	if s.pauseRequested() {
		s.pauseButton.Press()
		s.sm.SetState(NewPauseState(s.sm, s))
		return
	}

	sampler := s.sm.Services.Sampler
	sampler.Poll(func(p utils.Vec2) bool { return !s.pauseButton.IsClicked(p) })
	s.game.Update(deltaTime, sampler.Vector(), bounds)

	var result State
	switch {
	case s.gameOver:
		result = NewResultState(s.sm, s, ResultGameOver)
	case s.cleared:
		result = NewResultState(s.sm, s, ResultChallengeCleared)
	}

	if s.sm.Services.Progress.PendingUpgrades() > 0 {
		next := result
		if next == nil {
			next = s
		}
		s.sm.SetState(NewLevelUpState(s.sm, s, next))
		return
	}
	if result != nil {
		s.sm.SetState(result)
	}
}

func (s *PlayState) pauseRequested() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		return true
	}
	if p, ok := ui.JustPressedPoint(); ok {
		return s.pauseButton.IsClicked(p)
	}
	return false
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	store := s.game.Store
	prog := s.sm.Services.Progress.ActiveProgression()
	s.sm.Services.Renderer.Draw(screen, store, prog.Stats.Class(), s.sm.Bounds, &s.sm.Services.Sampler.Joystick)

	player := &store.Player
	s.levelBar.Draw(screen, player.Level, player.Exp, difficulty.ExpThreshold(player.Level), store.Mode.Stage)
	s.pauseButton.Draw(screen)
}

// Exit отписывается от событий и отпускает джойстик.
func (s *PlayState) Exit() {
	for _, t := range playEvents {
		s.sm.Services.Dispatcher.Unsubscribe(t, s)
	}
	s.sm.Services.Sampler.Release()
}

// Close завершает сессию насовсем.
func (s *PlayState) Close() {
	s.sm.Services.Progress.ResetPending()
	s.game.Close()
}
