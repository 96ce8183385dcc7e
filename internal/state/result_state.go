package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"pixel-survivor/internal/ui"
)

// ResultKind — чем закончилась сессия.
type ResultKind int

const (
	ResultGameOver ResultKind = iota
	ResultChallengeCleared
)

// ResultState — экран после смерти или прохождения испытания.
type ResultState struct {
	sm   *StateMachine
	play *PlayState
	kind ResultKind
	menu *ui.Menu
}

func NewResultState(sm *StateMachine, play *PlayState, kind ResultKind) *ResultState {
	var menu *ui.Menu
	switch kind {
	case ResultChallengeCleared:
		menu = ui.NewMenu(fmt.Sprintf("STAGE %d CLEARED!", play.game.Mode.Stage), "Home")
		menu.Subtitle = "The next stage is unlocked"
	default:
		menu = ui.NewMenu("GAME OVER", "Restart", "Home")
	}
	return &ResultState{sm: sm, play: play, kind: kind, menu: menu}
}

func (s *ResultState) Enter() {
	if s.kind == ResultGameOver {
		level := s.sm.Services.Progress.ActiveProgression().Level
		s.menu.Subtitle = fmt.Sprintf("You reached level %d", level)
	}
}

func (s *ResultState) Update(deltaTime float64) {
	s.menu.Layout(s.sm.Bounds, 0)
	if choice, ok := s.menu.Update(); ok {
		s.choose(choice)
	}
}

// choose выполняет выбранный пункт меню: перезапуск или выход в главное меню.
func (s *ResultState) choose(choice int) {
	if s.kind == ResultGameOver && choice == 0 {
		// Сессия мертва, PlayState начнёт новую жизнь при входе
		s.sm.SetState(s.play)
		return
	}
	s.play.Close()
	s.sm.SetState(NewMenuState(s.sm))
}

func (s *ResultState) Draw(screen *ebiten.Image) {
	drawOverlay(screen, s.play)
	s.menu.Draw(screen, s.sm.Bounds)
}

func (s *ResultState) Exit() {}
