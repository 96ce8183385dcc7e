// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pixel-survivor/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

const (
	pauseResume = iota
	pauseHome
)

type PauseState struct {
	stateMachine  *StateMachine
	previousState *PlayState
	menu          *ui.Menu
}

func NewPauseState(sm *StateMachine, prevState *PlayState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		menu:          ui.NewMenu("PAUSED", "Resume", "Home"),
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	s.menu.Layout(s.stateMachine.Bounds, 0)
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
		return
	}

	if choice, ok := s.menu.Update(); ok {
		s.choose(choice)
	}
}

func (s *PauseState) choose(choice int) {
	switch choice {
	case pauseResume:
		s.stateMachine.SetState(s.previousState)
	case pauseHome:
		s.previousState.Close()
		s.stateMachine.SetState(NewMenuState(s.stateMachine))
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	drawOverlay(screen, s.previousState)
	s.menu.Draw(screen, s.stateMachine.Bounds)
}

func (s *PauseState) Exit() {}
