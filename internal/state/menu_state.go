// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"pixel-survivor/internal/component"
	"pixel-survivor/internal/config"
	"pixel-survivor/internal/ui"
)

const (
	menuStart = iota
	menuCharacters
	menuChallenge
)

// MenuState — главный экран: выбранный класс и режимы игры.
type MenuState struct {
	sm    *StateMachine
	menu  *ui.Menu
	panel *ui.InfoPanel
}

func NewMenuState(sm *StateMachine) *MenuState {
	menu := ui.NewMenu("PIXEL SURVIVOR", "Start", "Characters", "Challenge")
	menu.Subtitle = "Survive the endless horde"
	return &MenuState{sm: sm, menu: menu, panel: ui.NewInfoPanel()}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	m.menu.Layout(m.sm.Bounds, 0)
	choice, ok := m.menu.Update()
	if !ok {
		return
	}
	switch choice {
	case menuStart:
		m.sm.SetState(NewPlayState(m.sm, component.Infinite()))
	case menuCharacters:
		m.sm.SetState(NewCharacterSelectState(m.sm))
	case menuChallenge:
		m.sm.SetState(NewChallengeSelectState(m.sm))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	m.menu.Draw(screen, m.sm.Bounds)

	prog := m.sm.Services.Progress.ActiveProgression()
	m.panel.X = m.sm.Bounds.W / 2
	m.panel.Y = m.menu.Buttons[len(m.menu.Buttons)-1].Y + 80
	m.panel.Draw(screen, prog)
}

func (m *MenuState) Exit() {}
