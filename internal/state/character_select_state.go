package state

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pixel-survivor/internal/config"
	"pixel-survivor/internal/defs"
	"pixel-survivor/internal/ui"
)

// CharacterSelectState — выбор класса. Показывает уровень и характеристики каждого.
type CharacterSelectState struct {
	sm    *StateMachine
	menu  *ui.Menu
	panel *ui.InfoPanel
}

func NewCharacterSelectState(sm *StateMachine) *CharacterSelectState {
	labels := make([]string, 0, len(defs.Classes)+1)
	for _, c := range defs.Classes {
		labels = append(labels, c.Title())
	}
	labels = append(labels, "Back")

	return &CharacterSelectState{
		sm:    sm,
		menu:  ui.NewMenu("CHOOSE YOUR CLASS", labels...),
		panel: ui.NewInfoPanel(),
	}
}

func (s *CharacterSelectState) Enter() {
	p := s.sm.Services.Progress.Progress()
	for i, c := range defs.Classes {
		s.menu.Buttons[i].Detail = fmt.Sprintf("LV %d", p.Class(c).Level)
		if c == p.SelectedClass {
			s.menu.Focus = i
		}
	}
}

func (s *CharacterSelectState) Update(deltaTime float64) {
	s.menu.Layout(s.sm.Bounds, 56)
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(NewMenuState(s.sm))
		return
	}

	choice, ok := s.menu.Update()
	if !ok {
		return
	}
	if choice < len(defs.Classes) {
		class := defs.Classes[choice]
		if err := s.sm.Services.Progress.SelectClass(class); err != nil {
			slog.Error("Failed to select class", "class", class, "error", err)
			return
		}
		slog.Info("Class selected", "class", class)
	}
	s.sm.SetState(NewMenuState(s.sm))
}

func (s *CharacterSelectState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.menu.Draw(screen, s.sm.Bounds)

	// Характеристики класса под фокусом
	if s.menu.Focus < len(defs.Classes) {
		p := s.sm.Services.Progress.Progress()
		s.panel.X = s.sm.Bounds.W / 2
		s.panel.Y = s.menu.Buttons[len(s.menu.Buttons)-1].Y + 72
		s.panel.Draw(screen, *p.Class(defs.Classes[s.menu.Focus]))
	}
}

func (s *CharacterSelectState) Exit() {}
