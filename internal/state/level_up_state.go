package state

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"pixel-survivor/internal/defs"
	"pixel-survivor/internal/ui"
)

// LevelUpState — выбор улучшения. Симуляция стоит, пока не потрачены все уровни.
type LevelUpState struct {
	sm      *StateMachine
	play    *PlayState
	next    State
	options []defs.StatKey
	menu    *ui.Menu
}

func NewLevelUpState(sm *StateMachine, play *PlayState, next State) *LevelUpState {
	return &LevelUpState{sm: sm, play: play, next: next}
}

func (s *LevelUpState) Enter() {
	stats := s.sm.Services.Progress.ActiveProgression().Stats
	s.options = defs.UpgradeOptions(stats)
	labels := make([]string, len(s.options))
	for i, k := range s.options {
		labels[i] = k.Label()
	}
	s.menu = ui.NewMenu("LEVEL UP!", labels...)
	s.updateSubtitle()
}

func (s *LevelUpState) updateSubtitle() {
	pending := s.sm.Services.Progress.PendingUpgrades()
	s.menu.Subtitle = "Choose a stat to upgrade"
	if pending > 1 {
		s.menu.Subtitle = fmt.Sprintf("Choose a stat to upgrade (%d left)", pending)
	}
}

func (s *LevelUpState) Update(deltaTime float64) {
	s.menu.Layout(s.sm.Bounds, 40)
	choice, ok := s.menu.Update()
	if !ok {
		return
	}

	holder := s.sm.Services.Progress
	key := s.options[choice]
	if err := holder.ApplyUpgrade(key); err != nil {
		slog.Error("Failed to apply upgrade", "stat", key, "error", err)
		s.sm.SetState(s.next)
		return
	}
	slog.Info("Stat upgraded", "stat", key, "pending", holder.PendingUpgrades())

	if holder.PendingUpgrades() > 0 {
		s.updateSubtitle()
		return
	}
	s.sm.SetState(s.next)
}

func (s *LevelUpState) Draw(screen *ebiten.Image) {
	drawOverlay(screen, s.play)
	s.menu.Draw(screen, s.sm.Bounds)
}

func (s *LevelUpState) Exit() {}
