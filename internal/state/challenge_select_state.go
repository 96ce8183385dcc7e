package state

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pixel-survivor/internal/component"
	"pixel-survivor/internal/config"
	"pixel-survivor/internal/ui"
	"pixel-survivor/pkg/render"
)

// StageSelector — листалка этапов 1..99.
type StageSelector struct {
	Index   int
	Cleared int
}

// NewStageSelector фокусируется на этапе после последнего пройденного.
func NewStageSelector(cleared int) StageSelector {
	return StageSelector{Index: min(cleared, config.MaxChallengeStage-1), Cleared: cleared}
}

func (s StageSelector) Stage() int {
	return s.Index + 1
}

func (s StageSelector) Unlocked() bool {
	stage := s.Stage()
	return stage == 1 || stage <= s.Cleared+1
}

func (s StageSelector) IsCleared() bool {
	return s.Stage() <= s.Cleared
}

func (s *StageSelector) Next() {
	if s.Index < config.MaxChallengeStage-1 {
		s.Index++
	}
}

func (s *StageSelector) Prev() {
	if s.Index > 0 {
		s.Index--
	}
}

const (
	challengePrev = iota
	challengeStart
	challengeNext
	challengeBack
)

// ChallengeSelectState — выбор этапа испытания.
type ChallengeSelectState struct {
	sm       *StateMachine
	selector StageSelector
	menu     *ui.Menu
}

func NewChallengeSelectState(sm *StateMachine) *ChallengeSelectState {
	menu := ui.NewMenu("CHALLENGE", "< Prev", "Start", "Next >", "Back")
	menu.Subtitle = "Survive 60 seconds to unlock the next stage"
	return &ChallengeSelectState{sm: sm, menu: menu}
}

func (s *ChallengeSelectState) Enter() {
	s.selector = NewStageSelector(s.sm.Services.Progress.Progress().ClearedChallengeStage)
	s.menu.Focus = challengeStart
	s.refresh()
}

func (s *ChallengeSelectState) refresh() {
	s.menu.Buttons[challengePrev].Disabled = s.selector.Index == 0
	s.menu.Buttons[challengeNext].Disabled = s.selector.Index == config.MaxChallengeStage-1
	s.menu.Buttons[challengeStart].Disabled = !s.selector.Unlocked()
	s.menu.Buttons[challengeStart].Text = fmt.Sprintf("Start stage %d", s.selector.Stage())
}

func (s *ChallengeSelectState) Update(deltaTime float64) {
	s.menu.Layout(s.sm.Bounds, 0)
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.sm.SetState(NewMenuState(s.sm))
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft), inpututil.IsKeyJustPressed(ebiten.KeyA):
		s.selector.Prev()
		s.refresh()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight), inpututil.IsKeyJustPressed(ebiten.KeyD):
		s.selector.Next()
		s.refresh()
	}

	choice, ok := s.menu.Update()
	if !ok {
		return
	}
	switch choice {
	case challengePrev:
		s.selector.Prev()
		s.refresh()
	case challengeNext:
		s.selector.Next()
		s.refresh()
	case challengeStart:
		stage := s.selector.Stage()
		if err := s.sm.Services.Progress.CanEnterStage(stage); err != nil {
			slog.Warn("Stage not available", "stage", stage, "error", err)
			return
		}
		s.sm.SetState(NewPlayState(s.sm, component.Challenge(stage)))
	case challengeBack:
		s.sm.SetState(NewMenuState(s.sm))
	}
}

func (s *ChallengeSelectState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.menu.Draw(screen, s.sm.Bounds)

	label := fmt.Sprintf("STAGE %d", s.selector.Stage())
	clr := config.TextLightColor
	switch {
	case !s.selector.Unlocked():
		label += "  LOCKED"
		clr = config.LockedColor
	case s.selector.IsCleared():
		label += "  *"
	}
	y := s.menu.Buttons[challengeBack].Y + 80
	render.DrawText(screen, label, s.sm.Bounds.W/2, y, 3, clr)
}

func (s *ChallengeSelectState) Exit() {}
