// Package progress owns the persisted player record: selected class, per-class
// progression and the highest cleared challenge stage.
package progress

import (
	"errors"
	"fmt"

	"pixel-survivor/internal/config"
	"pixel-survivor/internal/defs"
)

var (
	ErrStageLocked      = errors.New("challenge stage is locked")
	ErrNoPendingUpgrade = errors.New("no pending level-up upgrade")
)

// GameProgress is the in-memory form of the save record.
type GameProgress struct {
	SelectedClass         defs.Class
	Progression           map[defs.Class]*defs.ClassProgression
	ClearedChallengeStage int
}

// Default returns a fresh record: Gunner selected, every class at level 1.
func Default() *GameProgress {
	p := &GameProgress{
		SelectedClass: defs.ClassGunner,
		Progression:   make(map[defs.Class]*defs.ClassProgression, len(defs.Classes)),
	}
	for _, c := range defs.Classes {
		prog := defs.NewProgression(c)
		p.Progression[c] = &prog
	}
	return p
}

// Active returns the progression of the selected class.
func (p *GameProgress) Active() *defs.ClassProgression {
	return p.Class(p.SelectedClass)
}

// Class returns the progression of c, creating a level-1 entry if it is missing.
func (p *GameProgress) Class(c defs.Class) *defs.ClassProgression {
	if prog, ok := p.Progression[c]; ok {
		return prog
	}
	prog := defs.NewProgression(c)
	p.Progression[c] = &prog
	return &prog
}

// StageUnlocked reports whether stage can be entered: stage 1 always, any other
// stage once the previous one is cleared.
func (p *GameProgress) StageUnlocked(stage int) bool {
	if stage < 1 || stage > config.MaxChallengeStage {
		return false
	}
	return stage == 1 || stage <= p.ClearedChallengeStage+1
}

// CheckStage returns ErrStageLocked for a stage that cannot be entered.
func (p *GameProgress) CheckStage(stage int) error {
	if !p.StageUnlocked(stage) {
		return fmt.Errorf("%w: stage %d, cleared %d", ErrStageLocked, stage, p.ClearedChallengeStage)
	}
	return nil
}

// ClearStage records a cleared stage. The cleared stage never decreases.
func (p *GameProgress) ClearStage(stage int) bool {
	if stage <= p.ClearedChallengeStage {
		return false
	}
	p.ClearedChallengeStage = stage
	return true
}

// Clone returns a deep copy.
func (p *GameProgress) Clone() *GameProgress {
	out := &GameProgress{
		SelectedClass:         p.SelectedClass,
		Progression:           make(map[defs.Class]*defs.ClassProgression, len(p.Progression)),
		ClearedChallengeStage: p.ClearedChallengeStage,
	}
	for c, prog := range p.Progression {
		cp := *prog
		out.Progression[c] = &cp
	}
	return out
}
