// internal/progress/holder.go
package progress

import (
	"fmt"
	"log/slog"

	"pixel-survivor/internal/defs"
	"pixel-survivor/internal/event"
)

// Persister принимает снимок прогресса на сохранение.
type Persister interface {
	Save(p *GameProgress)
}

// Holder owns the live progress record. It applies simulation events and
// menu choices and hands every change to the persister.
type Holder struct {
	progress        *GameProgress
	persister       Persister
	pendingUpgrades int
}

func NewHolder(p *GameProgress, persister Persister) *Holder {
	if p == nil {
		p = Default()
	}
	return &Holder{progress: p, persister: persister}
}

// Subscribe registers the holder for the events that change progress.
func (h *Holder) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(h, event.ExpGained, event.LevelUp, event.GameOver, event.ChallengeSuccess)
}

// Unsubscribe removes the holder from d.
func (h *Holder) Unsubscribe(d *event.Dispatcher) {
	for _, t := range []event.EventType{event.ExpGained, event.LevelUp, event.GameOver, event.ChallengeSuccess} {
		d.Unsubscribe(t, h)
	}
}

// Progress returns the live record. Callers must not keep it across saves.
func (h *Holder) Progress() *GameProgress {
	return h.progress
}

// ActiveProgression returns a copy of the selected class's progression.
func (h *Holder) ActiveProgression() defs.ClassProgression {
	return *h.progress.Active()
}

// PendingUpgrades — сколько выборов улучшения ещё не сделано.
func (h *Holder) PendingUpgrades() int {
	return h.pendingUpgrades
}

// OnEvent реализует интерфейс event.Listener.
func (h *Holder) OnEvent(e event.Event) {
	active := h.progress.Active()
	switch data := e.Data.(type) {
	case event.ExpGainedData:
		active.Exp = data.Exp
	case event.LevelUpData:
		active.Level = data.Level
		active.Exp = data.Exp
		h.pendingUpgrades++
	case event.GameOverData:
		active.Exp = data.Exp
	case event.ChallengeSuccessData:
		if h.progress.ClearStage(data.Stage) {
			slog.Info("Challenge stage cleared", "stage", data.Stage)
		}
	default:
		return
	}
	h.save()
}

// ApplyUpgrade spends one pending level-up on the given stat of the selected class.
func (h *Holder) ApplyUpgrade(key defs.StatKey) error {
	if h.pendingUpgrades == 0 {
		return ErrNoPendingUpgrade
	}
	active := h.progress.Active()
	stats, err := defs.Upgrade(active.Stats, key)
	if err != nil {
		return fmt.Errorf("failed to apply upgrade: %w", err)
	}
	active.Stats = stats
	h.pendingUpgrades--
	h.save()
	return nil
}

// SelectClass makes c the active class.
func (h *Holder) SelectClass(c defs.Class) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %q", defs.ErrUnknownClass, c)
	}
	h.progress.SelectedClass = c
	h.progress.Class(c)
	h.save()
	return nil
}

// CanEnterStage returns ErrStageLocked if stage is not yet unlocked.
func (h *Holder) CanEnterStage(stage int) error {
	return h.progress.CheckStage(stage)
}

// ResetPending drops unspent upgrades, e.g. when leaving a session.
func (h *Holder) ResetPending() {
	h.pendingUpgrades = 0
}

func (h *Holder) save() {
	if h.persister != nil {
		h.persister.Save(h.progress)
	}
}
