package progress

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixel-survivor/internal/defs"
	"pixel-survivor/internal/event"
)

type recordingPersister struct {
	saves []*GameProgress
}

func (r *recordingPersister) Save(p *GameProgress) {
	r.saves = append(r.saves, p.Clone())
}

func TestHolderAppliesSimulationEvents(t *testing.T) {
	persister := &recordingPersister{}
	h := NewHolder(Default(), persister)
	d := event.NewDispatcher()
	h.Subscribe(d)

	d.Dispatch(event.Event{Type: event.ExpGained, Data: event.ExpGainedData{Exp: 165}})
	d.Dispatch(event.Event{Type: event.LevelUp, Data: event.LevelUpData{Level: 2, Exp: 15}})
	d.Dispatch(event.Event{Type: event.ChallengeSuccess, Data: event.ChallengeSuccessData{Stage: 1}})

	active := h.ActiveProgression()
	assert.Equal(t, 2, active.Level)
	assert.Equal(t, 15, active.Exp)
	assert.Equal(t, 1, h.PendingUpgrades())
	assert.Equal(t, 1, h.Progress().ClearedChallengeStage)
	assert.Len(t, persister.saves, 3)

	h.Unsubscribe(d)
	d.Dispatch(event.Event{Type: event.GameOver, Data: event.GameOverData{Exp: 99}})
	assert.Equal(t, 15, h.ActiveProgression().Exp)
}

func TestHolderUpgradeScenario(t *testing.T) {
	h := NewHolder(Default(), nil)
	for level := 2; level <= 5; level++ {
		h.OnEvent(event.Event{Type: event.LevelUp, Data: event.LevelUpData{Level: level}})
	}
	require.Equal(t, 4, h.PendingUpgrades())

	for i := 0; i < 4; i++ {
		require.NoError(t, h.ApplyUpgrade(defs.StatDamage))
	}

	assert.InDelta(t, 20*math.Pow(1.15, 4), h.ActiveProgression().Stats.Damage, 1e-9)
	assert.InDelta(t, 34.97, h.ActiveProgression().Stats.Damage, 0.01)
	assert.ErrorIs(t, h.ApplyUpgrade(defs.StatDamage), ErrNoPendingUpgrade)
}

func TestHolderRejectsForeignStat(t *testing.T) {
	h := NewHolder(Default(), nil)
	h.OnEvent(event.Event{Type: event.LevelUp, Data: event.LevelUpData{Level: 2}})

	assert.ErrorIs(t, h.ApplyUpgrade(defs.StatReach), defs.ErrUnknownStat)
	assert.Equal(t, 1, h.PendingUpgrades())
}

func TestHolderSelectClass(t *testing.T) {
	persister := &recordingPersister{}
	h := NewHolder(Default(), persister)

	require.NoError(t, h.SelectClass(defs.ClassWizard))
	assert.Equal(t, defs.ClassWizard, h.ActiveProgression().Stats.Class())
	assert.ErrorIs(t, h.SelectClass("ROGUE"), defs.ErrUnknownClass)
	assert.Len(t, persister.saves, 1)
}

func TestHolderStageLock(t *testing.T) {
	h := NewHolder(nil, nil)

	assert.ErrorIs(t, h.CanEnterStage(2), ErrStageLocked)
	h.OnEvent(event.Event{Type: event.ChallengeSuccess, Data: event.ChallengeSuccessData{Stage: 1}})
	assert.NoError(t, h.CanEnterStage(2))
}

func TestHolderResetPending(t *testing.T) {
	h := NewHolder(nil, nil)
	h.OnEvent(event.Event{Type: event.LevelUp, Data: event.LevelUpData{Level: 2}})
	require.Equal(t, 1, h.PendingUpgrades())

	h.ResetPending()
	assert.Equal(t, 0, h.PendingUpgrades())
	assert.Equal(t, 2, h.ActiveProgression().Level)
}
