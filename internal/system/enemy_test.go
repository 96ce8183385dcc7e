package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixel-survivor/internal/defs"
	"pixel-survivor/internal/event"
	"pixel-survivor/internal/utils"
)

func newEnemySystem(t *testing.T) (*EnemySystem, *event.Queue) {
	t.Helper()
	store := newTestStore(t, defs.ClassGunner)
	events := &event.Queue{}
	return NewEnemySystem(store, NewPlayerSystem(store, events)), events
}

func TestEnemyMovesTowardPlayer(t *testing.T) {
	enemies, _ := newEnemySystem(t)
	store := enemies.store
	e := enemyAt(300, 300, 15, 10)
	e.Speed = 2
	store.Enemies = append(store.Enemies, e)

	enemies.Update()

	assert.Equal(t, utils.Vec2{X: 302, Y: 300}, store.Enemies[0].Pos)
	assert.Equal(t, 100.0, store.Player.HP)
}

func TestEnemyOnTopOfPlayerStaysPut(t *testing.T) {
	enemies, _ := newEnemySystem(t)
	store := enemies.store
	e := enemyAt(400, 300, 15, 10)
	e.Speed = 2
	store.Enemies = append(store.Enemies, e)

	enemies.Update()

	pos := store.Enemies[0].Pos
	assert.False(t, math.IsNaN(pos.X) || math.IsNaN(pos.Y))
	assert.Equal(t, utils.Vec2{X: 400, Y: 300}, pos)
	assert.Equal(t, 99.5, store.Player.HP)
}

func TestGameOverFiresOncePerLife(t *testing.T) {
	enemies, events := newEnemySystem(t)
	store := enemies.store
	store.Player.HP = 0.7
	store.Player.Exp = 40
	store.Enemies = append(store.Enemies, enemyAt(410, 300, 15, 10), enemyAt(390, 300, 15, 10))

	enemies.Update()
	enemies.Update()

	assert.Equal(t, 0.0, store.Player.HP)
	out := events.Drain()
	require.Equal(t, []event.EventType{event.GameOver}, eventTypes(out))
	assert.Equal(t, event.GameOverData{Exp: 40}, out[0].Data)
}

func TestDeadEnemyGrantsExp(t *testing.T) {
	enemies, events := newEnemySystem(t)
	store := enemies.store
	store.Enemies = append(store.Enemies, enemyAt(100, 100, 15, 0), enemyAt(700, 500, 15, 10))

	enemies.Update()

	require.Len(t, store.Enemies, 1)
	assert.Equal(t, 10.0, store.Enemies[0].HP)
	assert.Equal(t, 25, store.Player.Exp)
	assert.Equal(t, []event.Event{{Type: event.ExpGained, Data: event.ExpGainedData{Exp: 25}}}, events.Drain())
}

func TestLevelUpCarriesRemainder(t *testing.T) {
	enemies, events := newEnemySystem(t)
	store := enemies.store
	store.Player.Exp = 140
	store.Enemies = append(store.Enemies, enemyAt(100, 100, 15, 0))

	enemies.Update()

	assert.Equal(t, 2, store.Player.Level)
	assert.Equal(t, 15, store.Player.Exp)
	assert.Equal(t, []event.Event{
		{Type: event.ExpGained, Data: event.ExpGainedData{Exp: 165}},
		{Type: event.LevelUp, Data: event.LevelUpData{Level: 2, Exp: 15}},
	}, events.Drain())
}

func TestGainExpCrossesSeveralThresholds(t *testing.T) {
	store := newTestStore(t, defs.ClassGunner)
	events := &event.Queue{}
	players := NewPlayerSystem(store, events)

	players.GainExp(400)

	assert.Equal(t, 3, store.Player.Level)
	assert.Equal(t, 50, store.Player.Exp)
	assert.Equal(t, []event.Event{
		{Type: event.ExpGained, Data: event.ExpGainedData{Exp: 400}},
		{Type: event.LevelUp, Data: event.LevelUpData{Level: 2, Exp: 250}},
		{Type: event.LevelUp, Data: event.LevelUpData{Level: 3, Exp: 50}},
	}, events.Drain())
}
