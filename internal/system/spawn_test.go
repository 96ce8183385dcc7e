package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixel-survivor/internal/component"
	"pixel-survivor/internal/defs"
	"pixel-survivor/internal/difficulty"
	"pixel-survivor/internal/utils"
)

func TestSpawnPlacesEnemyOnRing(t *testing.T) {
	store := newTestStore(t, defs.ClassGunner)
	spawner := NewSpawnSystem(store, utils.NewPRNGService(42))

	spawner.Update(testBounds)
	spawner.Update(testBounds)

	require.Len(t, store.Enemies, 1)
	e := store.Enemies[0]
	assert.InDelta(t, 480.0, utils.Dist(store.Player.Pos, e.Pos), 1e-9)
	assert.GreaterOrEqual(t, e.Radius, 15.0)
	assert.Less(t, e.Radius, 20.0)
	assert.Equal(t, 15.0, e.HP)
	assert.Equal(t, e.HP, e.MaxHP)
	assert.Equal(t, 0.0, store.Clock.LastSpawn)
}

func TestSpawnWaitsForInterval(t *testing.T) {
	store := newTestStore(t, defs.ClassGunner)
	spawner := NewSpawnSystem(store, utils.NewPRNGService(7))
	spawner.Update(testBounds)

	interval := difficulty.SpawnInterval(1, 1)
	store.Clock.Now = interval
	spawner.Update(testBounds)
	assert.Len(t, store.Enemies, 1)

	store.Clock.Now = interval + 1
	spawner.Update(testBounds)
	assert.Len(t, store.Enemies, 2)
}

func TestSpawnScalesWithStage(t *testing.T) {
	store := newTestStore(t, defs.ClassGunner)
	store.Mode = component.Challenge(5)

	NewSpawnSystem(store, utils.NewPRNGService(1)).Update(testBounds)

	require.Len(t, store.Enemies, 1)
	assert.InDelta(t, 15*2.8, store.Enemies[0].HP, 1e-9)
}
