package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixel-survivor/internal/defs"
	"pixel-survivor/internal/utils"
)

func TestGunnerSpreadIsSymmetric(t *testing.T) {
	store := newTestStore(t, defs.ClassGunner)
	store.Enemies = append(store.Enemies, enemyAt(500, 300, 15, 50))
	stats := defs.InitialStats(defs.ClassGunner)
	stats.Special = defs.Gunner{ProjectileCount: 3}

	NewCombatSystem(store).Update(stats, testBounds)

	require.Len(t, store.Projectiles, 3)
	for i, want := range []float64{-0.2, 0, 0.2} {
		p := store.Projectiles[i]
		assert.InDelta(t, want, math.Atan2(p.Vel.Y, p.Vel.X), 1e-9)
		assert.InDelta(t, 8.0, p.Vel.Len(), 1e-9)
		assert.Equal(t, store.Player.Pos, p.Pos)
		assert.Equal(t, 20.0, p.Damage)
	}
	assert.Equal(t, 0.0, store.Player.LastAttack)
}

func TestGunnerTargetsFirstOfEquallyNearEnemies(t *testing.T) {
	store := newTestStore(t, defs.ClassGunner)
	store.Enemies = append(store.Enemies,
		enemyAt(500, 300, 15, 50), // справа
		enemyAt(300, 300, 15, 50), // слева, то же расстояние
	)

	NewCombatSystem(store).Update(defs.InitialStats(defs.ClassGunner), testBounds)

	require.Len(t, store.Projectiles, 1)
	assert.Greater(t, store.Projectiles[0].Vel.X, 0.0)
}

func TestAttackRespectsCooldown(t *testing.T) {
	store := newTestStore(t, defs.ClassGunner)
	store.Enemies = append(store.Enemies, enemyAt(500, 300, 15, 50))
	combat := NewCombatSystem(store)
	stats := defs.InitialStats(defs.ClassGunner)

	combat.Update(stats, testBounds)
	require.Len(t, store.Projectiles, 1)

	store.Clock.Now = 1000 // ровно attackSpeed: ещё рано
	combat.Update(stats, testBounds)
	assert.Len(t, store.Projectiles, 1)

	store.Clock.Now = 1001
	combat.Update(stats, testBounds)
	assert.Len(t, store.Projectiles, 2)
	assert.Equal(t, 1001.0, store.Player.LastAttack)
}

func TestGunnerWithoutEnemiesKeepsCooldown(t *testing.T) {
	store := newTestStore(t, defs.ClassGunner)
	NewCombatSystem(store).Update(defs.InitialStats(defs.ClassGunner), testBounds)

	assert.Empty(t, store.Projectiles)
	assert.True(t, math.IsInf(store.Player.LastAttack, -1))
}

func TestFighterHitsTwoEnemiesOnce(t *testing.T) {
	store := newTestStore(t, defs.ClassFighter)
	store.Enemies = append(store.Enemies,
		enemyAt(430, 300, 15, 100),
		enemyAt(400, 350, 15, 100),
		enemyAt(600, 300, 15, 100), // вне досягаемости
	)

	NewCombatSystem(store).Update(defs.InitialStats(defs.ClassFighter), testBounds)

	assert.Equal(t, 82.0, store.Enemies[0].HP)
	assert.Equal(t, 82.0, store.Enemies[1].HP)
	assert.Equal(t, 100.0, store.Enemies[2].HP)
	assert.Len(t, store.Strikes, 2)
}

func TestFighterHitsSingleEnemyTwice(t *testing.T) {
	store := newTestStore(t, defs.ClassFighter)
	store.Enemies = append(store.Enemies, enemyAt(430, 300, 15, 100))

	NewCombatSystem(store).Update(defs.InitialStats(defs.ClassFighter), testBounds)

	assert.Equal(t, 64.0, store.Enemies[0].HP)
	require.Len(t, store.Strikes, 2)
	assert.Equal(t, utils.Vec2{X: 430, Y: 300}, store.Strikes[0].Target)
	assert.Equal(t, store.Player.Pos, store.Strikes[0].Origin)
}

func TestFighterPicksTwoNearest(t *testing.T) {
	store := newTestStore(t, defs.ClassFighter)
	store.Enemies = append(store.Enemies,
		enemyAt(460, 300, 15, 100),
		enemyAt(420, 300, 15, 100),
		enemyAt(400, 330, 15, 100),
	)

	NewCombatSystem(store).Update(defs.InitialStats(defs.ClassFighter), testBounds)

	assert.Equal(t, 100.0, store.Enemies[0].HP)
	assert.Equal(t, 82.0, store.Enemies[1].HP)
	assert.Equal(t, 82.0, store.Enemies[2].HP)
}

func TestFighterOutOfReachKeepsCooldown(t *testing.T) {
	store := newTestStore(t, defs.ClassFighter)
	store.Enemies = append(store.Enemies, enemyAt(500, 300, 15, 100))

	NewCombatSystem(store).Update(defs.InitialStats(defs.ClassFighter), testBounds)

	assert.Equal(t, 100.0, store.Enemies[0].HP)
	assert.Empty(t, store.Strikes)
	assert.True(t, math.IsInf(store.Player.LastAttack, -1))
}

func TestWizardExplosionDamagesOnlyOnCreation(t *testing.T) {
	store := newTestStore(t, defs.ClassWizard)
	store.Enemies = append(store.Enemies,
		enemyAt(450, 300, 15, 100), // цель
		enemyAt(500, 300, 15, 100), // в радиусе взрыва
		enemyAt(560, 300, 15, 100), // вне радиуса
	)
	combat := NewCombatSystem(store)
	area := NewAreaAttackSystem(store)

	combat.Update(defs.InitialStats(defs.ClassWizard), testBounds)
	require.Len(t, store.Explosions, 1)
	assert.Equal(t, utils.Vec2{X: 450, Y: 300}, store.Explosions[0].Pos)
	assert.Equal(t, 60.0, store.Explosions[0].Radius)

	area.Update()
	assert.Equal(t, 85.0, store.Enemies[0].HP)
	assert.Equal(t, 85.0, store.Enemies[1].HP)
	assert.Equal(t, 100.0, store.Enemies[2].HP)

	for i := 1; i < 19; i++ {
		area.Update()
	}
	assert.Equal(t, 85.0, store.Enemies[0].HP)
	require.Len(t, store.Explosions, 1)
	assert.Equal(t, 19, store.Explosions[0].Duration)

	area.Update()
	assert.Empty(t, store.Explosions)
}

func TestWizardIgnoresEnemiesOffField(t *testing.T) {
	store := newTestStore(t, defs.ClassWizard)
	store.Enemies = append(store.Enemies, enemyAt(900, 300, 15, 100))

	NewCombatSystem(store).Update(defs.InitialStats(defs.ClassWizard), testBounds)

	assert.Empty(t, store.Explosions)
	assert.True(t, math.IsInf(store.Player.LastAttack, -1))
}
