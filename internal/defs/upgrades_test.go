package defs

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGunnerDamageAfterFourUpgrades(t *testing.T) {
	s := DefaultClassLibrary()[ClassGunner]
	for i := 0; i < 4; i++ {
		var err error
		s, err = Upgrade(s, StatDamage)
		require.NoError(t, err)
	}
	assert.InDelta(t, 20*math.Pow(1.15, 4), s.Damage, 1e-9)
	assert.InDelta(t, 34.98, s.Damage, 0.01)
}

func TestUpgradeAttackSpeedShrinksInterval(t *testing.T) {
	s, err := Upgrade(DefaultClassLibrary()[ClassWizard], StatAttackSpeed)
	require.NoError(t, err)
	assert.InDelta(t, 450, s.AttackSpeed, 1e-9)
}

func TestUpgradeProjectileCount(t *testing.T) {
	s := DefaultClassLibrary()[ClassGunner]
	want := []int{2, 3, 4, 5, 6, 7, 9}
	for _, w := range want {
		var err error
		s, err = Upgrade(s, StatProjectileCount)
		require.NoError(t, err)
		assert.Equal(t, w, s.Special.(Gunner).ProjectileCount)
	}
}

func TestUpgradeClassStats(t *testing.T) {
	w, err := Upgrade(DefaultClassLibrary()[ClassWizard], StatAttackArea)
	require.NoError(t, err)
	assert.InDelta(t, 69, w.Special.(Wizard).AttackArea, 1e-9)

	f, err := Upgrade(DefaultClassLibrary()[ClassFighter], StatReach)
	require.NoError(t, err)
	assert.InDelta(t, 1.725, f.Special.(Fighter).Reach, 1e-9)
}

func TestUpgradeRejectsForeignStat(t *testing.T) {
	s := DefaultClassLibrary()[ClassFighter]
	_, err := Upgrade(s, StatProjectileCount)
	assert.ErrorIs(t, err, ErrUnknownStat)
}

func TestUpgradeOptionsPerClass(t *testing.T) {
	lib := DefaultClassLibrary()
	assert.Equal(t, StatProjectileCount, UpgradeOptions(lib[ClassGunner])[4])
	assert.Equal(t, StatAttackArea, UpgradeOptions(lib[ClassWizard])[4])
	assert.Equal(t, StatReach, UpgradeOptions(lib[ClassFighter])[4])
	for _, c := range Classes {
		opts := UpgradeOptions(lib[c])
		assert.Len(t, opts, 5)
		for _, k := range opts {
			_, err := Upgrade(lib[c], k)
			assert.NoError(t, err, "%s/%s", c, k)
		}
	}
}
