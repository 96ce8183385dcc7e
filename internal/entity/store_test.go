package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pixel-survivor/internal/component"
	"pixel-survivor/internal/config"
	"pixel-survivor/internal/defs"
	"pixel-survivor/internal/utils"
)

func TestResetSeedsPlayerFromProgression(t *testing.T) {
	s := NewStore()
	prog := defs.ClassProgression{Level: 4, Exp: 75, Stats: defs.DefaultClassLibrary()[defs.ClassFighter]}

	s.Reset(prog, component.Infinite(), utils.Bounds{W: 800, H: 600})

	assert.Equal(t, utils.Vec2{X: 400, Y: 300}, s.Player.Pos)
	assert.Equal(t, 130.0, s.Player.HP)
	assert.Equal(t, 130.0, s.Player.MaxHP)
	assert.Equal(t, 4, s.Player.Level)
	assert.Equal(t, 75, s.Player.Exp)
	assert.False(t, s.Player.GameOverSent)
	assert.Zero(t, s.Clock.Remaining)
}

func TestResetChallengeStartsTimer(t *testing.T) {
	s := NewStore()
	s.Reset(defs.NewProgression(defs.ClassGunner), component.Challenge(3), utils.Bounds{W: 100, H: 100})
	assert.Equal(t, config.ChallengeTime, s.Clock.Remaining)
	assert.Equal(t, 3, s.Mode.Stage)
}

func TestResetReusesCollections(t *testing.T) {
	s := NewStore()
	for i := 0; i < 10; i++ {
		s.Enemies = append(s.Enemies, component.Enemy{HP: 1})
		s.Projectiles = append(s.Projectiles, component.Projectile{})
	}
	capBefore := cap(s.Enemies)

	s.Reset(defs.NewProgression(defs.ClassWizard), component.Infinite(), utils.Bounds{W: 100, H: 100})

	assert.Empty(t, s.Enemies)
	assert.Empty(t, s.Projectiles)
	assert.Empty(t, s.Explosions)
	assert.Empty(t, s.Strikes)
	assert.Equal(t, capBefore, cap(s.Enemies))
}
