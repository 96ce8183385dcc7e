package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixel-survivor/internal/defs"
)

func TestDefaultProgress(t *testing.T) {
	p := Default()

	assert.Equal(t, defs.ClassGunner, p.SelectedClass)
	assert.Zero(t, p.ClearedChallengeStage)
	require.Len(t, p.Progression, 3)
	for _, c := range defs.Classes {
		assert.Equal(t, defs.NewProgression(c), *p.Progression[c])
	}
}

func TestStageLockScenario(t *testing.T) {
	p := Default()

	assert.True(t, p.StageUnlocked(1))
	assert.ErrorIs(t, p.CheckStage(2), ErrStageLocked)

	assert.True(t, p.ClearStage(1))
	assert.Equal(t, 1, p.ClearedChallengeStage)
	assert.NoError(t, p.CheckStage(2))
	assert.False(t, p.StageUnlocked(3))
}

func TestClearStageNeverDecreases(t *testing.T) {
	p := Default()
	p.ClearStage(5)

	assert.False(t, p.ClearStage(3))
	assert.Equal(t, 5, p.ClearedChallengeStage)
	assert.True(t, p.StageUnlocked(1))
	assert.True(t, p.StageUnlocked(6))
	assert.False(t, p.StageUnlocked(7))
}

func TestStageRange(t *testing.T) {
	p := Default()
	p.ClearStage(99)

	assert.False(t, p.StageUnlocked(0))
	assert.True(t, p.StageUnlocked(99))
	assert.False(t, p.StageUnlocked(100))
}

func TestCloneIsDeep(t *testing.T) {
	p := Default()
	c := p.Clone()
	c.Progression[defs.ClassGunner].Level = 9

	assert.Equal(t, 1, p.Progression[defs.ClassGunner].Level)
}
