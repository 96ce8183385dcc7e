package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixel-survivor/internal/defs"
	"pixel-survivor/internal/utils"
)

func TestMenuLayoutAndHitTest(t *testing.T) {
	m := NewMenu("PAUSED", "Resume", "Home")
	m.Layout(utils.Bounds{W: 800, H: 600}, 0)

	first := m.Buttons[0]
	assert.Equal(t, 240.0, first.X)
	assert.Equal(t, 0, m.HitTest(utils.Vec2{X: first.X + 10, Y: first.Y + 10}))
	assert.Equal(t, 1, m.HitTest(utils.Vec2{X: 400, Y: m.Buttons[1].Y + 1}))
	assert.Equal(t, -1, m.HitTest(utils.Vec2{X: 10, Y: 10}))
}

func TestMenuFocusSkipsDisabled(t *testing.T) {
	m := NewMenu("", "a", "b", "c")
	m.Buttons[1].Disabled = true

	m.MoveFocus(1)
	assert.Equal(t, 2, m.Focus)
	m.MoveFocus(1)
	assert.Equal(t, 0, m.Focus)
	m.MoveFocus(-1)
	assert.Equal(t, 2, m.Focus)

	_, ok := m.choose(1)
	assert.False(t, ok)
	i, ok := m.choose(2)
	assert.True(t, ok)
	assert.Equal(t, 2, i)
}

func TestExpFill(t *testing.T) {
	assert.Equal(t, 0.5, ExpFill(75, 150))
	assert.Equal(t, 1.0, ExpFill(400, 150))
	assert.Equal(t, 0.0, ExpFill(10, 0))
}

func TestStatLines(t *testing.T) {
	lines := StatLines(defs.InitialStats(defs.ClassGunner))
	require.Len(t, lines, 5)
	assert.Equal(t, StatLine{"Attack speed", "1.00/s"}, lines[0])
	assert.Equal(t, StatLine{"Projectiles", "1"}, lines[4])

	fighter := StatLines(defs.InitialStats(defs.ClassFighter))
	assert.Equal(t, StatLine{"Reach", "1.5"}, fighter[4])
}

func TestPauseButtonHit(t *testing.T) {
	b := NewPauseButton(16)
	b.Layout(utils.Bounds{W: 800, H: 600})

	assert.True(t, b.IsClicked(utils.Vec2{X: b.X + 5, Y: b.Y - 5}))
	assert.False(t, b.IsClicked(utils.Vec2{X: 400, Y: 300}))
}
