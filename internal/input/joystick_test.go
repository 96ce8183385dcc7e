package input

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"pixel-survivor/internal/utils"
)

func TestJoystickVector(t *testing.T) {
	var j Joystick
	assert.Equal(t, utils.Vec2{}, j.Vector())

	j.Move(utils.Vec2{X: 50, Y: 50})
	assert.False(t, j.Active, "move without begin is ignored")

	j.Begin(utils.Vec2{X: 10, Y: 20})
	assert.Equal(t, utils.Vec2{}, j.Vector())

	j.Move(utils.Vec2{X: 13, Y: 16})
	assert.Equal(t, utils.Vec2{X: 3, Y: -4}, j.Vector())

	j.End()
	assert.Equal(t, utils.Vec2{}, j.Vector())
}

func TestKeyboardVector(t *testing.T) {
	assert.Equal(t, utils.Vec2{}, KeyboardVector(false, false, false, false))
	assert.Equal(t, utils.Vec2{}, KeyboardVector(true, true, false, false))
	assert.Equal(t, utils.Vec2{X: keyboardReach}, KeyboardVector(false, false, false, true))

	diag := KeyboardVector(true, false, true, false)
	assert.InDelta(t, keyboardReach, diag.Len(), 1e-9)
	assert.InDelta(t, -keyboardReach/math.Sqrt2, diag.X, 1e-9)
}

func TestSamplerPrefersGesture(t *testing.T) {
	s := &Sampler{keys: utils.Vec2{X: keyboardReach}}
	assert.Equal(t, utils.Vec2{X: keyboardReach}, s.Vector())

	s.Joystick.Begin(utils.Vec2{})
	s.Joystick.Move(utils.Vec2{Y: 7})
	assert.Equal(t, utils.Vec2{Y: 7}, s.Vector())

	s.Release()
	assert.Equal(t, utils.Vec2{}, s.Vector())
}
