// internal/system/movement.go
package system

import (
	"pixel-survivor/internal/config"
	"pixel-survivor/internal/entity"
	"pixel-survivor/internal/utils"
)

// MovementSystem двигает игрока по вектору джойстика
type MovementSystem struct {
	store *entity.Store
}

func NewMovementSystem(store *entity.Store) *MovementSystem {
	return &MovementSystem{store: store}
}

func (s *MovementSystem) Update(stick utils.Vec2, moveSpeed float64, bounds utils.Bounds) {
	player := &s.store.Player
	if stick.Len() > config.JoystickDeadzone {
		player.Vel = utils.Normalize(stick).Scale(moveSpeed)
	} else {
		player.Vel = utils.Vec2{}
	}

	player.Pos = player.Pos.Add(player.Vel)
	// Игрок целиком остаётся на поле
	player.Pos.X = utils.Clamp(player.Pos.X, config.PlayerRadius, bounds.W-config.PlayerRadius)
	player.Pos.Y = utils.Clamp(player.Pos.Y, config.PlayerRadius, bounds.H-config.PlayerRadius)
}
