// internal/component/projectile.go
package component

import (
	"image/color"

	"pixel-survivor/internal/utils"
)

// Projectile представляет летящий снаряд стрелка.
type Projectile struct {
	Pos    utils.Vec2
	Vel    utils.Vec2 // единиц за кадр
	Radius float64
	Damage float64
	Color  color.Color
}
