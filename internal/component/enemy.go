package component

import (
	"image/color"

	"pixel-survivor/internal/utils"
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	Pos    utils.Vec2
	Radius float64
	HP     float64
	MaxHP  float64
	Speed  float64 // единиц за кадр
	Color  color.Color
}

// HPRatio — доля здоровья для полоски.
func (e *Enemy) HPRatio() float64 {
	if e.MaxHP <= 0 || e.HP <= 0 {
		return 0
	}
	return e.HP / e.MaxHP
}
