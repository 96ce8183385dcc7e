// internal/component/visual.go
package component

import (
	"image/color"

	"pixel-survivor/internal/utils"
)

// Explosion — взрыв мага. Урон наносится один раз, в кадре с Duration == 0,
// дальше эффект только отрисовывается.
type Explosion struct {
	Pos         utils.Vec2
	Radius      float64
	Duration    int // кадров прошло
	MaxDuration int
	Damage      float64
	Color       color.Color
}

// Progress — доля прожитого времени эффекта.
func (e *Explosion) Progress() float64 {
	if e.MaxDuration <= 0 {
		return 1
	}
	return float64(e.Duration) / float64(e.MaxDuration)
}

// FighterStrike — визуальный удар бойца. Урон уже нанесён при создании.
type FighterStrike struct {
	Origin      utils.Vec2 // следует за игроком
	Target      utils.Vec2 // позиция цели в момент удара
	Radius      float64
	Duration    int
	MaxDuration int
	Color       color.Color
}

// Progress — доля прожитого времени эффекта.
func (s *FighterStrike) Progress() float64 {
	if s.MaxDuration <= 0 {
		return 1
	}
	return float64(s.Duration) / float64(s.MaxDuration)
}
