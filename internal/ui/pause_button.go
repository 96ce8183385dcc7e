// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"pixel-survivor/internal/config"
	"pixel-survivor/internal/utils"
)

// PauseButton — круглая кнопка паузы в углу экрана.
type PauseButton struct {
	X, Y          float64
	Size          float64
	LastClickTime time.Time
	Color         color.Color
}

func NewPauseButton(size float64) *PauseButton {
	return &PauseButton{Size: size, Color: config.TextLightColor}
}

// Layout прижимает кнопку к правому верхнему углу.
func (b *PauseButton) Layout(bounds utils.Bounds) {
	b.X = bounds.W - config.HUDMargin - b.Size
	b.Y = config.HUDMargin + b.Size
}

func (b *PauseButton) IsClicked(p utils.Vec2) bool {
	return utils.DistSq(p, utils.Vec2{X: b.X, Y: b.Y}) <= b.Size*b.Size
}

func (b *PauseButton) Press() {
	b.LastClickTime = time.Now()
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	rectSize := float32(b.Size * 0.5 * scale)

	x, y := float32(b.X), float32(b.Y)
	vector.DrawFilledCircle(screen, x, y, float32(b.Size), config.HPBarBackColor, true)

	// Два прямоугольника (pause)
	width := rectSize * 0.6
	height := rectSize * 2.0
	spacing := rectSize * 0.4
	vector.DrawFilledRect(screen, x-width-spacing/2, y-height/2, width, height, b.Color, true)
	vector.DrawFilledRect(screen, x+spacing/2, y-height/2, width, height, b.Color, true)
}
