// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"pixel-survivor/internal/config"
	"pixel-survivor/internal/utils"
	"pixel-survivor/pkg/render"
)

const (
	buttonTextScale   = 2.0
	buttonDetailScale = 1.0
	buttonBorder      = 2.0
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	X, Y, W, H float64
	Text       string
	Detail     string // вторая строка, мелким шрифтом
	Disabled   bool
	BgColor    color.Color
}

// NewButton создает новую кнопку.
func NewButton(text string) *Button {
	return &Button{Text: text, BgColor: config.HPBarBackColor}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(p utils.Vec2) bool {
	return p.X >= b.X && p.X <= b.X+b.W && p.Y >= b.Y && p.Y <= b.Y+b.H
}

// Draw отрисовывает кнопку. Кнопка в фокусе обводится акцентным цветом.
func (b *Button) Draw(screen *ebiten.Image, focused bool) {
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), b.BgColor, false)

	border := color.Color(config.GridColor)
	if focused {
		border = config.AccentColor
	}
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), buttonBorder, border, false)

	textColor := color.Color(config.TextLightColor)
	if b.Disabled {
		textColor = config.LockedColor
	}

	cx := b.X + b.W/2
	if b.Detail == "" {
		render.DrawText(screen, b.Text, cx, b.Y+(b.H-13*buttonTextScale)/2, buttonTextScale, textColor)
		return
	}
	render.DrawText(screen, b.Text, cx, b.Y+6, buttonTextScale, textColor)
	render.DrawText(screen, b.Detail, cx, b.Y+b.H-13*buttonDetailScale-6, buttonDetailScale, config.TextDimColor)
}
