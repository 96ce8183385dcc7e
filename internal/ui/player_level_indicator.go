// internal/ui/player_level_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"pixel-survivor/internal/config"
	"pixel-survivor/internal/utils"
	"pixel-survivor/pkg/render"
)

const (
	xpBarMaxWidth = 420.0
	xpBarHeight   = 12.0
	levelTagWidth = 56.0
	stageTagWidth = 72.0
	borderWidth   = 1
)

var borderColor = color.White

// PlayerLevelIndicator отображает уровень, полосу опыта и этап испытания.
type PlayerLevelIndicator struct {
	X, Y  float64
	Width float64
}

// NewPlayerLevelIndicator создает новый индикатор уровня.
func NewPlayerLevelIndicator() *PlayerLevelIndicator {
	return &PlayerLevelIndicator{}
}

// Layout центрирует индикатор у верхнего края, оставляя место под кнопку паузы.
func (i *PlayerLevelIndicator) Layout(bounds utils.Bounds) {
	i.Width = xpBarMaxWidth
	if avail := bounds.W - 2*config.HUDMargin - 4*config.PauseButtonSize; avail < i.Width {
		i.Width = avail
	}
	i.X = (bounds.W - i.Width) / 2
	i.Y = config.HUDMargin
}

// ExpFill — доля заполнения полосы опыта.
func ExpFill(exp, threshold int) float64 {
	if threshold <= 0 {
		return 0
	}
	return utils.Clamp(float64(exp)/float64(threshold), 0, 1)
}

// Draw отрисовывает индикатор. stage == 0 — бесконечный режим.
func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, level, exp, threshold, stage int) {
	x, y := i.X, i.Y
	barX := x + levelTagWidth + 6
	barW := i.Width - levelTagWidth - 6
	if stage > 0 {
		barW -= stageTagWidth + 6
	}
	if barW < 0 {
		barW = 0
	}

	vector.DrawFilledRect(screen, float32(x), float32(y-4), levelTagWidth, xpBarHeight+8, config.AccentColor, false)
	render.DrawText(screen, fmt.Sprintf("LV %d", level), x+levelTagWidth/2, y-1, 1, config.TextLightColor)

	vector.StrokeRect(screen, float32(barX), float32(y), float32(barW), xpBarHeight, borderWidth, borderColor, true)
	fillWidth := float32((barW - borderWidth*2) * ExpFill(exp, threshold))
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, float32(barX)+borderWidth, float32(y)+borderWidth, fillWidth, xpBarHeight-borderWidth*2, config.ExpBarColorFill, true)
	}

	if stage > 0 {
		tagX := barX + barW + 6
		vector.DrawFilledRect(screen, float32(tagX), float32(y-4), stageTagWidth, xpBarHeight+8, config.ProjectileColor, false)
		render.DrawText(screen, fmt.Sprintf("STAGE %d", stage), tagX+stageTagWidth/2, y-1, 1, config.BackgroundColor)
	}
}
