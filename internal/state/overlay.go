package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"pixel-survivor/internal/config"
)

// drawOverlay затемняет замершую сессию под меню.
func drawOverlay(screen *ebiten.Image, play *PlayState) {
	play.Draw(screen)
	bounds := play.sm.Bounds
	vector.DrawFilledRect(screen, 0, 0, float32(bounds.W), float32(bounds.H), config.OverlayColor, false)
}
