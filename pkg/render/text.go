package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Face is the HUD font. basicfont is small, so labels are scaled up.
var Face = text.NewGoXFace(basicfont.Face7x13)

// DrawText draws str centered horizontally on x, with its top at y.
func DrawText(screen *ebiten.Image, str string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, Face, op)
}

// DrawTextLeft draws str with its top-left corner at (x, y).
func DrawTextLeft(screen *ebiten.Image, str string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, Face, op)
}

// TextWidth returns the width of str at the given scale.
func TextWidth(str string, scale float64) float64 {
	w, _ := text.Measure(str, Face, 0)
	return w * scale
}
