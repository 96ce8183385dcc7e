// pkg/render/color.go
package render

import (
	"image/color"

	"pixel-survivor/internal/config"
	"pixel-survivor/internal/defs"
)

// lowHPRatio — ниже этой доли полоса здоровья игрока красная.
const lowHPRatio = 0.3

// ClassColor returns the body color of a class.
func ClassColor(c defs.Class) color.RGBA {
	switch c {
	case defs.ClassWizard:
		return config.WizardColor
	case defs.ClassFighter:
		return config.FighterColor
	default:
		return config.GunnerColor
	}
}

// DarkenColor reduces the brightness of a color by factor (0..1).
func DarkenColor(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// WithAlpha returns c with a straight (non-premultiplied) alpha.
func WithAlpha(c color.RGBA, alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

// PlayerHPColor picks the player's hp bar color.
func PlayerHPColor(ratio float64) color.RGBA {
	if ratio < lowHPRatio {
		return config.HPBarLowColor
	}
	return config.HPBarGoodColor
}
