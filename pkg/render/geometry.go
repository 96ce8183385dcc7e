package render

import (
	"math"

	"pixel-survivor/internal/component"
	"pixel-survivor/internal/utils"
)

// ExplosionRadius grows linearly with the explosion's age.
func ExplosionRadius(e *component.Explosion) float64 {
	return e.Radius * e.Progress()
}

// StrikeTip returns the end of a strike segment: it extends toward the target
// and retracts, following sin(progress·π).
func StrikeTip(s *component.FighterStrike) utils.Vec2 {
	reach := math.Sin(s.Progress() * math.Pi)
	return s.Origin.Add(s.Target.Sub(s.Origin).Scale(reach))
}

// BarFill returns the filled width of a bar, never negative or wider than width.
func BarFill(ratio, width float64) float64 {
	return utils.Clamp(ratio, 0, 1) * width
}

// GridLines returns line offsets 0, step, 2·step... below extent.
func GridLines(extent float64, step int) []float64 {
	if step <= 0 {
		return nil
	}
	lines := make([]float64, 0, int(extent)/step+1)
	for x := 0.0; x < extent; x += float64(step) {
		lines = append(lines, x)
	}
	return lines
}

// CountdownUrgent reports whether the challenge readout should turn red.
func CountdownUrgent(seconds int) bool {
	return seconds <= 10
}
