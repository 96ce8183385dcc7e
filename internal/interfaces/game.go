package interfaces

import "pixel-survivor/internal/defs"

// ProgressSource отдаёт прогресс выбранного класса. Симуляция читает
// характеристики из него каждый кадр, поэтому улучшения действуют сразу.
type ProgressSource interface {
	ActiveProgression() defs.ClassProgression
}
