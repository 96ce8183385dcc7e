// Package difficulty maps a stage and player level to spawn and enemy scaling.
// Infinite mode uses stage 1.
package difficulty

import "pixel-survivor/internal/config"

// SpawnFactor — множитель частоты появления врагов.
func SpawnFactor(stage int) float64 {
	return 1 + float64(normalize(stage)-1)*0.35
}

// HPFactor — множитель здоровья врагов.
func HPFactor(stage int) float64 {
	return 1 + float64(normalize(stage)-1)*0.45
}

// SpeedFactor — множитель скорости врагов.
func SpeedFactor(stage int) float64 {
	return 1 + float64(normalize(stage)-1)*0.18
}

// ExpThreshold — опыт, необходимый для перехода с уровня level.
func ExpThreshold(level int) int {
	return 100 + level*50
}

// SpawnInterval — мс между появлениями врагов.
func SpawnInterval(level, stage int) float64 {
	return (config.BaseSpawnInterval / (1 + float64(level)*0.1)) / SpawnFactor(stage)
}

// EnemyMaxHP — здоровье нового врага.
func EnemyMaxHP(level, stage int) float64 {
	return (10 + float64(level)*5) * HPFactor(stage)
}

// EnemySpeed — скорость нового врага, единиц за кадр.
func EnemySpeed(level, stage int) float64 {
	return (1.5 + float64(level)*0.05) * 0.7 * SpeedFactor(stage)
}

func normalize(stage int) int {
	if stage < 1 {
		return 1
	}
	return stage
}
