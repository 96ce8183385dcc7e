package system

import (
	"math"

	"pixel-survivor/internal/component"
	"pixel-survivor/internal/utils"
)

// ApplyDamage наносит урон врагу. Здоровье не опускается ниже нуля.
func ApplyDamage(enemy *component.Enemy, damage float64) {
	enemy.HP = math.Max(0, enemy.HP-damage)
}

// findNearestEnemy возвращает индекс ближайшего подходящего врага или -1.
// При равных расстояниях побеждает первый по порядку обхода.
func findNearestEnemy(enemies []component.Enemy, from utils.Vec2, eligible func(e *component.Enemy) bool) int {
	nearest := -1
	minDist := math.Inf(1)
	for i := range enemies {
		e := &enemies[i]
		if eligible != nil && !eligible(e) {
			continue
		}
		if d := utils.DistSq(from, e.Pos); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}
