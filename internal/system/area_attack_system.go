// internal/system/area_attack_system.go
package system

import (
	"pixel-survivor/internal/entity"
	"pixel-survivor/internal/utils"
)

// AreaAttackSystem управляет взрывами мага: урон по области в кадре создания.
type AreaAttackSystem struct {
	store *entity.Store
}

func NewAreaAttackSystem(store *entity.Store) *AreaAttackSystem {
	return &AreaAttackSystem{store: store}
}

func (s *AreaAttackSystem) Update() {
	kept := s.store.Explosions[:0]
	for _, explosion := range s.store.Explosions {
		if explosion.Duration == 0 {
			// Находим всех врагов в радиусе и наносим урон
			for i := range s.store.Enemies {
				enemy := &s.store.Enemies[i]
				if utils.Dist(explosion.Pos, enemy.Pos) < explosion.Radius+enemy.Radius {
					ApplyDamage(enemy, explosion.Damage)
				}
			}
		}
		explosion.Duration++
		if explosion.Duration < explosion.MaxDuration {
			kept = append(kept, explosion)
		}
	}
	s.store.Explosions = kept
}
