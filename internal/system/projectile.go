// internal/system/projectile.go
package system

import (
	"pixel-survivor/internal/component"
	"pixel-survivor/internal/config"
	"pixel-survivor/internal/entity"
	"pixel-survivor/internal/utils"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	store *entity.Store
}

func NewProjectileSystem(store *entity.Store) *ProjectileSystem {
	return &ProjectileSystem{store: store}
}

func (s *ProjectileSystem) Update(bounds utils.Bounds) {
	kept := s.store.Projectiles[:0]
	for _, proj := range s.store.Projectiles {
		proj.Pos = proj.Pos.Add(proj.Vel)
		if s.hitTarget(&proj) {
			continue
		}
		// Улетевшие за поле снаряды удаляем
		if !bounds.ContainsWithMargin(proj.Pos, config.ProjectileMargin) {
			continue
		}
		kept = append(kept, proj)
	}
	s.store.Projectiles = kept
}

// hitTarget наносит урон первому задетому врагу.
func (s *ProjectileSystem) hitTarget(proj *component.Projectile) bool {
	for i := range s.store.Enemies {
		enemy := &s.store.Enemies[i]
		if utils.Dist(proj.Pos, enemy.Pos) < proj.Radius+enemy.Radius {
			ApplyDamage(enemy, proj.Damage)
			return true
		}
	}
	return false
}
