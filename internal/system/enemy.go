package system

import (
	"pixel-survivor/internal/config"
	"pixel-survivor/internal/entity"
	"pixel-survivor/internal/utils"
)

// EnemySystem ведёт врагов к игроку, наносит урон при касании
// и убирает погибших.
type EnemySystem struct {
	store  *entity.Store
	player *PlayerSystem
}

func NewEnemySystem(store *entity.Store, player *PlayerSystem) *EnemySystem {
	return &EnemySystem{store: store, player: player}
}

func (s *EnemySystem) Update() {
	playerPos := s.store.Player.Pos
	kept := s.store.Enemies[:0]
	for _, enemy := range s.store.Enemies {
		toPlayer := playerPos.Sub(enemy.Pos)
		dist := toPlayer.Len()
		// Совпадение с игроком даёт нулевое направление, враг стоит на месте
		enemy.Pos = enemy.Pos.Add(utils.Normalize(toPlayer).Scale(enemy.Speed))

		if dist < config.PlayerRadius+enemy.Radius {
			s.player.TakeDamage(config.ContactDamage)
		}

		if enemy.HP <= 0 {
			s.player.GainExp(config.ExpPerKill)
			continue
		}
		kept = append(kept, enemy)
	}
	s.store.Enemies = kept
}
