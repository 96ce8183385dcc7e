// internal/entity/store.go
package entity

import (
	"pixel-survivor/internal/component"
	"pixel-survivor/internal/config"
	"pixel-survivor/internal/defs"
	"pixel-survivor/internal/utils"
)

// Store — живые сущности одной игровой сессии. Принадлежит симуляции;
// отрисовка только читает его между шагами.
type Store struct {
	Player      component.Player
	Enemies     []component.Enemy
	Projectiles []component.Projectile
	Explosions  []component.Explosion
	Strikes     []component.FighterStrike
	Clock       component.Clock
	Mode        component.Mode
}

func NewStore() *Store {
	return &Store{
		Enemies:     make([]component.Enemy, 0, 64),
		Projectiles: make([]component.Projectile, 0, 64),
		Explosions:  make([]component.Explosion, 0, 16),
		Strikes:     make([]component.FighterStrike, 0, 16),
	}
}

// Reset начинает новую жизнь: игрок в центре поля с полным здоровьем,
// уровень и опыт берутся из сохранённого прогресса класса. Коллекции
// очищаются без перевыделения памяти.
func (s *Store) Reset(prog defs.ClassProgression, mode component.Mode, bounds utils.Bounds) {
	s.Player = component.Player{
		Pos:        bounds.Center(),
		HP:         prog.Stats.HP,
		MaxHP:      prog.Stats.HP,
		Level:      prog.Level,
		Exp:        prog.Exp,
		LastAttack: component.Never,
	}
	s.Enemies = s.Enemies[:0]
	s.Projectiles = s.Projectiles[:0]
	s.Explosions = s.Explosions[:0]
	s.Strikes = s.Strikes[:0]

	s.Mode = mode
	s.Clock = component.Clock{LastSpawn: component.Never}
	if mode.IsChallenge() {
		s.Clock.Remaining = config.ChallengeTime
	}
}
