package system

import (
	"sort"

	"pixel-survivor/internal/component"
	"pixel-survivor/internal/config"
	"pixel-survivor/internal/defs"
	"pixel-survivor/internal/entity"
	"pixel-survivor/internal/utils"
)

// CombatSystem управляет автоатакой игрока
type CombatSystem struct {
	store   *entity.Store
	inRange []meleeTarget // переиспользуемый буфер бойца
}

type meleeTarget struct {
	index  int
	distSq float64
}

func NewCombatSystem(store *entity.Store) *CombatSystem {
	return &CombatSystem{store: store}
}

// Update атакует, если с прошлой атаки прошло больше stats.AttackSpeed мс.
// Перезарядка сбрасывается только если цель нашлась.
func (s *CombatSystem) Update(stats defs.Stats, bounds utils.Bounds) {
	player := &s.store.Player
	now := s.store.Clock.Now
	if now-player.LastAttack <= stats.AttackSpeed {
		return
	}

	var attacked bool
	switch special := stats.Special.(type) {
	case defs.Gunner:
		attacked = s.fireProjectiles(stats.Damage, special)
	case defs.Wizard:
		attacked = s.castExplosion(stats.Damage, special, bounds)
	case defs.Fighter:
		attacked = s.strike(stats.Damage, special)
	}
	if attacked {
		player.LastAttack = now
	}
}

// fireProjectiles — веер снарядов в ближайшего врага, без ограничения дальности.
func (s *CombatSystem) fireProjectiles(damage float64, gunner defs.Gunner) bool {
	player := &s.store.Player
	target := findNearestEnemy(s.store.Enemies, player.Pos, nil)
	if target < 0 {
		return false
	}

	aim := utils.Angle(player.Pos, s.store.Enemies[target].Pos)
	count := gunner.ProjectileCount
	for i := 0; i < count; i++ {
		spread := (float64(i) - float64(count-1)/2) * config.ProjectileSpread
		s.store.Projectiles = append(s.store.Projectiles, component.Projectile{
			Pos:    player.Pos,
			Vel:    utils.FromAngle(aim+spread, config.ProjectileSpeed),
			Radius: config.ProjectileRadius,
			Damage: damage,
			Color:  config.ProjectileColor,
		})
	}
	return true
}

// castExplosion — взрыв на ближайшем видимом враге. Урон наносит AreaAttackSystem.
func (s *CombatSystem) castExplosion(damage float64, wizard defs.Wizard, bounds utils.Bounds) bool {
	player := &s.store.Player
	target := findNearestEnemy(s.store.Enemies, player.Pos, func(e *component.Enemy) bool {
		return bounds.Contains(e.Pos)
	})
	if target < 0 {
		return false
	}

	s.store.Explosions = append(s.store.Explosions, component.Explosion{
		Pos:         s.store.Enemies[target].Pos,
		Radius:      wizard.AttackArea,
		MaxDuration: config.ExplosionMaxDuration,
		Damage:      damage,
		Color:       config.ExplosionColor,
	})
	return true
}

// strike — ближний бой: два ближайших врага по разу или единственный дважды.
// Урон наносится сразу, анимация удара только визуальная.
func (s *CombatSystem) strike(damage float64, fighter defs.Fighter) bool {
	player := &s.store.Player
	reach := fighter.Reach * config.FighterReachScale

	s.inRange = s.inRange[:0]
	for i := range s.store.Enemies {
		e := &s.store.Enemies[i]
		if utils.Dist(player.Pos, e.Pos) < reach+e.Radius {
			s.inRange = append(s.inRange, meleeTarget{index: i, distSq: utils.DistSq(player.Pos, e.Pos)})
		}
	}
	if len(s.inRange) == 0 {
		return false
	}
	sort.SliceStable(s.inRange, func(a, b int) bool {
		return s.inRange[a].distSq < s.inRange[b].distSq
	})

	for hit := 0; hit < config.StrikesPerAttack; hit++ {
		target := s.inRange[0]
		if len(s.inRange) >= config.StrikesPerAttack {
			target = s.inRange[hit]
		}
		s.hitEnemy(&s.store.Enemies[target.index], damage)
	}
	return true
}

func (s *CombatSystem) hitEnemy(enemy *component.Enemy, damage float64) {
	s.store.Strikes = append(s.store.Strikes, component.FighterStrike{
		Origin:      s.store.Player.Pos,
		Target:      enemy.Pos,
		Radius:      config.StrikeRadius,
		MaxDuration: config.StrikeMaxDuration,
		Color:       config.StrikeColor,
	})
	ApplyDamage(enemy, damage)
}
