// internal/defs/upgrades.go
package defs

import (
	"fmt"
	"math"
)

// StatKey names a stat that can be upgraded on level-up. Values match the save format keys.
type StatKey string

const (
	StatAttackSpeed     StatKey = "attackSpeed"
	StatDamage          StatKey = "damage"
	StatHP              StatKey = "hp"
	StatMoveSpeed       StatKey = "moveSpeed"
	StatProjectileCount StatKey = "projectileCount"
	StatAttackArea      StatKey = "attackArea"
	StatReach           StatKey = "reach"
)

const (
	attackSpeedUpgrade = 0.9  // на 10% быстрее
	statUpgrade        = 1.15 // +15%
)

// Label returns a short display name.
func (k StatKey) Label() string {
	switch k {
	case StatAttackSpeed:
		return "Attack speed"
	case StatDamage:
		return "Damage"
	case StatHP:
		return "Health"
	case StatMoveSpeed:
		return "Move speed"
	case StatProjectileCount:
		return "Projectiles"
	case StatAttackArea:
		return "Attack area"
	case StatReach:
		return "Reach"
	}
	return string(k)
}

// UpgradeOptions lists the stats offered on level-up for the given stats' class.
func UpgradeOptions(s Stats) []StatKey {
	opts := []StatKey{StatAttackSpeed, StatDamage, StatMoveSpeed, StatHP}
	switch s.Special.(type) {
	case Gunner:
		opts = append(opts, StatProjectileCount)
	case Wizard:
		opts = append(opts, StatAttackArea)
	case Fighter:
		opts = append(opts, StatReach)
	}
	return opts
}

// Upgrade returns a copy of s with one stat improved.
// Attack speed (the interval) shrinks by 10%, everything else grows by 15%;
// the projectile count is floored and then gains one more projectile.
func Upgrade(s Stats, key StatKey) (Stats, error) {
	switch key {
	case StatAttackSpeed:
		s.AttackSpeed *= attackSpeedUpgrade
		return s, nil
	case StatDamage:
		s.Damage *= statUpgrade
		return s, nil
	case StatHP:
		s.HP *= statUpgrade
		return s, nil
	case StatMoveSpeed:
		s.MoveSpeed *= statUpgrade
		return s, nil
	}

	switch sp := s.Special.(type) {
	case Gunner:
		if key == StatProjectileCount {
			sp.ProjectileCount = int(math.Floor(float64(sp.ProjectileCount)*statUpgrade)) + 1
			s.Special = sp
			return s, nil
		}
	case Wizard:
		if key == StatAttackArea {
			sp.AttackArea *= statUpgrade
			s.Special = sp
			return s, nil
		}
	case Fighter:
		if key == StatReach {
			sp.Reach *= statUpgrade
			s.Special = sp
			return s, nil
		}
	}
	return s, fmt.Errorf("%w: %s for %s", ErrUnknownStat, key, s.Class())
}
