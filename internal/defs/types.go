// internal/defs/types.go
package defs

import "errors"

// Class identifies a playable character class.
type Class string

const (
	ClassGunner  Class = "GUNNER"
	ClassWizard  Class = "WIZARD"
	ClassFighter Class = "FIGHTER"
)

// Classes lists every class in display order.
var Classes = []Class{ClassGunner, ClassWizard, ClassFighter}

var (
	ErrUnknownClass = errors.New("unknown character class")
	ErrUnknownStat  = errors.New("stat does not apply to class")
)

// Valid reports whether c is one of the known classes.
func (c Class) Valid() bool {
	switch c {
	case ClassGunner, ClassWizard, ClassFighter:
		return true
	}
	return false
}

// Title returns a display name.
func (c Class) Title() string {
	switch c {
	case ClassGunner:
		return "Gunner"
	case ClassWizard:
		return "Wizard"
	case ClassFighter:
		return "Fighter"
	}
	return string(c)
}

// Special is the class-specific part of Stats. The set of implementations is closed:
// Gunner, Wizard and Fighter.
type Special interface {
	Class() Class
	isSpecial()
}

// Gunner fires ProjectileCount projectiles per attack.
type Gunner struct {
	ProjectileCount int
}

// Wizard explodes an area of radius AttackArea around the target.
type Wizard struct {
	AttackArea float64
}

// Fighter strikes enemies within Reach (scaled to pixels by the combat system).
type Fighter struct {
	Reach float64
}

func (Gunner) Class() Class  { return ClassGunner }
func (Wizard) Class() Class  { return ClassWizard }
func (Fighter) Class() Class { return ClassFighter }

func (Gunner) isSpecial()  {}
func (Wizard) isSpecial()  {}
func (Fighter) isSpecial() {}

// Stats are the attributes shared by all classes plus the class payload.
type Stats struct {
	AttackSpeed float64 // мс между атаками
	Damage      float64
	HP          float64
	MoveSpeed   float64 // единиц за кадр
	Special     Special
}

// Class returns the class tag carried by the special payload.
func (s Stats) Class() Class {
	if s.Special == nil {
		return ""
	}
	return s.Special.Class()
}

// ClassProgression is the persisted per-class state.
type ClassProgression struct {
	Level int
	Exp   int
	Stats Stats
}

// NewProgression returns level 1, zero exp and the class's initial stats.
func NewProgression(c Class) ClassProgression {
	return ClassProgression{Level: 1, Exp: 0, Stats: InitialStats(c)}
}
