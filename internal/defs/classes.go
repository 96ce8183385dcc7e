// internal/defs/classes.go
package defs

// ClassLibrary holds the starting stats per class. LoadClassDefinitions may override it.
var ClassLibrary = DefaultClassLibrary()

// DefaultClassLibrary returns the built-in starting stats.
func DefaultClassLibrary() map[Class]Stats {
	return map[Class]Stats{
		ClassGunner: {
			AttackSpeed: 1000,
			Damage:      20,
			HP:          100,
			MoveSpeed:   2.1,
			Special:     Gunner{ProjectileCount: 1},
		},
		ClassWizard: {
			AttackSpeed: 500,
			Damage:      15,
			HP:          80,
			MoveSpeed:   1.75,
			Special:     Wizard{AttackArea: 60},
		},
		ClassFighter: {
			AttackSpeed: 400,
			Damage:      18,
			HP:          130,
			MoveSpeed:   2.3,
			Special:     Fighter{Reach: 1.5},
		},
	}
}

// InitialStats returns the starting stats of a class, or the Gunner's for an unknown class.
func InitialStats(c Class) Stats {
	if s, ok := ClassLibrary[c]; ok {
		return s
	}
	return ClassLibrary[ClassGunner]
}
