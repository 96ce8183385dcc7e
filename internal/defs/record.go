// internal/defs/record.go
package defs

import "fmt"

// StatsRecord is the JSON shape of Stats. All fields are optional so that older or
// partial records can be filled from the class's initial stats.
type StatsRecord struct {
	AttackSpeed     *float64 `json:"attackSpeed,omitempty" validate:"omitempty,gt=0"`
	Damage          *float64 `json:"damage,omitempty" validate:"omitempty,gte=0"`
	HP              *float64 `json:"hp,omitempty" validate:"omitempty,gt=0"`
	MoveSpeed       *float64 `json:"moveSpeed,omitempty" validate:"omitempty,gte=0"`
	ProjectileCount *int     `json:"projectileCount,omitempty" validate:"omitempty,gte=1"`
	AttackArea      *float64 `json:"attackArea,omitempty" validate:"omitempty,gt=0"`
	Reach           *float64 `json:"reach,omitempty" validate:"omitempty,gt=0"`
}

// Record converts Stats to its JSON shape. Only the payload of the stats' own class is set.
func (s Stats) Record() StatsRecord {
	rec := StatsRecord{
		AttackSpeed: ptr(s.AttackSpeed),
		Damage:      ptr(s.Damage),
		HP:          ptr(s.HP),
		MoveSpeed:   ptr(s.MoveSpeed),
	}
	switch sp := s.Special.(type) {
	case Gunner:
		rec.ProjectileCount = ptr(sp.ProjectileCount)
	case Wizard:
		rec.AttackArea = ptr(sp.AttackArea)
	case Fighter:
		rec.Reach = ptr(sp.Reach)
	}
	return rec
}

// StatsFromRecord builds Stats for class c, taking missing fields from InitialStats(c).
// Payload fields that belong to other classes are ignored; out-of-range values are an error.
func StatsFromRecord(c Class, rec StatsRecord) (Stats, error) {
	if !c.Valid() {
		return Stats{}, fmt.Errorf("%w: %q", ErrUnknownClass, c)
	}
	if err := validateRecord(rec); err != nil {
		return Stats{}, err
	}
	return applyRecord(InitialStats(c), rec), nil
}

// applyRecord overrides the fields of s present in rec.
func applyRecord(s Stats, rec StatsRecord) Stats {
	if rec.AttackSpeed != nil {
		s.AttackSpeed = *rec.AttackSpeed
	}
	if rec.Damage != nil {
		s.Damage = *rec.Damage
	}
	if rec.HP != nil {
		s.HP = *rec.HP
	}
	if rec.MoveSpeed != nil {
		s.MoveSpeed = *rec.MoveSpeed
	}

	switch sp := s.Special.(type) {
	case Gunner:
		if rec.ProjectileCount != nil {
			sp.ProjectileCount = *rec.ProjectileCount
		}
		s.Special = sp
	case Wizard:
		if rec.AttackArea != nil {
			sp.AttackArea = *rec.AttackArea
		}
		s.Special = sp
	case Fighter:
		if rec.Reach != nil {
			sp.Reach = *rec.Reach
		}
		s.Special = sp
	}
	return s
}

func ptr[T any](v T) *T {
	return &v
}
