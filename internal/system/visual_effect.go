package system

import (
	"pixel-survivor/internal/entity"
)

// VisualEffectSystem управляет чисто визуальными эффектами — ударами бойца.
type VisualEffectSystem struct {
	store *entity.Store
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(store *entity.Store) *VisualEffectSystem {
	return &VisualEffectSystem{store: store}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update() {
	kept := s.store.Strikes[:0]
	for _, strike := range s.store.Strikes {
		strike.Duration++
		// Удар следует за персонажем
		strike.Origin = s.store.Player.Pos
		if strike.Duration < strike.MaxDuration {
			kept = append(kept, strike)
		}
	}
	s.store.Strikes = kept
}
