// internal/system/player_system.go
package system

import (
	"math"

	"pixel-survivor/internal/difficulty"
	"pixel-survivor/internal/entity"
	"pixel-survivor/internal/event"
)

// PlayerSystem отвечает за здоровье, опыт и уровень игрока.
type PlayerSystem struct {
	store  *entity.Store
	events *event.Queue
}

func NewPlayerSystem(store *entity.Store, events *event.Queue) *PlayerSystem {
	return &PlayerSystem{store: store, events: events}
}

// TakeDamage уменьшает здоровье; смерть сообщается ровно один раз за жизнь.
func (s *PlayerSystem) TakeDamage(amount float64) {
	player := &s.store.Player
	player.HP = math.Max(0, player.HP-amount)
	if player.HP <= 0 && !player.GameOverSent {
		player.GameOverSent = true
		s.events.Push(event.GameOver, event.GameOverData{Exp: player.Exp})
	}
}

// GainExp начисляет опыт и повышает уровень за каждый пройденный порог.
func (s *PlayerSystem) GainExp(amount int) {
	player := &s.store.Player
	player.Exp += amount
	s.events.Push(event.ExpGained, event.ExpGainedData{Exp: player.Exp})

	for player.Exp >= difficulty.ExpThreshold(player.Level) {
		player.Exp -= difficulty.ExpThreshold(player.Level)
		player.Level++
		s.events.Push(event.LevelUp, event.LevelUpData{Level: player.Level, Exp: player.Exp})
	}
}
