package system

import (
	"pixel-survivor/internal/entity"
	"pixel-survivor/internal/event"
)

// TimerSystem ведёт часы сессии и обратный отсчёт испытания.
type TimerSystem struct {
	store  *entity.Store
	events *event.Queue
}

func NewTimerSystem(store *entity.Store, events *event.Queue) *TimerSystem {
	return &TimerSystem{store: store, events: events}
}

// Update продвигает часы на deltaTime мс. Возвращает true, если испытание
// завершено и кадр дальше не обрабатывается.
func (s *TimerSystem) Update(deltaTime float64) bool {
	clock := &s.store.Clock
	if clock.Finished {
		return true
	}
	clock.Now += deltaTime

	if !s.store.Mode.IsChallenge() {
		clock.Elapsed += deltaTime
		return false
	}

	clock.Remaining -= deltaTime
	if clock.Remaining <= 0 {
		clock.Remaining = 0
		clock.Finished = true
		s.events.Push(event.ChallengeSuccess, event.ChallengeSuccessData{Stage: s.store.Mode.Stage})
		return true
	}
	return false
}
