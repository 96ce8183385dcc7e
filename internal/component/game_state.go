package component

import "math"

// Never — отметка времени «ещё не было», любая проверка интервала от неё проходит.
var Never = math.Inf(-1)

// Mode — режим сессии. Stage == 0 означает бесконечный режим.
type Mode struct {
	Stage int
}

// Infinite — бесконечный режим.
func Infinite() Mode {
	return Mode{}
}

// Challenge — испытание на этапе stage.
func Challenge(stage int) Mode {
	return Mode{Stage: stage}
}

// IsChallenge — режим испытания с таймером.
func (m Mode) IsChallenge() bool {
	return m.Stage > 0
}

// DifficultyStage — этап для формул сложности; в бесконечном режиме 1.
func (m Mode) DifficultyStage() int {
	if m.Stage < 1 {
		return 1
	}
	return m.Stage
}

// Clock — часы сессии в миллисекундах.
type Clock struct {
	Now       float64 // сумма dt с начала сессии
	Remaining float64 // только в режиме испытания
	Elapsed   float64 // только в бесконечном режиме
	LastSpawn float64
	Finished  bool // испытание завершено, событие отправлено
}

// RemainingSeconds — остаток времени для таймера, округлённый вверх.
func (c *Clock) RemainingSeconds() int {
	return int(math.Ceil(c.Remaining / 1000))
}
