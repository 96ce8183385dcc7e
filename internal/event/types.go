// internal/event/types.go
package event

const (
	ExpGained        EventType = "ExpGained"        // Враг убит, опыт начислен
	LevelUp          EventType = "LevelUp"          // Порог опыта пройден
	GameOver         EventType = "GameOver"         // Игрок погиб
	ChallengeSuccess EventType = "ChallengeSuccess" // Время испытания вышло, игрок жив
)

// ExpGainedData — новый суммарный опыт игрока.
type ExpGainedData struct {
	Exp int
}

// LevelUpData — уровень и остаток опыта после перехода.
type LevelUpData struct {
	Level int
	Exp   int
}

// GameOverData — опыт на момент смерти.
type GameOverData struct {
	Exp int
}

// ChallengeSuccessData — пройденный этап.
type ChallengeSuccessData struct {
	Stage int
}
