// internal/component/player.go
package component

import "pixel-survivor/internal/utils"

// Player хранит состояние персонажа игрока в течение одной жизни.
type Player struct {
	Pos        utils.Vec2
	Vel        utils.Vec2
	HP         float64
	MaxHP      float64
	Level      int
	Exp        int
	LastAttack float64 // время последней атаки по часам сессии, мс

	GameOverSent bool // событие GameOver уже отправлено в этой жизни
}

// Dead — здоровье исчерпано.
func (p *Player) Dead() bool {
	return p.HP <= 0
}

// HPRatio — доля здоровья для полоски, в диапазоне [0, 1].
func (p *Player) HPRatio() float64 {
	if p.MaxHP <= 0 || p.HP <= 0 {
		return 0
	}
	return p.HP / p.MaxHP
}
